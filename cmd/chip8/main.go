// Copyright 2025, dvjn

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/dvjn/chip8-emulator/cpu"
	"github.com/dvjn/chip8-emulator/emulator"
	"github.com/dvjn/chip8-emulator/io"
	"github.com/dvjn/chip8-emulator/translate"
)

func main() {
	var compile string
	var rom string
	var save bool
	var output string
	var frames int
	var cycles int
	var keys string
	var realtime bool
	var seed int64
	var lang string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to compile")
	flag.StringVar(&rom, "r", "", ".ch8 ROM file to load")
	flag.BoolVar(&save, "s", false, "Save compiled ROM to output, do not execute")
	flag.StringVar(&output, "o", "-", "Output for the saved ROM or the final machine state")
	flag.IntVar(&frames, "n", emulator.FRAME_RATE, "Frames to run, 0 runs until interrupted")
	flag.IntVar(&cycles, "f", emulator.CYCLES_PER_FRAME, "Instructions per frame")
	flag.StringVar(&keys, "k", "", "Keys held down, on a QWERTY layout (1234/qwer/asdf/zxcv)")
	flag.BoolVar(&realtime, "t", false, "Pace frames in real time")
	flag.Int64Var(&seed, "seed", 0, "Random number seed, 0 for time based")
	flag.StringVar(&lang, "lang", "", "Message language")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		translate.SetLanguage(lang)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.CyclesPerFrame = cycles
	if !realtime {
		emu.FrameTime = 0
	}
	if seed != 0 {
		emu.Cpu.Seed(seed)
	}

	// Compile a new instruction stream.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for name, value := range emu.Defines() {
			asm.Predefine(name, value)
		}
		emu.Program, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		emu.Rom.Data = emu.Program.Binary()
	}

	if len(rom) != 0 {
		inf, err := os.Open(rom)
		if err != nil {
			log.Fatalf("%v: %v", rom, err)
		}
		defer inf.Close()

		_, err = emu.Rom.ReadFrom(inf)
		if err != nil {
			log.Fatalf("%v: %v", rom, err)
		}
	}

	ouf := os.Stdout
	if output != "-" {
		var err error
		ouf, err = os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
	}

	if save {
		_, err := ouf.Write(emu.Rom.Data)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		return
	}

	err := emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	unmapped := io.QwertyKeymap.Press(&emu.Keypad, keys)
	if len(unmapped) != 0 {
		log.Fatalf("%v: unmapped keys: %q", os.Args[0], string(unmapped))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = emu.Run(ctx, frames)
	if err != nil && ctx.Err() == nil {
		log.Printf("%v: %v", os.Args[0], err)
	}

	fmt.Fprint(ouf, emu.Display.String())
	fmt.Fprint(ouf, emu.Cpu.String())
	if emu.IsSoundPlaying() {
		fmt.Fprintln(ouf, "sound: on")
	}
}
