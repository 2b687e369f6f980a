// Copyright 2025, dvjn

package emulator

import (
	"context"
	"fmt"
	"iter"
	"log"
	"time"

	"github.com/dvjn/chip8-emulator/cpu"
	"github.com/dvjn/chip8-emulator/internal"
	"github.com/dvjn/chip8-emulator/io"
)

const (
	CYCLES_PER_FRAME = 10 // Instructions executed per 60 Hz frame.
	FRAME_RATE       = 60 // Frames, and timer decrements, per second.
)

var _emulator_defines = map[string]string{
	"CYCLES_PER_FRAME": fmt.Sprintf("%v", CYCLES_PER_FRAME),
	"FRAME_RATE":       fmt.Sprintf("%v", FRAME_RATE),
}

// Emulator state. CPU + program image + clock policy.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.
	Rom      io.Rom       // Binary image, used when Program is empty.

	CyclesPerFrame int           // Instructions per Frame.
	FrameTime      time.Duration // Pace of Run; zero runs unpaced.
	Frames         int           // Frames completed since reset.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:            cpu.NewCpu(),
		Program:        &cpu.Program{},
		CyclesPerFrame: CYCLES_PER_FRAME,
		FrameTime:      time.Second / FRAME_RATE,
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.DefinesConcat(internal.DefinesSorted(_emulator_defines),
		emu.Cpu.Defines(),
		io.Defines(),
	)
}

// Reset the machine and load the program image: the assembled
// Program if it has any opcodes, otherwise the Rom.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Frames = 0

	image := emu.Rom.Data
	if emu.Program != nil && len(emu.Program.Opcodes) != 0 {
		image = emu.Program.Binary()
	}

	err = emu.Cpu.LoadRom(image)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: reset, %d byte image", len(image))
	}

	return
}

// Ticks returns the total instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the current line number for the executing opcode, or 0
// if there is no source listing for it.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single instruction cycle of the emulator.
func (emu *Emulator) Tick() (err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	addr := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Addr: addr, LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()

	return
}

// Frame runs one 60 Hz frame: CyclesPerFrame instruction cycles, then a
// single decrement of the delay and sound timers.
func (emu *Emulator) Frame() (err error) {
	for range emu.CyclesPerFrame {
		err = emu.Tick()
		if err != nil {
			return
		}
	}

	emu.Cpu.DecrementTimers()
	emu.Frames++

	return
}

// Run executes frames until the count is reached, a frame fails, or ctx
// is done. A count of zero or less runs until ctx is done. Frames are
// paced by FrameTime.
func (emu *Emulator) Run(ctx context.Context, frames int) (err error) {
	var pace <-chan time.Time
	if emu.FrameTime > 0 {
		ticker := time.NewTicker(emu.FrameTime)
		defer ticker.Stop()
		pace = ticker.C
	}

	for n := 0; frames <= 0 || n < frames; n++ {
		if pace != nil {
			select {
			case <-ctx.Done():
				err = ctx.Err()
				return
			case <-pace:
			}
		} else if err = ctx.Err(); err != nil {
			return
		}

		err = emu.Frame()
		if err != nil {
			return
		}
	}

	return
}
