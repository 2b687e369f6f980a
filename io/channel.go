// Package io provides the peripheral devices of the CHIP-8 machine: the
// monochrome Display, the hexadecimal Keypad, the delay and sound Timers,
// and the Rom image loader.
//
// Devices hold plain fixed-size state and perform no locking. A host that
// reads a device from another goroutine must supply its own exclusion.
package io

import (
	"fmt"
	"iter"

	"github.com/dvjn/chip8-emulator/internal"
)

var _io_defines = map[string]string{
	"DISPLAY_WIDTH":  fmt.Sprintf("%v", DISPLAY_WIDTH),
	"DISPLAY_HEIGHT": fmt.Sprintf("%v", DISPLAY_HEIGHT),
	"KEY_COUNT":      fmt.Sprintf("%v", KEY_COUNT),
	"ROM_LIMIT":      fmt.Sprintf("%#x", ROM_LIMIT),
}

// Defines returns the device constants as assembler equates.
func Defines() iter.Seq2[string, string] {
	return internal.DefinesSorted(_io_defines)
}
