// Package cpu implements the CHIP-8 processor and an assembler for its
// instruction set.
//
// The CPU has 4K of byte-addressable memory with the hexadecimal font at
// 0x000 and programs loaded at 0x200, sixteen 8-bit registers V0-VF (VF
// doubles as the flag register), a 16-bit index register I, a program
// counter, a sixteen deep call stack, and the delay and sound timers. The
// display and keypad are devices from package io.
//
// Execution is a synchronous step: each Tick runs exactly one instruction.
// Timers only move when the host calls DecrementTimers, so the host
// decides the clock rate.
//
// The assembler accepts the conventional CHIP-8 mnemonics plus labels,
// equates and macros.
package cpu
