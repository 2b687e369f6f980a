package cpu

import (
	"iter"
)

// Opcode represents a line of assembled code with its source location and
// generated bytes.
type Opcode struct {
	LineNo    int      // Source line.
	Addr      int      // Load address of the first byte.
	Words     []string // Source words, after substitution.
	Bytes     []byte   // Generated bytes.
	IsData    bool     // Generated by a data directive rather than an instruction.
	LinkLabel string   // Label whose address is patched into the nnn field.
}

// Program is an assembled listing.
type Program struct {
	Opcodes []Opcode
}

// Debug locates the opcode that generated a byte address.
type Debug struct {
	*Opcode
	Index int // Byte offset into the opcode.
}

// Debug returns the opcode covering addr, if any.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(addr) >= op.Addr && int(addr) < op.Addr+len(op.Bytes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(addr) - op.Addr,
			}
			break
		}
	}

	return
}

// Binary returns the ROM image of the program, to be loaded at
// PROGRAM_START.
func (prog *Program) Binary() (rom []byte) {
	var end int
	for _, op := range prog.Opcodes {
		end = max(end, op.Addr+len(op.Bytes)-PROGRAM_START)
	}

	rom = make([]byte, end)
	for _, op := range prog.Opcodes {
		copy(rom[op.Addr-PROGRAM_START:], op.Bytes)
	}

	return
}

// Instructions iterates over the address and instruction of every
// assembled instruction, skipping data.
func (prog *Program) Instructions() iter.Seq2[uint16, Instruction] {
	return func(yield func(addr uint16, in Instruction) bool) {
		for _, op := range prog.Opcodes {
			if op.IsData || len(op.Bytes) != 2 {
				continue
			}
			in := Instruction(uint16(op.Bytes[0])<<8 | uint16(op.Bytes[1]))
			if !yield(uint16(op.Addr), in) {
				return
			}
		}
	}
}
