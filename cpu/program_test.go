package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}
	assert.Equal([]byte{}, prog.Binary())

	prog = assemble(t,
		"jp main",
		"glyph: .byte $F0, $90",
		"main: ld i, glyph",
	)
	assert.Equal([]byte{0x12, 0x04, 0xF0, 0x90, 0xA2, 0x02}, prog.Binary())
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		"cls",
		".byte 1, 2, 3",
		"ret",
	)

	dbg := prog.Debug(0x200)
	if assert.NotNil(dbg.Opcode) {
		assert.Equal(1, dbg.LineNo)
		assert.Equal(0, dbg.Index)
	}

	dbg = prog.Debug(0x204)
	if assert.NotNil(dbg.Opcode) {
		assert.Equal(2, dbg.LineNo)
		assert.Equal(2, dbg.Index)
		assert.True(dbg.IsData)
	}

	dbg = prog.Debug(0x205)
	if assert.NotNil(dbg.Opcode) {
		assert.Equal(3, dbg.LineNo)
	}

	dbg = prog.Debug(0x300)
	assert.Nil(dbg.Opcode)
}

func TestProgram_Instructions(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		"cls",
		".word $1234",
		"ret",
	)

	var addrs []uint16
	var ins []Instruction
	for addr, in := range prog.Instructions() {
		addrs = append(addrs, addr)
		ins = append(ins, in)
	}

	assert.Equal([]uint16{0x200, 0x204}, addrs)
	assert.Equal([]Instruction{0x00E0, 0x00EE}, ins)

	for range prog.Instructions() {
		break
	}
}
