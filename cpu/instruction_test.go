package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_Fields(t *testing.T) {
	assert := assert.New(t)

	in := Decode(0xD123)
	n0, n1, n2, n3 := in.Nibbles()
	assert.Equal([4]uint8{0xD, 0x1, 0x2, 0x3}, [4]uint8{n0, n1, n2, n3})
	assert.Equal(uint16(0x123), in.Addr())
	assert.Equal(uint8(0x23), in.Byte())
	assert.Equal(uint8(0x1), in.X())
	assert.Equal(uint8(0x2), in.Y())
	assert.Equal(uint8(0x3), in.N())
}

func TestInstruction_Fetch(t *testing.T) {
	assert := assert.New(t)

	mem := make([]byte, MEMORY_SIZE)
	mem[0x200] = 0x12
	mem[0x201] = 0x34
	mem[0xfff] = 0xab
	mem[0x000] = 0xcd

	assert.Equal(Instruction(0x1234), Fetch(mem, 0x200))
	assert.Equal(Instruction(0xabcd), Fetch(mem, 0xfff))
	assert.Equal(Instruction(0x1234), Fetch(mem, 0x1200))

	assert.Equal(Instruction(0), Fetch(nil, 0x200))
	assert.Equal(Instruction(0x1200), Fetch([]byte{0x12}, 0x000))
	assert.Equal(Instruction(0x0012), Fetch([]byte{0x12}, 0xfff))
}

func TestInstruction_Kind(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word uint16
		kind Kind
		text string
	}){
		{0x00E0, OP_CLS, "CLS"},
		{0x00EE, OP_RET, "RET"},
		{0x0123, OP_SYS, "SYS $123"},
		{0x1A2A, OP_JP, "JP $A2A"},
		{0x2ABC, OP_CALL, "CALL $ABC"},
		{0x3412, OP_SE_BYTE, "SE V4, $12"},
		{0x4412, OP_SNE_BYTE, "SNE V4, $12"},
		{0x5120, OP_SE_REG, "SE V1, V2"},
		{0x5121, OP_UNKNOWN, ".word $5121"},
		{0x6A2A, OP_LD_BYTE, "LD VA, $2A"},
		{0x7A01, OP_ADD_BYTE, "ADD VA, $01"},
		{0x8120, OP_LD_REG, "LD V1, V2"},
		{0x8121, OP_OR, "OR V1, V2"},
		{0x8122, OP_AND, "AND V1, V2"},
		{0x8123, OP_XOR, "XOR V1, V2"},
		{0x8124, OP_ADD_REG, "ADD V1, V2"},
		{0x8125, OP_SUB, "SUB V1, V2"},
		{0x8126, OP_SHR, "SHR V1"},
		{0x8127, OP_SUBN, "SUBN V1, V2"},
		{0x812E, OP_SHL, "SHL V1"},
		{0x8128, OP_UNKNOWN, ".word $8128"},
		{0x9120, OP_SNE_REG, "SNE V1, V2"},
		{0xA123, OP_LD_I, "LD I, $123"},
		{0xB123, OP_JP_V0, "JP V0, $123"},
		{0xC10F, OP_RND, "RND V1, $0F"},
		{0xD125, OP_DRW, "DRW V1, V2, 5"},
		{0xE19E, OP_SKP, "SKP V1"},
		{0xE1A1, OP_SKNP, "SKNP V1"},
		{0xE100, OP_UNKNOWN, ".word $E100"},
		{0xF107, OP_LD_VX_DT, "LD V1, DT"},
		{0xF10A, OP_LD_VX_K, "LD V1, K"},
		{0xF115, OP_LD_DT_VX, "LD DT, V1"},
		{0xF118, OP_LD_ST_VX, "LD ST, V1"},
		{0xF11E, OP_ADD_I, "ADD I, V1"},
		{0xF129, OP_LD_F, "LD F, V1"},
		{0xF133, OP_LD_B, "LD B, V1"},
		{0xF155, OP_LD_MEM_VX, "LD [I], V1"},
		{0xF165, OP_LD_VX_MEM, "LD V1, [I]"},
		{0xF1FF, OP_UNKNOWN, ".word $F1FF"},
	}

	for _, entry := range table {
		in := Decode(entry.word)
		assert.Equal(entry.kind, in.Kind(), "%04x", entry.word)
		assert.Equal(entry.text, in.String(), "%04x", entry.word)
	}
}

func TestKind_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("cls", OP_CLS.String())
	assert.Equal("ld.vx.mem", OP_LD_VX_MEM.String())
	assert.Equal("Kind(99)", Kind(99).String())
}
