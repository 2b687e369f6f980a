package cpu

import (
	"fmt"
)

// Kind is the decoded operation class of an instruction.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	OP_UNKNOWN   = Kind(0)  // unknown
	OP_CLS       = Kind(1)  // cls
	OP_RET       = Kind(2)  // ret
	OP_SYS       = Kind(3)  // sys
	OP_JP        = Kind(4)  // jp
	OP_CALL      = Kind(5)  // call
	OP_SE_BYTE   = Kind(6)  // se.byte
	OP_SNE_BYTE  = Kind(7)  // sne.byte
	OP_SE_REG    = Kind(8)  // se.reg
	OP_LD_BYTE   = Kind(9)  // ld.byte
	OP_ADD_BYTE  = Kind(10) // add.byte
	OP_LD_REG    = Kind(11) // ld.reg
	OP_OR        = Kind(12) // or
	OP_AND       = Kind(13) // and
	OP_XOR       = Kind(14) // xor
	OP_ADD_REG   = Kind(15) // add.reg
	OP_SUB       = Kind(16) // sub
	OP_SHR       = Kind(17) // shr
	OP_SUBN      = Kind(18) // subn
	OP_SHL       = Kind(19) // shl
	OP_SNE_REG   = Kind(20) // sne.reg
	OP_LD_I      = Kind(21) // ld.i
	OP_JP_V0     = Kind(22) // jp.v0
	OP_RND       = Kind(23) // rnd
	OP_DRW       = Kind(24) // drw
	OP_SKP       = Kind(25) // skp
	OP_SKNP      = Kind(26) // sknp
	OP_LD_VX_DT  = Kind(27) // ld.vx.dt
	OP_LD_VX_K   = Kind(28) // ld.vx.k
	OP_LD_DT_VX  = Kind(29) // ld.dt.vx
	OP_LD_ST_VX  = Kind(30) // ld.st.vx
	OP_ADD_I     = Kind(31) // add.i
	OP_LD_F      = Kind(32) // ld.f
	OP_LD_B      = Kind(33) // ld.b
	OP_LD_MEM_VX = Kind(34) // ld.mem.vx
	OP_LD_VX_MEM = Kind(35) // ld.vx.mem
)

// Instruction is a single 16-bit CHIP-8 opcode word.
type Instruction uint16

// Decode wraps an opcode word. Every word decodes; words with no
// defined meaning report OP_UNKNOWN from Kind.
func Decode(word uint16) Instruction {
	return Instruction(word)
}

// Fetch reads the big-endian opcode at pc. Addresses wrap at the end of
// the 4K address space; bytes past the end of a shorter memory read as
// zero.
func Fetch(memory []byte, pc uint16) Instruction {
	read := func(addr uint16) uint16 {
		addr &= ADDR_MASK
		if int(addr) >= len(memory) {
			return 0
		}
		return uint16(memory[addr])
	}

	return Instruction(read(pc)<<8 | read(pc+1))
}

// Nibbles splits the opcode into its four 4-bit fields, most
// significant first.
func (in Instruction) Nibbles() (n0, n1, n2, n3 uint8) {
	word := uint16(in)
	n0 = uint8((word >> 12) & 0xf)
	n1 = uint8((word >> 8) & 0xf)
	n2 = uint8((word >> 4) & 0xf)
	n3 = uint8((word >> 0) & 0xf)
	return
}

// Addr returns the 12-bit address operand nnn.
func (in Instruction) Addr() uint16 {
	return uint16(in) & 0x0fff
}

// Byte returns the 8-bit immediate operand kk.
func (in Instruction) Byte() uint8 {
	return uint8(in & 0xff)
}

// X returns the first register index.
func (in Instruction) X() uint8 {
	return uint8((in >> 8) & 0xf)
}

// Y returns the second register index.
func (in Instruction) Y() uint8 {
	return uint8((in >> 4) & 0xf)
}

// N returns the low nibble, the sprite height of DRW.
func (in Instruction) N() uint8 {
	return uint8(in & 0xf)
}

// Kind classifies the instruction.
func (in Instruction) Kind() Kind {
	n0, _, n2, n3 := in.Nibbles()

	switch n0 {
	case 0x0:
		switch uint16(in) {
		case 0x00E0:
			return OP_CLS
		case 0x00EE:
			return OP_RET
		}
		return OP_SYS
	case 0x1:
		return OP_JP
	case 0x2:
		return OP_CALL
	case 0x3:
		return OP_SE_BYTE
	case 0x4:
		return OP_SNE_BYTE
	case 0x5:
		if n3 == 0x0 {
			return OP_SE_REG
		}
	case 0x6:
		return OP_LD_BYTE
	case 0x7:
		return OP_ADD_BYTE
	case 0x8:
		switch n3 {
		case 0x0:
			return OP_LD_REG
		case 0x1:
			return OP_OR
		case 0x2:
			return OP_AND
		case 0x3:
			return OP_XOR
		case 0x4:
			return OP_ADD_REG
		case 0x5:
			return OP_SUB
		case 0x6:
			return OP_SHR
		case 0x7:
			return OP_SUBN
		case 0xE:
			return OP_SHL
		}
	case 0x9:
		if n3 == 0x0 {
			return OP_SNE_REG
		}
	case 0xA:
		return OP_LD_I
	case 0xB:
		return OP_JP_V0
	case 0xC:
		return OP_RND
	case 0xD:
		return OP_DRW
	case 0xE:
		switch in.Byte() {
		case 0x9E:
			return OP_SKP
		case 0xA1:
			return OP_SKNP
		}
	case 0xF:
		switch uint8(n2<<4 | n3) {
		case 0x07:
			return OP_LD_VX_DT
		case 0x0A:
			return OP_LD_VX_K
		case 0x15:
			return OP_LD_DT_VX
		case 0x18:
			return OP_LD_ST_VX
		case 0x1E:
			return OP_ADD_I
		case 0x29:
			return OP_LD_F
		case 0x33:
			return OP_LD_B
		case 0x55:
			return OP_LD_MEM_VX
		case 0x65:
			return OP_LD_VX_MEM
		}
	}

	return OP_UNKNOWN
}

// String returns the assembly language representation of the
// instruction. Unknown words render as a data directive.
func (in Instruction) String() (out string) {
	x := in.X()
	y := in.Y()

	switch in.Kind() {
	case OP_CLS:
		out = "CLS"
	case OP_RET:
		out = "RET"
	case OP_SYS:
		out = fmt.Sprintf("SYS $%03X", in.Addr())
	case OP_JP:
		out = fmt.Sprintf("JP $%03X", in.Addr())
	case OP_CALL:
		out = fmt.Sprintf("CALL $%03X", in.Addr())
	case OP_SE_BYTE:
		out = fmt.Sprintf("SE V%X, $%02X", x, in.Byte())
	case OP_SNE_BYTE:
		out = fmt.Sprintf("SNE V%X, $%02X", x, in.Byte())
	case OP_SE_REG:
		out = fmt.Sprintf("SE V%X, V%X", x, y)
	case OP_LD_BYTE:
		out = fmt.Sprintf("LD V%X, $%02X", x, in.Byte())
	case OP_ADD_BYTE:
		out = fmt.Sprintf("ADD V%X, $%02X", x, in.Byte())
	case OP_LD_REG:
		out = fmt.Sprintf("LD V%X, V%X", x, y)
	case OP_OR:
		out = fmt.Sprintf("OR V%X, V%X", x, y)
	case OP_AND:
		out = fmt.Sprintf("AND V%X, V%X", x, y)
	case OP_XOR:
		out = fmt.Sprintf("XOR V%X, V%X", x, y)
	case OP_ADD_REG:
		out = fmt.Sprintf("ADD V%X, V%X", x, y)
	case OP_SUB:
		out = fmt.Sprintf("SUB V%X, V%X", x, y)
	case OP_SHR:
		out = fmt.Sprintf("SHR V%X", x)
	case OP_SUBN:
		out = fmt.Sprintf("SUBN V%X, V%X", x, y)
	case OP_SHL:
		out = fmt.Sprintf("SHL V%X", x)
	case OP_SNE_REG:
		out = fmt.Sprintf("SNE V%X, V%X", x, y)
	case OP_LD_I:
		out = fmt.Sprintf("LD I, $%03X", in.Addr())
	case OP_JP_V0:
		out = fmt.Sprintf("JP V0, $%03X", in.Addr())
	case OP_RND:
		out = fmt.Sprintf("RND V%X, $%02X", x, in.Byte())
	case OP_DRW:
		out = fmt.Sprintf("DRW V%X, V%X, %d", x, y, in.N())
	case OP_SKP:
		out = fmt.Sprintf("SKP V%X", x)
	case OP_SKNP:
		out = fmt.Sprintf("SKNP V%X", x)
	case OP_LD_VX_DT:
		out = fmt.Sprintf("LD V%X, DT", x)
	case OP_LD_VX_K:
		out = fmt.Sprintf("LD V%X, K", x)
	case OP_LD_DT_VX:
		out = fmt.Sprintf("LD DT, V%X", x)
	case OP_LD_ST_VX:
		out = fmt.Sprintf("LD ST, V%X", x)
	case OP_ADD_I:
		out = fmt.Sprintf("ADD I, V%X", x)
	case OP_LD_F:
		out = fmt.Sprintf("LD F, V%X", x)
	case OP_LD_B:
		out = fmt.Sprintf("LD B, V%X", x)
	case OP_LD_MEM_VX:
		out = fmt.Sprintf("LD [I], V%X", x)
	case OP_LD_VX_MEM:
		out = fmt.Sprintf("LD V%X, [I]", x)
	default:
		out = fmt.Sprintf(".word $%04X", uint16(in))
	}

	return
}
