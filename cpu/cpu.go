package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/dvjn/chip8-emulator/internal"
	"github.com/dvjn/chip8-emulator/io"
)

const (
	MEMORY_SIZE    = 4096   // Bytes of addressable memory.
	ADDR_MASK      = 0x0fff // Significant bits of a memory address.
	PROGRAM_START  = 0x200  // Load and entry address of programs.
	REGISTER_COUNT = 16     // V0 through VF.
	REG_VF         = 0xf    // Flag register index.
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE":     fmt.Sprintf("%v", MEMORY_SIZE),
	"PROGRAM_START":   fmt.Sprintf("%#x", PROGRAM_START),
	"FONT_BASE":       fmt.Sprintf("%#x", FONT_BASE),
	"FONT_GLYPH_SIZE": fmt.Sprintf("%v", FONT_GLYPH_SIZE),
	"STACK_LIMIT":     fmt.Sprintf("%v", STACK_LIMIT),
}

// Cpu is the simulation context for the CHIP-8 processor and the devices
// it drives directly.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory [MEMORY_SIZE]byte     // Main memory.
	V      [REGISTER_COUNT]uint8 // Register bank. V[REG_VF] is the flag register.
	I      uint16                // Index register.
	Pc     uint16                // Address of the next instruction.
	Stack  Stack                 // Subroutine return addresses.
	Delay  io.Timer              // Delay timer.
	Sound  io.Timer              // Sound timer; the tone plays while it is non-zero.

	Display io.Display // Framebuffer.
	Keypad  io.Keypad  // Key latches.

	Ticks int // Instructions executed since reset.

	rand *rand.Rand
}

// NewCpu creates a CPU in its reset state, with a time-seeded random
// number generator.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Seed(time.Now().UnixNano())
	cpu.Reset()

	return
}

// Seed reseeds the generator used by RND, for reproducible runs.
func (cpu *Cpu) Seed(seed int64) {
	cpu.rand = rand.New(rand.NewSource(seed))
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return internal.DefinesSorted(_cpu_defines)
}

// Reset the CPU state.
//   - Clears memory, registers, stack and timers.
//   - Installs the font glyphs at FONT_BASE.
//   - Sets the program counter to PROGRAM_START.
//   - Clears the display and releases all keys.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Memory[:])
	clear(cpu.V[:])
	cpu.I = 0
	cpu.Stack.Reset()
	cpu.Delay.Set(0)
	cpu.Sound.Set(0)
	cpu.Ticks = 0

	copy(cpu.Memory[FONT_BASE:], Font[:])
	cpu.Pc = PROGRAM_START

	cpu.Display.Clear()
	cpu.Keypad.Clear()

	if cpu.rand == nil {
		cpu.Seed(time.Now().UnixNano())
	}
}

// LoadRom copies a program image into memory at PROGRAM_START.
func (cpu *Cpu) LoadRom(rom []byte) (err error) {
	if len(rom) > io.ROM_LIMIT {
		err = io.ErrRomSize(len(rom))
		return
	}

	copy(cpu.Memory[PROGRAM_START:], rom)

	if cpu.Verbose {
		log.Printf("cpu: loaded %d byte rom", len(rom))
	}

	return
}

// DecrementTimers performs one 60 Hz tick of the delay and sound timers.
func (cpu *Cpu) DecrementTimers() {
	cpu.Delay.Decrement()
	cpu.Sound.Decrement()
}

// IsSoundPlaying is true while the sound timer is running.
func (cpu *Cpu) IsSoundPlaying() bool {
	return cpu.Sound.Active()
}

// DisplayBuffer returns a snapshot of the framebuffer, row-major.
func (cpu *Cpu) DisplayBuffer() [io.DISPLAY_PIXELS]bool {
	return cpu.Display.Buffer()
}

// Next returns the instruction at the program counter without executing it.
func (cpu *Cpu) Next() Instruction {
	return Fetch(cpu.Memory[:], cpu.Pc)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc", "i",
		"v0", "v1", "v2", "v3", "v4", "v5", "v6", "v7",
		"v8", "v9", "va", "vb", "vc", "vd", "ve", "vf",
		"sp", "stack", "dt", "st", "next",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%04X", cpu.Pc)
		case "i":
			strval = fmt.Sprintf("%04X", cpu.I)
		case "sp":
			strval = fmt.Sprintf("%d", cpu.Stack.Pointer)
		case "stack":
			var words []string
			for _, addr := range cpu.Stack.Data[:cpu.Stack.Pointer] {
				words = append(words, fmt.Sprintf("%04X", addr))
			}
			if len(words) == 0 {
				strval = "----"
			} else {
				strval = strings.Join(words, " ")
			}
		case "dt":
			strval = fmt.Sprintf("%02X", cpu.Delay.Value())
		case "st":
			strval = fmt.Sprintf("%02X", cpu.Sound.Value())
		case "next":
			strval = cpu.Next().String()
		default:
			n, _ := strconv.ParseUint(reg[1:], 16, 8)
			strval = fmt.Sprintf("%02X", cpu.V[n])
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Tick executes a single instruction cycle: fetch at the program
// counter, then Execute.
func (cpu *Cpu) Tick() (err error) {
	return cpu.Execute(cpu.Next())
}

// span returns count bytes of memory starting at addr.
func (cpu *Cpu) span(addr uint16, count int) (mem []byte, err error) {
	start := int(addr)
	if start+count > MEMORY_SIZE {
		err = ErrMemoryBounds
		return
	}

	mem = cpu.Memory[start : start+count]
	return
}

func flag(cond bool) uint8 {
	if cond {
		return 1
	}
	return 0
}

// Execute executes a single decoded instruction as if it had been fetched
// from the program counter. The program counter only moves if the
// instruction succeeds.
func (cpu *Cpu) Execute(in Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(in), err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%03x: %v", cpu.Pc, in)
	}

	next_pc := cpu.Pc + 2

	x := in.X()
	vx := cpu.V[x]
	vy := cpu.V[in.Y()]

	switch in.Kind() {
	case OP_CLS:
		cpu.Display.Clear()
	case OP_RET:
		addr, ok := cpu.Stack.Pop()
		if !ok {
			err = ErrStackEmpty
			return
		}
		next_pc = addr
	case OP_SYS:
		// Native machine code call; not supported by interpreters.
	case OP_JP:
		next_pc = in.Addr()
	case OP_CALL:
		if !cpu.Stack.Push(next_pc) {
			err = ErrStackFull
			return
		}
		next_pc = in.Addr()
	case OP_SE_BYTE:
		if vx == in.Byte() {
			next_pc += 2
		}
	case OP_SNE_BYTE:
		if vx != in.Byte() {
			next_pc += 2
		}
	case OP_SE_REG:
		if vx == vy {
			next_pc += 2
		}
	case OP_SNE_REG:
		if vx != vy {
			next_pc += 2
		}
	case OP_LD_BYTE:
		cpu.V[x] = in.Byte()
	case OP_ADD_BYTE:
		cpu.V[x] = vx + in.Byte()
	case OP_LD_REG:
		cpu.V[x] = vy
	case OP_OR:
		cpu.V[x] = vx | vy
	case OP_AND:
		cpu.V[x] = vx & vy
	case OP_XOR:
		cpu.V[x] = vx ^ vy
	case OP_ADD_REG:
		sum := uint16(vx) + uint16(vy)
		cpu.V[x] = uint8(sum)
		cpu.V[REG_VF] = uint8(sum >> 8)
	case OP_SUB:
		cpu.V[x] = vx - vy
		cpu.V[REG_VF] = flag(vx >= vy)
	case OP_SHR:
		// Vy is ignored; the shift is in place.
		cpu.V[x] = vx >> 1
		cpu.V[REG_VF] = vx & 1
	case OP_SUBN:
		cpu.V[x] = vy - vx
		cpu.V[REG_VF] = flag(vy >= vx)
	case OP_SHL:
		cpu.V[x] = vx << 1
		cpu.V[REG_VF] = vx >> 7
	case OP_LD_I:
		cpu.I = in.Addr()
	case OP_JP_V0:
		next_pc = in.Addr() + uint16(cpu.V[0])
	case OP_RND:
		cpu.V[x] = uint8(cpu.rand.Intn(256)) & in.Byte()
	case OP_DRW:
		var sprite []byte
		sprite, err = cpu.span(cpu.I, int(in.N()))
		if err != nil {
			return
		}
		collision := cpu.Display.Draw(int(vx), int(vy), sprite)
		cpu.V[REG_VF] = flag(collision)
	case OP_SKP, OP_SKNP:
		var down bool
		down, err = cpu.Keypad.Key(vx)
		if err != nil {
			return
		}
		if down == (in.Kind() == OP_SKP) {
			next_pc += 2
		}
	case OP_LD_VX_DT:
		cpu.V[x] = cpu.Delay.Value()
	case OP_LD_VX_K:
		key, ok := cpu.Keypad.Last()
		if ok {
			cpu.V[x] = key
		} else {
			// Poll again on the next tick.
			next_pc = cpu.Pc
		}
	case OP_LD_DT_VX:
		cpu.Delay.Set(vx)
	case OP_LD_ST_VX:
		cpu.Sound.Set(vx)
	case OP_ADD_I:
		cpu.I += uint16(vx)
	case OP_LD_F:
		cpu.I = FONT_BASE + uint16(vx)*FONT_GLYPH_SIZE
	case OP_LD_B:
		var mem []byte
		mem, err = cpu.span(cpu.I, 3)
		if err != nil {
			return
		}
		mem[0] = vx / 100
		mem[1] = (vx / 10) % 10
		mem[2] = vx % 10
	case OP_LD_MEM_VX:
		var mem []byte
		mem, err = cpu.span(cpu.I, int(x)+1)
		if err != nil {
			return
		}
		copy(mem, cpu.V[:x+1])
	case OP_LD_VX_MEM:
		var mem []byte
		mem, err = cpu.span(cpu.I, int(x)+1)
		if err != nil {
			return
		}
		copy(cpu.V[:x+1], mem)
	default:
		// Undefined instructions are ignored.
	}

	cpu.Pc = next_pc
	cpu.Ticks++

	return
}
