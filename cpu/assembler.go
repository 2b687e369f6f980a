// Copyright 2025, dvjn

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	chipio "github.com/dvjn/chip8-emulator/io"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":          "0",
	"PROGRAM_START":   fmt.Sprintf("%#x", PROGRAM_START),
	"FONT_BASE":       fmt.Sprintf("%#x", FONT_BASE),
	"FONT_GLYPH_SIZE": fmt.Sprintf("%v", FONT_GLYPH_SIZE),
}

// Assembler is a single pass macro assembler for CHIP-8 programs.
//
// Source lines hold an optional label, a mnemonic or directive, and
// operands separated by spaces or commas. A ';' starts a comment.
// Operands may be registers (V0-VF), numbers (decimal, 0x.., 0b.., or
// $.. hexadecimal), 'c' characters, labels, equates, or $(expr)
// compile-time expressions.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string   // Predefines
	Label     map[string]int      // Map of labels to addresses.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.

	expansions int // Macro expansions in this Parse.
}

// Predefine defines a new equate or redefines an existing equate for
// every subsequent Parse.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

var (
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
	reRegister   = regexp.MustCompile(`^[vV][0-9a-fA-F]$`)
	reLabel      = regexp.MustCompile(`^[A-Za-z_.][A-Za-z0-9_.]*$`)
)

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value uint32, err error) {
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}
	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}
	if word[0] == '\'' {
		// Character quotes should have been expanded into
		// values in parseLine()
		err = ErrParseCharacter(strings.Trim(word, "'"))
		return
	}
	text := word
	if text[0] == '$' {
		text = "0x" + text[1:]
	}
	v64, err := strconv.ParseInt(text, 0, 33)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 <= 0xffffffff && v64 >= -int64(0x80000000) {
		if v64 < 0 {
			value = uint32(0xffffffff + (v64 + 1))
		} else {
			value = uint32(v64)
		}
	}

	if invert {
		value = ^value
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value32 uint32
		value32, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(int(value32))
	}
	err = nil
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeInt(addr)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_int64)
	return
}

// parseLine parses a single line into words, handling equates, labels
// and macro expansion.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	line = reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	line = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	if err != nil {
		return
	}

	words = strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentAddr()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = words[1+n]
		}
		defer func() { asm.Equate = old_equate }()

		// Local '@' labels are unique to each expansion.
		asm.expansions++
		local := fmt.Sprintf("%v_%v_", name, asm.expansions)
		for n, line := range macro.Lines {
			mline := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", local)
			words, err = asm.parseLine(line, mline)
			if err != nil {
				err = ErrMacro{Macro: name, Line: mline, Err: err}
				err = ErrSyntax{LineNo: mline, Line: line, Err: err}
				return
			}

			err = asm.parseWords(words, mline)
			if err != nil {
				err = ErrMacro{Macro: name, Line: mline, Err: err}
				err = ErrSyntax{LineNo: mline, Line: line, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// currentAddr gets the load address of the next generated byte.
func (asm *Assembler) currentAddr() int {
	if len(asm.Opcode) == 0 {
		return PROGRAM_START
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Addr + len(last.Bytes)
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	asm.expansions = 0
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}
	if err = scanner.Err(); err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	if asm.currentAddr()-PROGRAM_START > chipio.ROM_LIMIT {
		err = ErrProgramTooLarge
		return
	}

	// Final linking of address labels.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		label := op.LinkLabel
		addr, ok := asm.Label[label]
		if !ok {
			lineno = op.LineNo
			line = strings.Join(op.Words, " ")
			err = ErrLabelMissing(label)
			return
		}
		if len(op.Bytes) != 2 {
			log.Fatalf("Unable to link label '%s' to line %d: %v", label, op.LineNo, op.Words)
		}
		op.Bytes[0] |= uint8((addr >> 8) & 0x0f)
		op.Bytes[1] |= uint8(addr & 0xff)
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// register decodes a Vx register operand.
func register(word string) (reg uint16, err error) {
	if !reRegister.MatchString(word) {
		err = ErrRegisterInvalid
		return
	}

	v, _ := strconv.ParseUint(word[1:], 16, 8)
	reg = uint16(v)
	return
}

// isRegister reports whether a word names a Vx register.
func isRegister(word string) bool {
	return reRegister.MatchString(word)
}

// immediate decodes a numeric operand no larger than limit.
func (asm *Assembler) immediate(word string, limit uint32) (value uint16, err error) {
	v32, err := asm.valueOf(word)
	if err != nil {
		return
	}

	if v32 > limit {
		err = ErrOperandRange{Value: v32, Limit: limit}
		return
	}

	value = uint16(v32)
	return
}

// address decodes a 12-bit address operand. Non-numeric operands are
// returned as a label to link once the whole program is known.
func (asm *Assembler) address(word string) (addr uint16, label string, err error) {
	addr, err = asm.immediate(word, ADDR_MASK)
	if _, bad := err.(ErrParseNumber); bad && reLabel.MatchString(word) {
		err = nil
		addr = 0
		label = word
	}
	return
}

// keyword matches special operand names regardless of case.
func keyword(word string, name string) bool {
	return strings.EqualFold(word, name)
}

// args checks an operand count.
func args(words []string, count int) (err error) {
	switch {
	case len(words) < count:
		err = ErrOpcodeMissing
	case len(words) > count:
		err = ErrOpcodeExtraArgs
	}
	return
}

// aluMap maps the register-register operations to their low nibble.
var aluMap = map[string]uint16{
	"or":   0x1,
	"and":  0x2,
	"xor":  0x3,
	"sub":  0x5,
	"subn": 0x7,
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var data []byte
	var is_data bool
	var label string

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	defer func() {
		if err != nil || len(data) == 0 {
			return
		}
		opcode := Opcode{LineNo: lineno, Addr: asm.currentAddr(), Words: initial_words, Bytes: data, IsData: is_data, LinkLabel: label}
		asm.Opcode = append(asm.Opcode, opcode)
	}()

	emit := func(word uint16) {
		data = append(data, uint8(word>>8), uint8(word))
	}

	op := strings.ToLower(words[0])
	operand := words[1:]

	switch op {
	case ".byte":
		if len(operand) == 0 {
			err = ErrOpcodeMissing
			return
		}
		for _, word := range operand {
			var value uint16
			value, err = asm.immediate(word, 0xff)
			if err != nil {
				return
			}
			data = append(data, uint8(value))
		}
		is_data = true
	case ".word":
		if len(operand) == 0 {
			err = ErrOpcodeMissing
			return
		}
		for _, word := range operand {
			var value uint16
			value, err = asm.immediate(word, 0xffff)
			if err != nil {
				return
			}
			emit(value)
		}
		is_data = true
	case "cls":
		if err = args(operand, 0); err != nil {
			return
		}
		emit(0x00E0)
	case "ret":
		if err = args(operand, 0); err != nil {
			return
		}
		emit(0x00EE)
	case "sys", "call", "jp":
		base := map[string]uint16{"sys": 0x0000, "call": 0x2000, "jp": 0x1000}[op]
		if op == "jp" && len(operand) == 2 {
			// JP V0, addr
			if !keyword(operand[0], "V0") {
				err = ErrRegisterInvalid
				return
			}
			operand = operand[1:]
			base = 0xB000
		}
		if err = args(operand, 1); err != nil {
			return
		}
		var addr uint16
		addr, label, err = asm.address(operand[0])
		if err != nil {
			return
		}
		emit(base | addr)
	case "se", "sne":
		if err = args(operand, 2); err != nil {
			return
		}
		var x, y uint16
		x, err = register(operand[0])
		if err != nil {
			return
		}
		if isRegister(operand[1]) {
			y, _ = register(operand[1])
			base := uint16(0x5000)
			if op == "sne" {
				base = 0x9000
			}
			emit(base | x<<8 | y<<4)
			return
		}
		var kk uint16
		kk, err = asm.immediate(operand[1], 0xff)
		if err != nil {
			return
		}
		base := uint16(0x3000)
		if op == "sne" {
			base = 0x4000
		}
		emit(base | x<<8 | kk)
	case "ld":
		if err = args(operand, 2); err != nil {
			return
		}
		dst, src := operand[0], operand[1]
		switch {
		case keyword(dst, "I"):
			var addr uint16
			addr, label, err = asm.address(src)
			if err != nil {
				return
			}
			emit(0xA000 | addr)
		case keyword(dst, "DT"), keyword(dst, "ST"), keyword(dst, "F"), keyword(dst, "B"), keyword(dst, "[I]"):
			var x uint16
			x, err = register(src)
			if err != nil {
				return
			}
			low := map[string]uint16{"DT": 0x15, "ST": 0x18, "F": 0x29, "B": 0x33, "[I]": 0x55}[strings.ToUpper(dst)]
			emit(0xF000 | x<<8 | low)
		default:
			var x uint16
			x, err = register(dst)
			if err != nil {
				return
			}
			switch {
			case isRegister(src):
				y, _ := register(src)
				emit(0x8000 | x<<8 | y<<4)
			case keyword(src, "DT"):
				emit(0xF007 | x<<8)
			case keyword(src, "K"):
				emit(0xF00A | x<<8)
			case keyword(src, "[I]"):
				emit(0xF065 | x<<8)
			default:
				var kk uint16
				kk, err = asm.immediate(src, 0xff)
				if err != nil {
					return
				}
				emit(0x6000 | x<<8 | kk)
			}
		}
	case "add":
		if err = args(operand, 2); err != nil {
			return
		}
		if keyword(operand[0], "I") {
			var x uint16
			x, err = register(operand[1])
			if err != nil {
				return
			}
			emit(0xF01E | x<<8)
			return
		}
		var x uint16
		x, err = register(operand[0])
		if err != nil {
			return
		}
		if isRegister(operand[1]) {
			y, _ := register(operand[1])
			emit(0x8004 | x<<8 | y<<4)
			return
		}
		var kk uint16
		kk, err = asm.immediate(operand[1], 0xff)
		if err != nil {
			return
		}
		emit(0x7000 | x<<8 | kk)
	case "or", "and", "xor", "sub", "subn":
		if err = args(operand, 2); err != nil {
			return
		}
		var x, y uint16
		x, err = register(operand[0])
		if err != nil {
			return
		}
		y, err = register(operand[1])
		if err != nil {
			return
		}
		emit(0x8000 | x<<8 | y<<4 | aluMap[op])
	case "shr", "shl":
		// SHR Vx {, Vy}: Vy is encoded but not used by the CPU.
		if len(operand) != 2 {
			if err = args(operand, 1); err != nil {
				return
			}
		}
		var x, y uint16
		x, err = register(operand[0])
		if err != nil {
			return
		}
		if len(operand) == 2 {
			y, err = register(operand[1])
			if err != nil {
				return
			}
		}
		low := uint16(0x6)
		if op == "shl" {
			low = 0xE
		}
		emit(0x8000 | x<<8 | y<<4 | low)
	case "rnd":
		if err = args(operand, 2); err != nil {
			return
		}
		var x, kk uint16
		x, err = register(operand[0])
		if err != nil {
			return
		}
		kk, err = asm.immediate(operand[1], 0xff)
		if err != nil {
			return
		}
		emit(0xC000 | x<<8 | kk)
	case "drw":
		if err = args(operand, 3); err != nil {
			return
		}
		var x, y, n uint16
		x, err = register(operand[0])
		if err != nil {
			return
		}
		y, err = register(operand[1])
		if err != nil {
			return
		}
		n, err = asm.immediate(operand[2], 0xf)
		if err != nil {
			return
		}
		emit(0xD000 | x<<8 | y<<4 | n)
	case "skp", "sknp":
		if err = args(operand, 1); err != nil {
			return
		}
		var x uint16
		x, err = register(operand[0])
		if err != nil {
			return
		}
		low := uint16(0x9E)
		if op == "sknp" {
			low = 0xA1
		}
		emit(0xE000 | x<<8 | low)
	default:
		err = ErrInstructionInvalid
		return
	}

	return
}
