// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

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
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Assembler is a single pass macro assembler for LS-8 assembly language.
//
//	; comment
//	.equ NAME VALUE
//	.macro NAME ARG...
//	.endm
//	Label: LDI R0,Label
//	db VALUE
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Lines   []Line // List of generated lines.

	predefine map[string]string   // Predefines
	Label     map[string]int      // Map of jump labels to addresses.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.

	expansions int // Count of macro expansions, for '@' local labels.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// regMap maps register names to register indexes.
var regMap = map[string]uint8{
	"R0": 0,
	"R1": 1,
	"R2": 2,
	"R3": 3,
	"R4": 4,
	"R5": 5,
	"R6": 6,
	"R7": 7,
	"SP": REG_SP,
}

// reReference matches words that are candidate label references.
var reReference = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value uint8, err error) {
	invert := false
	if len(word) > 1 && word[0] == '~' {
		invert = true
		word = word[1:]
	}

	v64, err := strconv.ParseInt(word, 0, 16)
	if err != nil || v64 > 0xff || v64 < -0x80 {
		err = ErrParseNumber(word)
		return
	}

	value = uint8(v64)

	if invert {
		value = ^value
	}

	return
}

// register returns the register index of a word.
func (asm *Assembler) register(word string) (reg uint8, err error) {
	reg, ok := regMap[strings.ToUpper(word)]
	if !ok {
		err = ErrRegisterInvalid
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint8, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var v8 uint8
		v8, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(int(v8))
	}
	err = nil
	for key, ip := range asm.Label {
		pred[key] = starlark.MakeInt(ip)
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
	value = uint8(st_int64)
	return
}

var (
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
)

// splitWords splits a line on whitespace and commas.
func splitWords(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
}

// parseLine parses a single line into words, expanding character
// constants, expressions, equates, and macros.
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
			case "t":
				str = "\t"
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
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = splitWords(line)

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
		asm.Label[label] = asm.currentIp()
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
			asm.Equate[arg] = args[n]
		}
		defer func() { asm.Equate = old_equate }()

		asm.expansions++
		local := fmt.Sprintf("%v_%v_", name, asm.expansions)

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", local)
			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = ErrSyntax{LineNo: lineno, Line: line, Err: ErrMacro{Macro: name, Line: lineno, Err: err}}
				return
			}

			err = asm.parseWords(words, lineno)
			if err != nil {
				err = ErrSyntax{LineNo: lineno, Line: line, Err: ErrMacro{Macro: name, Line: lineno, Err: err}}
				return
			}
		}
		words = nil
		return
	}

	return
}

// currentIp gets the address of the next byte to assemble.
func (asm *Assembler) currentIp() int {
	if len(asm.Lines) == 0 {
		return 0
	}

	last := asm.Lines[len(asm.Lines)-1]

	return last.Ip + len(last.Codes)
}

// Parse parses an input stream into a Program.
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
	asm.expansions = 0
	asm.Lines = asm.Lines[:0]
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = maps.Collect(NewCpu().Defines())
	asm.Equate["LINENO"] = "0"
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text, _, _ = strings.Cut(text, ";")
		line = strings.TrimSpace(text)
		words := splitWords(line)

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

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	if asm.currentIp() > MEMORY_SIZE {
		err = ErrProgramTooLarge
		return
	}

	// Final linking of labels.
	for n := range asm.Lines {
		op := &asm.Lines[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		label := op.LinkLabel
		ip, ok := asm.Label[label]
		if !ok {
			lineno = op.LineNo
			line = strings.Join(op.Words, " ")
			err = ErrLabelMissing(label)
			return
		}
		if ip >= MEMORY_SIZE {
			lineno = op.LineNo
			line = strings.Join(op.Words, " ")
			err = ErrOutOfBounds
			return
		}
		op.Codes[len(op.Codes)-1] = uint8(ip)
	}

	prog = &Program{
		Lines: slices.Clone(asm.Lines),
	}

	return
}

// immediate returns the value of an immediate operand, or the name of
// the label it references.
func (asm *Assembler) immediate(word string) (value uint8, label string, err error) {
	value, err = asm.valueOf(word)
	if err == nil {
		return
	}

	if reReference.MatchString(word) {
		if _, is_reg := regMap[strings.ToUpper(word)]; !is_reg {
			label = word
			err = nil
		}
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var codes []uint8
	var label string

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	defer func() {
		if len(codes) == 0 {
			return
		}
		line := Line{LineNo: lineno, Ip: asm.currentIp(), Words: initial_words, Codes: codes, LinkLabel: label}
		asm.Lines = append(asm.Lines, line)
	}()

	// db VALUE
	if strings.EqualFold(words[0], "db") {
		if len(words) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(words) > 2 {
			err = ErrOpcodeExtraArgs
			return
		}
		var value uint8
		value, label, err = asm.immediate(words[1])
		if err != nil {
			return
		}
		codes = []uint8{value}
		return
	}

	op, ok := LookupMnemonic(words[0])
	if !ok {
		err = ErrInstructionInvalid
		return
	}
	info, _ := op.Info()

	args := words[1:]
	if len(args) < len(info.Operands) {
		err = ErrOpcodeValueMissing
		return
	}
	if len(args) > len(info.Operands) {
		err = ErrOpcodeExtraArgs
		return
	}

	out := []uint8{uint8(op)}
	for n, kind := range info.Operands {
		var value uint8
		switch kind {
		case OPERAND_REG:
			value, err = asm.register(args[n])
		case OPERAND_IMM:
			value, label, err = asm.immediate(args[n])
		}
		if err != nil {
			return
		}
		out = append(out, value)
	}

	codes = out

	return
}
