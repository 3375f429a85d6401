package cpu

import (
	"bufio"
	"errors"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// Loader reads programs in the text format of one base-2 byte per line.
// Everything from a '#' to the end of the line is a comment, and lines
// that are blank after removing comments are skipped.
type Loader struct {
	Verbose bool // If set, verbosely logs the loaded bytes.
}

// Parse parses an input stream into a Program.
func (ld *Loader) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var text string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: text, Err: err}
		}
	}()

	prog = &Program{}
	ip := 0

	for scanner.Scan() {
		text = scanner.Text()
		lineno += 1

		literal, _, _ := strings.Cut(text, "#")
		literal = strings.TrimSpace(literal)
		if len(literal) == 0 {
			continue
		}

		var value uint64
		value, err = strconv.ParseUint(literal, 2, 8)
		if err != nil {
			err = errors.Join(ErrInvalidLiteral, err)
			return
		}

		if ip >= MEMORY_SIZE {
			err = errors.Join(ErrProgramTooLarge, ErrOutOfBounds)
			return
		}

		if ld.Verbose {
			log.Printf("%v: %02X: %08b", lineno, ip, value)
		}

		prog.Lines = append(prog.Lines, Line{
			LineNo: lineno,
			Ip:     ip,
			Words:  []string{literal},
			Codes:  []uint8{uint8(value)},
		})
		ip++
	}

	err = scanner.Err()

	return
}

// LoadFile loads a program from the named file.
func LoadFile(path string) (prog *Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		err = errors.Join(ErrProgramNotFound, err)
		return
	}
	defer inf.Close()

	ld := &Loader{}
	return ld.Parse(inf)
}
