package cpu

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Line is a line of source that generated program bytes.
type Line struct {
	LineNo    int      // Source line number.
	Ip        int      // Address of the first byte.
	Words     []string // Source words.
	Codes     []uint8  // Generated bytes.
	LinkLabel string   // Label to link into the last byte.
}

// Program is a listing of the bytes to load into memory.
type Program struct {
	Lines []Line
}

type Debug struct {
	*Line
	Index int
}

// Debug finds the source line that generated the byte at ip.
func (prog *Program) Debug(ip int) (dbg Debug) {
	for n, line := range prog.Lines {
		if ip >= line.Ip && ip < line.Ip+len(line.Codes) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: ip - line.Ip,
			}
			break
		}
	}

	return
}

// Size returns the number of bytes in the program.
func (prog *Program) Size() (size int) {
	for _, line := range prog.Lines {
		size += len(line.Codes)
	}

	return
}

// Binary returns the memory image of the program.
func (prog *Program) Binary() (bins []uint8) {
	bins = make([]uint8, 0, prog.Size())
	for _, code := range prog.Codes() {
		bins = append(bins, code)
	}

	return
}

// Codes iterates over the address and value of every program byte.
func (prog *Program) Codes() iter.Seq2[int, uint8] {
	return func(yield func(ip int, code uint8) bool) {
		for _, line := range prog.Lines {
			for n, code := range line.Codes {
				if !yield(line.Ip+n, code) {
					return
				}
			}
		}
	}
}

// WriteTo writes the program in the loadable text format: one base-2
// byte per line, the first byte of each source line commented with its
// source words.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	var sb strings.Builder

	for _, line := range prog.Lines {
		for index, code := range line.Codes {
			fmt.Fprintf(&sb, "%08b", code)
			if index == 0 && len(line.Words) != 0 {
				fmt.Fprintf(&sb, " # %v", strings.Join(line.Words, " "))
			}
			sb.WriteString("\n")
		}
	}

	written, err := io.WriteString(w, sb.String())
	n = int64(written)

	return
}
