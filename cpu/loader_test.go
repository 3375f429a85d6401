package cpu

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoader(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"# print8.ls8",
		"",
		"10000010 # LDI R0,8",
		"00000000",
		"   ",
		"00001000",
		"  # nothing here",
		"01000111 # PRN R0",
		"\t00000000\t",
		"00000001 # HLT",
		"",
	}

	ld := &Loader{}
	prog, err := ld.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal([]uint8{0b10000010, 0, 8, 0b01000111, 0, 1}, prog.Binary())

	expected := []Line{
		{LineNo: 3, Ip: 0, Words: []string{"10000010"}, Codes: []uint8{0x82}},
		{LineNo: 4, Ip: 1, Words: []string{"00000000"}, Codes: []uint8{0x00}},
		{LineNo: 6, Ip: 2, Words: []string{"00001000"}, Codes: []uint8{0x08}},
		{LineNo: 8, Ip: 3, Words: []string{"01000111"}, Codes: []uint8{0x47}},
		{LineNo: 9, Ip: 4, Words: []string{"00000000"}, Codes: []uint8{0x00}},
		{LineNo: 10, Ip: 5, Words: []string{"00000001"}, Codes: []uint8{0x01}},
	}
	assert.Equal(expected, prog.Lines)
}

func TestLoader_Empty(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}
	prog, err := ld.Parse(strings.NewReader("# only a comment\n\n"))
	assert.NoError(err)
	assert.Equal(0, prog.Size())
}

func TestLoader_InvalidLiteral(t *testing.T) {
	assert := assert.New(t)

	table := []string{
		"00000002",
		"LDI",
		"0x82",
		"100000000",
		"-1",
		"1010 1010",
	}

	for _, literal := range table {
		ld := &Loader{}
		_, err := ld.Parse(strings.NewReader("00000001\n" + literal + " # bad\n"))
		assert.ErrorIs(err, ErrInvalidLiteral, literal)

		var syn ErrSyntax
		if assert.True(errors.As(err, &syn), literal) {
			assert.Equal(2, syn.LineNo)
		}
	}
}

func TestLoader_TooLarge(t *testing.T) {
	assert := assert.New(t)

	text := strings.Repeat("00000001\n", MEMORY_SIZE)

	ld := &Loader{}
	prog, err := ld.Parse(strings.NewReader(text))
	assert.NoError(err)
	assert.Equal(MEMORY_SIZE, prog.Size())

	_, err = ld.Parse(strings.NewReader(text + "00000001\n"))
	assert.ErrorIs(err, ErrProgramTooLarge)
	assert.ErrorIs(err, ErrOutOfBounds)
}

func TestLoadFile(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "print8.ls8")
	err := os.WriteFile(path, []byte("10000010\n00000000\n00001000\n01000111\n00000000\n00000001\n"), 0o644)
	assert.NoError(err)

	prog, err := LoadFile(path)
	assert.NoError(err)
	assert.Equal([]uint8{0x82, 0, 8, 0x47, 0, 1}, prog.Binary())
}

func TestLoadFile_NotFound(t *testing.T) {
	assert := assert.New(t)

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.ls8"))
	assert.ErrorIs(err, ErrProgramNotFound)
	assert.ErrorIs(err, os.ErrNotExist)
}
