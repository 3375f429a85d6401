package cpu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProgram() *Program {
	return &Program{
		Lines: []Line{
			{LineNo: 1, Ip: 0, Words: []string{"LDI", "R0", "8"}, Codes: []uint8{0x82, 0x00, 0x08}},
			{LineNo: 3, Ip: 3, Words: []string{"PRN", "R0"}, Codes: []uint8{0x47, 0x00}},
			{LineNo: 4, Ip: 5, Words: []string{"HLT"}, Codes: []uint8{0x01}},
		},
	}
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	table := [](struct {
		ip     int
		lineno int
		index  int
	}){
		{0, 1, 0},
		{2, 1, 2},
		{3, 3, 0},
		{4, 3, 1},
		{5, 4, 0},
	}

	for _, entry := range table {
		dbg := prog.Debug(entry.ip)
		if assert.NotNil(dbg.Line, entry.ip) {
			assert.Equal(entry.lineno, dbg.LineNo, entry.ip)
			assert.Equal(entry.index, dbg.Index, entry.ip)
		}
	}
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	dbg := prog.Debug(6)
	assert.Nil(dbg.Line)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(-1)
	assert.Nil(dbg.Line)
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	assert.Equal(6, prog.Size())
	assert.Equal([]uint8{0x82, 0x00, 0x08, 0x47, 0x00, 0x01}, prog.Binary())

	var ips []int
	for ip := range prog.Codes() {
		ips = append(ips, ip)
		if ip == 3 {
			break
		}
	}
	assert.Equal([]int{0, 1, 2, 3}, ips)

	empty := &Program{}
	assert.Equal([]uint8{}, empty.Binary())
}

func TestProgram_WriteTo(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	out := &bytes.Buffer{}
	n, err := prog.WriteTo(out)
	assert.NoError(err)
	assert.Equal(int64(out.Len()), n)

	expected := []string{
		"10000010 # LDI R0 8",
		"00000000",
		"00001000",
		"01000111 # PRN R0",
		"00000000",
		"00000001 # HLT",
		"",
	}
	assert.Equal(strings.Join(expected, "\n"), out.String())

	ld := &Loader{}
	loaded, err := ld.Parse(out)
	assert.NoError(err)
	assert.Equal(prog.Binary(), loaded.Binary())
}
