package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	for _, addr := range []int{0, 1, 0x7f, MEMORY_SIZE - 1} {
		assert.NoError(mem.Write(addr, uint8(addr^0x5a)))
		value, err := mem.Read(addr)
		assert.NoError(err)
		assert.Equal(uint8(addr^0x5a), value)
	}

	for _, addr := range []int{-1, MEMORY_SIZE, MEMORY_SIZE + 1} {
		_, err := mem.Read(addr)
		assert.ErrorIs(err, ErrOutOfBounds, addr)
		assert.ErrorIs(mem.Write(addr, 1), ErrOutOfBounds, addr)
	}
}

func TestRegisters(t *testing.T) {
	assert := assert.New(t)

	reg := &Registers{}

	for n := range REGISTER_COUNT {
		assert.NoError(reg.Write(n, uint8(n+0x10)))
	}
	for n := range REGISTER_COUNT {
		value, err := reg.Read(n)
		assert.NoError(err)
		assert.Equal(uint8(n+0x10), value)
	}

	for _, index := range []int{-1, REGISTER_COUNT, 0xff} {
		_, err := reg.Read(index)
		assert.ErrorIs(err, ErrOutOfBounds, index)
		assert.ErrorIs(reg.Write(index, 1), ErrOutOfBounds, index)
	}
}
