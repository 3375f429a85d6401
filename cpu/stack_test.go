package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register[REG_SP] = 0xf4

	assert.NoError(cpu.Push(0x12))
	assert.Equal(uint8(0xf3), cpu.Register[REG_SP])
	assert.Equal(uint8(0x12), cpu.Memory[0xf3])
	assert.Equal(uint8(0x12), cpu.Peek())
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register[REG_SP] = 0xf4
	assert.NoError(cpu.Push(0x12))
	assert.NoError(cpu.Push(0x34))

	val, err := cpu.Pop()
	assert.NoError(err)
	assert.Equal(uint8(0x34), val)
	assert.Equal(uint8(0xf3), cpu.Register[REG_SP])

	val, err = cpu.Pop()
	assert.NoError(err)
	assert.Equal(uint8(0x12), val)
	assert.Equal(uint8(0xf4), cpu.Register[REG_SP])
}

func TestStack_Wrap(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	assert.NoError(cpu.Push(0xab))
	assert.Equal(uint8(0xff), cpu.Register[REG_SP])
	assert.Equal(uint8(0xab), cpu.Memory[0xff])

	val, err := cpu.Pop()
	assert.NoError(err)
	assert.Equal(uint8(0xab), val)
	assert.Equal(uint8(0), cpu.Register[REG_SP])
}

func TestStack_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	for sp := range 256 {
		cpu := NewCpu()
		cpu.Register[REG_SP] = uint8(sp)

		assert.NoError(cpu.Push(uint8(sp ^ 0xff)))
		val, err := cpu.Pop()
		assert.NoError(err)
		assert.Equal(uint8(sp^0xff), val)
		assert.Equal(uint8(sp), cpu.Register[REG_SP])
	}
}
