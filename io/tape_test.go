package io

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	for _, value := range []uint8{0, 8, 42, 255} {
		assert.NoError(tape.Send(value))
	}

	assert.Equal("0\n8\n42\n255\n", output.String())
	assert.Equal(4, tape.Sent)
}

func TestTape_Rewind(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	assert.NoError(tape.Send(1))
	tape.Rewind()
	assert.Equal(0, tape.Sent)
	assert.Equal("1\n", output.String())
}

func TestTape_Send_Closed(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	err := tape.Send(1)
	assert.ErrorIs(err, ErrChannelClosed)
	assert.Equal(0, tape.Sent)
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestTape_Send_WriteError(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Output: failWriter{}}
	assert.Error(tape.Send(1))
	assert.Equal(0, tape.Sent)
}
