package io

import (
	"io"
	"strconv"
)

// Tape writes each value it is sent to an io.Writer as an unsigned
// decimal number followed by a newline.
type Tape struct {
	Output io.Writer

	Sent int // Values written since the last rewind.
}

var _ Channel = (*Tape)(nil)

// Rewind clears the count of sent values. The output itself cannot be
// rewound.
func (tc *Tape) Rewind() {
	tc.Sent = 0
}

// Send writes a value as a line of decimal text.
func (tc *Tape) Send(value uint8) (err error) {
	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	line := strconv.AppendUint(nil, uint64(value), 10)
	line = append(line, '\n')

	_, err = tc.Output.Write(line)
	if err != nil {
		return
	}

	tc.Sent++

	return
}
