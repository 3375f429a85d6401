// Package io provides the output devices of the LS-8 emulator.
package io

// Channel defines the interface for output channels.
// Channels receive one byte value per send.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Send writes a single value to the channel.
	Send(value uint8) error
}
