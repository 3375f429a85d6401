// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/io"
)

// Emulator state. CPU + program listing + output tape.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Tape io.Tape // PRN output channel.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Cpu.SetOutput(&emu.Tape)

	return
}

// Reset the CPU, load the program into memory, and start the CPU.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()

	err = emu.Cpu.Load(emu.Program.Binary())
	if err != nil {
		return
	}

	emu.Cpu.Start()

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns current program counter.
func (emu *Emulator) Pc() int {
	return emu.Cpu.Pc
}

// LineNo returns the source line number of the byte at the program
// counter, or 0 if there is none.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
// done is set once the CPU has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Pc: pc, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
	}

	done = emu.Cpu.Halted()

	return
}

// Run ticks the emulator until the CPU halts.
// A limit of 0 runs without bound, otherwise ErrTickLimit is returned
// after limit ticks.
func (emu *Emulator) Run(limit int) (err error) {
	for n := 0; limit == 0 || n < limit; n++ {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}

	err = ErrTickLimit

	return
}
