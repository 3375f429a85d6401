// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/ls8/internal"
	"github.com/ezrec/ls8/io"
)

// Channel is an output channel interface.
type Channel io.Channel

// State is the execution state of the CPU.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_HALTED  = State(0) // halted
	STATE_RUNNING = State(1) // running
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE":    fmt.Sprintf("%v", MEMORY_SIZE),
	"REGISTER_COUNT": fmt.Sprintf("%v", REGISTER_COUNT),
	"REG_SP":         fmt.Sprintf("R%v", REG_SP),
}

var _flag_defines = map[string]string{
	"FL_EQ": fmt.Sprintf("%#b", FL_EQ),
	"FL_GT": fmt.Sprintf("%#b", FL_GT),
	"FL_LT": fmt.Sprintf("%#b", FL_LT),
}

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   Memory    // Main memory.
	Register Registers // Register bank.
	Pc       int       // Program counter.
	Flags    uint8     // Flags register, set by CMP.
	State    State     // Execution state.

	Ticks int // Executed instructions counter.

	output Channel // PRN output channel.
}

// NewCpu creates a new, halted, CPU.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_cpu_defines), maps.All(_flag_defines))
}

// SetOutput sets the channel PRN writes to.
func (cpu *Cpu) SetOutput(channel Channel) {
	cpu.output = channel
}

// Output returns the channel PRN writes to.
func (cpu *Cpu) Output() (channel Channel, err error) {
	if cpu.output == nil {
		err = ErrChannelInvalid
		return
	}

	channel = cpu.output
	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %v\n", "state", cpu.State)
	text += fmt.Sprintf("% 5s: %02X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %03b\n", "fl", cpu.Flags)
	for n, val := range cpu.Register {
		text += fmt.Sprintf("% 5s: %02X\n", fmt.Sprintf("r%d", n), val)
	}
	text += fmt.Sprintf("% 5s: %02X\n", "stack", cpu.Peek())

	return
}

// Trace returns the PC, the three bytes at the PC, and all registers,
// as two-digit hexadecimal values.
func (cpu *Cpu) Trace() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "TRACE: %02X |", cpu.Pc)
	for n := range 3 {
		value, _ := cpu.Memory.Read(cpu.Pc + n)
		fmt.Fprintf(&sb, " %02X", value)
	}
	sb.WriteString(" |")
	for _, val := range cpu.Register {
		fmt.Fprintf(&sb, " %02X", val)
	}

	return sb.String()
}

// Reset the CPU state.
// - Clears memory, registers, and flags.
// - Sets the PC to 0.
// - Zeros statistics counters.
// - Rewinds the output channel.
// - Halts the CPU.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Memory[:])
	clear(cpu.Register[:])
	cpu.Pc = 0
	cpu.Flags = 0
	cpu.State = STATE_HALTED
	cpu.Ticks = 0

	if cpu.output != nil {
		cpu.output.Rewind()
	}
}

// Load copies a program image into memory, starting at address 0.
func (cpu *Cpu) Load(image []uint8) (err error) {
	if len(image) > len(cpu.Memory) {
		err = errors.Join(ErrProgramTooLarge, ErrOutOfBounds)
		return
	}

	copy(cpu.Memory[:], image)

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", len(image))
	}

	return
}

// Start marks the CPU as running, without changing any other state.
func (cpu *Cpu) Start() {
	cpu.State = STATE_RUNNING
}

// Halted returns true if the CPU is not running.
func (cpu *Cpu) Halted() bool {
	return cpu.State == STATE_HALTED
}

// Fetch reads the instruction at the PC.
// Both candidate operands are always returned; those past the end of
// memory read as zero, unless the opcode needs them.
func (cpu *Cpu) Fetch() (inst Instruction, err error) {
	inst.Pc = cpu.Pc

	opcode, err := cpu.Memory.Read(cpu.Pc)
	if err != nil {
		return
	}
	inst.Opcode = Opcode(opcode)

	info, ok := inst.Opcode.Info()
	if !ok {
		err = ErrInvalidInstruction
		return
	}

	for n := range inst.Operands {
		addr := cpu.Pc + 1 + n
		if addr >= len(cpu.Memory) && n >= len(info.Operands) {
			continue
		}
		inst.Operands[n], err = cpu.Memory.Read(addr)
		if err != nil {
			return
		}
	}

	return
}

// Tick executes a single CPU instruction cycle.
// Any error halts the CPU.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted() {
		err = ErrHalted
		return
	}

	if cpu.Verbose {
		log.Print(cpu.Trace())
	}

	defer func() {
		if err != nil {
			cpu.State = STATE_HALTED
		}
	}()

	inst, err := cpu.Fetch()
	if err != nil {
		err = errors.Join(ErrOpcode(inst), err)
		return
	}

	err = cpu.Execute(inst)
	return
}

// Run starts the CPU and ticks until it halts.
// Only an error, or a HLT instruction, stops the run.
func (cpu *Cpu) Run() (err error) {
	cpu.Start()

	for !cpu.Halted() {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(inst Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(inst), err)
		}
	}()

	info, ok := inst.Opcode.Info()
	if !ok {
		err = ErrInvalidInstruction
		return
	}

	next_pc := inst.Pc + info.Width()

	reg_a := int(inst.Operands[0])
	reg_b := int(inst.Operands[1])

	switch inst.Opcode {
	case OP_LDI:
		err = cpu.Register.Write(reg_a, inst.Operands[1])
	case OP_PRN:
		var value uint8
		value, err = cpu.Register.Read(reg_a)
		if err != nil {
			return
		}
		var out Channel
		out, err = cpu.Output()
		if err != nil {
			return
		}
		err = out.Send(value)
	case OP_HLT:
		cpu.State = STATE_HALTED
	case OP_PUSH:
		var value uint8
		value, err = cpu.Register.Read(reg_a)
		if err != nil {
			return
		}
		err = cpu.Push(value)
	case OP_POP:
		err = cpu.PopTo(reg_a)
	case OP_CALL:
		if _, err = cpu.Register.Read(reg_a); err != nil {
			return
		}
		ret := inst.Pc + info.Width()
		if ret >= len(cpu.Memory) {
			err = ErrOutOfBounds
			return
		}
		err = cpu.Push(uint8(ret))
		if err != nil {
			return
		}
		var target uint8
		target, err = cpu.Register.Read(reg_a)
		next_pc = int(target)
	case OP_RET:
		var target uint8
		target, err = cpu.Pop()
		next_pc = int(target)
	case OP_JMP, OP_JEQ, OP_JNE:
		var target uint8
		target, err = cpu.Register.Read(reg_a)
		if err != nil {
			return
		}
		equal := (cpu.Flags & FL_EQ) != 0
		switch {
		case inst.Opcode == OP_JMP,
			inst.Opcode == OP_JEQ && equal,
			inst.Opcode == OP_JNE && !equal:
			next_pc = int(target)
		}
	default:
		if !info.Alu {
			err = ErrInvalidInstruction
			return
		}
		if len(info.Operands) == 1 {
			reg_b = reg_a
		}
		err = cpu.Alu(info.AluOp, reg_a, reg_b)
	}

	if err != nil {
		return
	}

	cpu.Pc = next_pc
	cpu.Ticks += 1

	return
}
