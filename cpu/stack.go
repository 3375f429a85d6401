package cpu

// The stack lives in main memory, grows downwards, and REG_SP addresses
// its top entry.

// Push decrements SP and stores value at the new top of stack.
func (cpu *Cpu) Push(value uint8) (err error) {
	cpu.Register[REG_SP]--
	return cpu.Memory.Write(int(cpu.Register[REG_SP]), value)
}

// Pop returns the top of stack and increments SP.
func (cpu *Cpu) Pop() (value uint8, err error) {
	value, err = cpu.Memory.Read(int(cpu.Register[REG_SP]))
	if err != nil {
		return
	}

	cpu.Register[REG_SP]++
	return
}

// PopTo loads the top of stack into register reg, then increments SP.
// When reg is SP, the increment applies to the loaded value.
func (cpu *Cpu) PopTo(reg int) (err error) {
	value, err := cpu.Memory.Read(int(cpu.Register[REG_SP]))
	if err != nil {
		return
	}

	err = cpu.Register.Write(reg, value)
	if err != nil {
		return
	}

	cpu.Register[REG_SP]++
	return
}

// Peek returns the top of stack without changing SP.
func (cpu *Cpu) Peek() (value uint8) {
	return cpu.Memory[cpu.Register[REG_SP]]
}
