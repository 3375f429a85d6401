package cpu

const (
	MEMORY_SIZE    = 256 // Bytes of addressable memory.
	REGISTER_COUNT = 8   // General-purpose registers.
	REG_SP         = 7   // Register used as the stack pointer.
)

// Memory is the flat, byte-addressed main memory.
type Memory [MEMORY_SIZE]uint8

// Read returns the byte at addr.
func (mem *Memory) Read(addr int) (value uint8, err error) {
	if addr < 0 || addr >= len(mem) {
		err = ErrOutOfBounds
		return
	}

	value = mem[addr]
	return
}

// Write stores value at addr.
func (mem *Memory) Write(addr int, value uint8) (err error) {
	if addr < 0 || addr >= len(mem) {
		err = ErrOutOfBounds
		return
	}

	mem[addr] = value
	return
}

// Registers is the general-purpose register bank.
type Registers [REGISTER_COUNT]uint8

// Read returns the value of register index.
func (reg *Registers) Read(index int) (value uint8, err error) {
	if index < 0 || index >= len(reg) {
		err = ErrOutOfBounds
		return
	}

	value = reg[index]
	return
}

// Write sets register index to value.
func (reg *Registers) Write(index int, value uint8) (err error) {
	if index < 0 || index >= len(reg) {
		err = ErrOutOfBounds
		return
	}

	reg[index] = value
	return
}
