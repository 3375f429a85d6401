package cpu

import (
	"strings"
)

// AluOp is an ALU operation type.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_ADD = AluOp(0) // ADD
	ALU_OP_MUL = AluOp(1) // MUL
	ALU_OP_CMP = AluOp(2) // CMP
	ALU_OP_AND = AluOp(3) // AND
	ALU_OP_OR  = AluOp(4) // OR
	ALU_OP_XOR = AluOp(5) // XOR
	ALU_OP_NOT = AluOp(6) // NOT
	ALU_OP_SHL = AluOp(7) // SHL
	ALU_OP_SHR = AluOp(8) // SHR
	ALU_OP_MOD = AluOp(9) // MOD
)

// Flags register bits. Exactly one is set after a CMP.
const (
	FL_EQ = uint8(0b001) // Equal.
	FL_GT = uint8(0b010) // Greater than.
	FL_LT = uint8(0b100) // Less than.
)

// ParseAluOp returns the ALU operation with the given name, ignoring case.
func ParseAluOp(name string) (op AluOp, err error) {
	name = strings.ToUpper(name)
	for op = ALU_OP_ADD; op <= ALU_OP_MOD; op++ {
		if op.String() == name {
			return
		}
	}

	op = -1
	err = ErrUnsupportedOperation
	return
}

// AluByName applies the named ALU operation to two registers.
func (cpu *Cpu) AluByName(name string, dst int, src int) (err error) {
	op, err := ParseAluOp(name)
	if err != nil {
		return
	}

	return cpu.Alu(op, dst, src)
}

// Alu applies an ALU operation to the dst and src registers, storing the
// result in dst. Results wrap to 8 bits. CMP only updates the flags.
func (cpu *Cpu) Alu(op AluOp, dst int, src int) (err error) {
	a, err := cpu.Register.Read(dst)
	if err != nil {
		return
	}

	// NOT has no source operand.
	var b uint8
	if op != ALU_OP_NOT {
		b, err = cpu.Register.Read(src)
		if err != nil {
			return
		}
	}

	var output uint8
	switch op {
	case ALU_OP_ADD:
		output = a + b
	case ALU_OP_MUL:
		output = a * b
	case ALU_OP_CMP:
		switch {
		case a == b:
			cpu.Flags = FL_EQ
		case a > b:
			cpu.Flags = FL_GT
		default:
			cpu.Flags = FL_LT
		}
		return
	case ALU_OP_AND:
		output = a & b
	case ALU_OP_OR:
		output = a | b
	case ALU_OP_XOR:
		output = a ^ b
	case ALU_OP_NOT:
		output = ^a
	case ALU_OP_SHL:
		output = a << b
	case ALU_OP_SHR:
		output = a >> b
	case ALU_OP_MOD:
		if b == 0 {
			err = ErrDivideByZero
			return
		}
		output = a % b
	default:
		err = ErrUnsupportedOperation
		return
	}

	return cpu.Register.Write(dst, output)
}
