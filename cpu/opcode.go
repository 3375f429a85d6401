package cpu

import (
	"fmt"
	"strings"
)

// Opcode is the first byte of an instruction.
type Opcode uint8

const (
	OP_HLT  = Opcode(0b00000001)
	OP_RET  = Opcode(0b00010001)
	OP_PUSH = Opcode(0b01000101)
	OP_POP  = Opcode(0b01000110)
	OP_PRN  = Opcode(0b01000111)
	OP_CALL = Opcode(0b01010000)
	OP_JMP  = Opcode(0b01010100)
	OP_JEQ  = Opcode(0b01010101)
	OP_JNE  = Opcode(0b01010110)
	OP_NOT  = Opcode(0b01101001)
	OP_LDI  = Opcode(0b10000010)
	OP_ADD  = Opcode(0b10100000)
	OP_MUL  = Opcode(0b10100010)
	OP_MOD  = Opcode(0b10100100)
	OP_CMP  = Opcode(0b10100111)
	OP_AND  = Opcode(0b10101000)
	OP_OR   = Opcode(0b10101010)
	OP_XOR  = Opcode(0b10101011)
	OP_SHL  = Opcode(0b10101100)
	OP_SHR  = Opcode(0b10101101)
)

// OperandKind is how an operand byte is interpreted.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_REG = OperandKind(0) // register
	OPERAND_IMM = OperandKind(1) // immediate
)

// OpcodeInfo describes the shape of an instruction.
type OpcodeInfo struct {
	Mnemonic string        // Assembly mnemonic.
	Operands []OperandKind // Operand bytes following the opcode.
	SetsPc   bool          // Execution may set the PC instead of advancing.
	Alu      bool          // Executed by the ALU.
	AluOp    AluOp         // ALU operation, if Alu is set.
}

// Width returns the size in bytes of the instruction.
func (info *OpcodeInfo) Width() int {
	return 1 + len(info.Operands)
}

var (
	_reg     = []OperandKind{OPERAND_REG}
	_reg_reg = []OperandKind{OPERAND_REG, OPERAND_REG}
	_reg_imm = []OperandKind{OPERAND_REG, OPERAND_IMM}
)

// opcodeTable is the closed LS-8 instruction set.
var opcodeTable = [256]OpcodeInfo{
	OP_HLT:  {Mnemonic: "HLT"},
	OP_RET:  {Mnemonic: "RET", SetsPc: true},
	OP_PUSH: {Mnemonic: "PUSH", Operands: _reg},
	OP_POP:  {Mnemonic: "POP", Operands: _reg},
	OP_PRN:  {Mnemonic: "PRN", Operands: _reg},
	OP_CALL: {Mnemonic: "CALL", Operands: _reg, SetsPc: true},
	OP_JMP:  {Mnemonic: "JMP", Operands: _reg, SetsPc: true},
	OP_JEQ:  {Mnemonic: "JEQ", Operands: _reg, SetsPc: true},
	OP_JNE:  {Mnemonic: "JNE", Operands: _reg, SetsPc: true},
	OP_NOT:  {Mnemonic: "NOT", Operands: _reg, Alu: true, AluOp: ALU_OP_NOT},
	OP_LDI:  {Mnemonic: "LDI", Operands: _reg_imm},
	OP_ADD:  {Mnemonic: "ADD", Operands: _reg_reg, Alu: true, AluOp: ALU_OP_ADD},
	OP_MUL:  {Mnemonic: "MUL", Operands: _reg_reg, Alu: true, AluOp: ALU_OP_MUL},
	OP_MOD:  {Mnemonic: "MOD", Operands: _reg_reg, Alu: true, AluOp: ALU_OP_MOD},
	OP_CMP:  {Mnemonic: "CMP", Operands: _reg_reg, Alu: true, AluOp: ALU_OP_CMP},
	OP_AND:  {Mnemonic: "AND", Operands: _reg_reg, Alu: true, AluOp: ALU_OP_AND},
	OP_OR:   {Mnemonic: "OR", Operands: _reg_reg, Alu: true, AluOp: ALU_OP_OR},
	OP_XOR:  {Mnemonic: "XOR", Operands: _reg_reg, Alu: true, AluOp: ALU_OP_XOR},
	OP_SHL:  {Mnemonic: "SHL", Operands: _reg_reg, Alu: true, AluOp: ALU_OP_SHL},
	OP_SHR:  {Mnemonic: "SHR", Operands: _reg_reg, Alu: true, AluOp: ALU_OP_SHR},
}

// mnemonicMap maps upper-case mnemonics to opcodes.
var mnemonicMap = func() (mnemonics map[string]Opcode) {
	mnemonics = make(map[string]Opcode, 32)
	for n, info := range opcodeTable {
		if len(info.Mnemonic) != 0 {
			mnemonics[info.Mnemonic] = Opcode(n)
		}
	}
	return
}()

// LookupMnemonic returns the opcode for an assembly mnemonic, ignoring case.
func LookupMnemonic(name string) (op Opcode, ok bool) {
	op, ok = mnemonicMap[strings.ToUpper(name)]
	return
}

// Info returns the instruction description, if the opcode is defined.
func (op Opcode) Info() (info *OpcodeInfo, ok bool) {
	info = &opcodeTable[op]
	ok = len(info.Mnemonic) != 0
	return
}

// Valid returns true if the opcode is part of the instruction set.
func (op Opcode) Valid() bool {
	_, ok := op.Info()
	return ok
}

// Width returns the instruction width in bytes, or 1 for an undefined opcode.
func (op Opcode) Width() int {
	info, _ := op.Info()
	return info.Width()
}

// String returns the mnemonic of the opcode.
func (op Opcode) String() string {
	info, ok := op.Info()
	if !ok {
		return fmt.Sprintf("0x%02X", uint8(op))
	}
	return info.Mnemonic
}

// Instruction is a fetched, but not yet executed, instruction.
type Instruction struct {
	Pc       int      // Address of the opcode.
	Opcode   Opcode   // Opcode byte.
	Operands [2]uint8 // Candidate operand bytes following the opcode.
}

// String returns the assembly language representation of the instruction.
func (inst Instruction) String() string {
	info, ok := inst.Opcode.Info()
	if !ok {
		return inst.Opcode.String()
	}

	args := make([]string, len(info.Operands))
	for n, kind := range info.Operands {
		switch kind {
		case OPERAND_REG:
			args[n] = fmt.Sprintf("R%d", inst.Operands[n])
		case OPERAND_IMM:
			args[n] = fmt.Sprintf("%d", inst.Operands[n])
		}
	}

	if len(args) == 0 {
		return info.Mnemonic
	}

	return info.Mnemonic + " " + strings.Join(args, ",")
}
