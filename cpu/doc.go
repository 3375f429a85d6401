// Package cpu implements the LS-8 processor, its program loader and
// its assembler.
//
// The LS-8 has 256 bytes of memory, eight 8-bit general-purpose registers
// (r0-r7, with r7 used as the stack pointer), a program counter, a flags
// register set by CMP, and an ALU. Instructions are one opcode byte
// followed by zero, one or two operand bytes; the operand count is implied
// by the opcode.
//
// Programs are loaded from a text format with one base-2 byte per line and
// '#' comments, or assembled from LS-8 assembly language by the Assembler.
package cpu
