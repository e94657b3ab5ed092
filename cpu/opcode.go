package cpu

import (
	"fmt"
	"strings"
)

// Opcode is the 4-bit operation nibble of an instruction.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP = Opcode(0x0) // NOP
	OP_LDA = Opcode(0x1) // LDA
	OP_ADD = Opcode(0x2) // ADD
	OP_SUB = Opcode(0x3) // SUB
	OP_STA = Opcode(0x4) // STA
	OP_LDI = Opcode(0x5) // LDI
	OP_JMP = Opcode(0x6) // JMP
	OP_OUT = Opcode(0xe) // OUT
	OP_HLT = Opcode(0xf) // HLT
)

// opcodeMap maps mnemonics to opcodes.
var opcodeMap = map[string]Opcode{
	"NOP": OP_NOP,
	"LDA": OP_LDA,
	"ADD": OP_ADD,
	"SUB": OP_SUB,
	"STA": OP_STA,
	"LDI": OP_LDI,
	"JMP": OP_JMP,
	"OUT": OP_OUT,
	"HLT": OP_HLT,
}

// LookupOpcode finds the opcode for a mnemonic.
// Only the first three characters are significant, and case is ignored.
func LookupOpcode(word string) (op Opcode, ok bool) {
	if len(word) < 3 {
		return
	}
	op, ok = opcodeMap[strings.ToUpper(word[:3])]
	return
}

// Valid returns true if the nibble has a defined operation.
// Undefined nibbles execute as NOP.
func (op Opcode) Valid() bool {
	switch op {
	case OP_NOP, OP_LDA, OP_ADD, OP_SUB, OP_STA, OP_LDI, OP_JMP, OP_OUT, OP_HLT:
		return true
	}
	return false
}

// HasOperand returns true if the operand of the opcode is used.
func (op Opcode) HasOperand() bool {
	switch op {
	case OP_LDA, OP_ADD, OP_SUB, OP_STA, OP_LDI, OP_JMP:
		return true
	}
	return false
}

// Instruction is a decoded opcode and operand pair.
type Instruction struct {
	Opcode  Opcode
	Operand uint32
}

// String returns the assembly language representation of the instruction.
func (ins Instruction) String() string {
	if !ins.Opcode.HasOperand() {
		return ins.Opcode.String()
	}
	return fmt.Sprintf("%v 0x%x", ins.Opcode, ins.Operand)
}
