package cpu

import (
	"github.com/ezrec/be/internal"
)

// Instruction slot layout, for a mode of W bits and a slot of B bytes:
//
//	byte 0 bits 7..4   opcode nibble
//	remaining B*8-4    operand, most significant bit first
//
// For the three legal modes the operand field is exactly W bits wide.

// operandBits returns the size of the operand field of a slot.
func (mode Mode) operandBits() int {
	return mode.Width()*8 - 4
}

// Encode packs an instruction into a slot.
// The operand is masked to the mode width; wider operands are truncated.
func (mode Mode) Encode(ins Instruction) (slot []byte) {
	return mode.AppendInstruction(nil, ins)
}

// AppendInstruction appends the encoded slot of an instruction to dst.
func (mode Mode) AppendInstruction(dst []byte, ins Instruction) []byte {
	word := (uint32(ins.Opcode&0xf) << mode.operandBits()) | (ins.Operand & mode.Mask())
	return internal.AppendUintBE(dst, word, mode.Width())
}

// Decode unpacks the instruction at the start of slot.
// Nibbles without a defined operation decode as OP_NOP.
func (mode Mode) Decode(slot []byte) (ins Instruction) {
	word := internal.UintBE(slot[:mode.Width()])

	ins.Opcode = Opcode(slot[0] >> 4)
	if !ins.Opcode.Valid() {
		ins.Opcode = OP_NOP
	}
	ins.Operand = word & mode.Mask()

	return
}

// Append implements the assembler's line encoding for an instruction.
func (ins Instruction) Append(dst []byte, mode Mode) []byte {
	return mode.AppendInstruction(dst, ins)
}
