package asm

import (
	"fmt"
	"strings"

	"github.com/ezrec/be/cpu"
)

// Line is one statement of a block. It is either a cpu.Instruction or Data.
// Every Line encodes to exactly one instruction slot.
type Line interface {
	// Append appends the encoded slot to dst.
	Append(dst []byte, mode cpu.Mode) []byte
}

var (
	_ Line = cpu.Instruction{}
	_ Line = Data(0)
)

// Data is a raw byte statement.
type Data uint8

// Append places the byte at the start of the slot, and zero fills the rest.
func (data Data) Append(dst []byte, mode cpu.Mode) []byte {
	dst = append(dst, byte(data))
	for i := 0; i < mode.Width()-1; i++ {
		dst = append(dst, 0)
	}
	return dst
}

func (data Data) String() string {
	return fmt.Sprintf("0x%02x", uint8(data))
}

// ParseLine classifies the text of a single statement.
//
//	OPC OPERAND   instruction
//	OPC           instruction, operand is 0 (must start with an upper case letter)
//	VALUE         data byte, truncated to 8 bits
func ParseLine(text string) (line Line, err error) {
	words := strings.Fields(text)

	switch len(words) {
	case 2:
		op, ok := cpu.LookupOpcode(words[0])
		if !ok {
			err = ErrOpcodeUnknown(words[0])
			return
		}
		var operand uint32
		operand, err = ParseNumber(words[1])
		if err != nil {
			return
		}
		line = cpu.Instruction{Opcode: op, Operand: operand}
	case 1:
		word := words[0]
		if word[0] >= 'A' && word[0] <= 'Z' {
			op, ok := cpu.LookupOpcode(word)
			if !ok {
				err = ErrOpcodeUnknown(word)
				return
			}
			line = cpu.Instruction{Opcode: op}
			return
		}
		var value uint32
		value, err = ParseNumber(word)
		if err != nil {
			return
		}
		line = Data(value & 0xff)
	default:
		err = ErrLineSegments(strings.TrimSpace(text))
	}

	return
}

// LineString returns the assembly text of a line.
func LineString(line Line) string {
	switch line := line.(type) {
	case cpu.Instruction:
		return line.String()
	case Data:
		return line.String()
	default:
		return fmt.Sprintf("%v", line)
	}
}
