package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/be/cpu"
)

func TestParseLine(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		line Line
	}){
		{"LDA 10", cpu.Instruction{Opcode: cpu.OP_LDA, Operand: 10}},
		{"lda 10", cpu.Instruction{Opcode: cpu.OP_LDA, Operand: 10}},
		{"  Add\t0x1F \n", cpu.Instruction{Opcode: cpu.OP_ADD, Operand: 31}},
		{"LDI 0b101", cpu.Instruction{Opcode: cpu.OP_LDI, Operand: 5}},
		{"JMPX 4", cpu.Instruction{Opcode: cpu.OP_JMP, Operand: 4}}, // first three characters
		{"jmp_far 0x10", cpu.Instruction{Opcode: cpu.OP_JMP, Operand: 16}},
		{"OUT", cpu.Instruction{Opcode: cpu.OP_OUT}},
		{" HLT ", cpu.Instruction{Opcode: cpu.OP_HLT}},
		{"Nop", cpu.Instruction{Opcode: cpu.OP_NOP}},
		{"OUT 7", cpu.Instruction{Opcode: cpu.OP_OUT, Operand: 7}},
		{"42", Data(42)},
		{"0x1ff", Data(0xff)},
		{"0b10000001", Data(0x81)},
	}

	for _, entry := range table {
		line, err := ParseLine(entry.text)
		assert.NoError(err, entry.text)
		assert.Equal(entry.line, line, entry.text)
	}
}

func TestParseLine_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		err  error
	}){
		{"", ErrLine},
		{"   \n ", ErrLine},
		{"LDA 1 2", ErrLine},
		{"XYZ 1", ErrOpcode},
		{"LD 1", ErrOpcode},
		{"xyz 1", ErrOpcode},
		{"HALT", ErrOpcode},
		{"JUMP 4", ErrOpcode},
		{"LDI 0x100000000", ErrNumberFormat},
		{"LDA 0xFG", ErrNumberFormat},
		{"LDA ten", ErrNumberFormat},
		{"hlt", ErrNumberFormat}, // lower case single words are data
		{"0xZZ", ErrNumberFormat},
	}

	for _, entry := range table {
		line, err := ParseLine(entry.text)
		assert.Nil(line, entry.text)
		assert.ErrorIs(err, entry.err, entry.text)
	}
}

func TestData_Append(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]byte{0x2a}, Data(0x2a).Append(nil, cpu.MODE_4))
	assert.Equal([]byte{0x2a, 0}, Data(0x2a).Append(nil, cpu.MODE_12))
	assert.Equal([]byte{0x2a, 0, 0}, Data(0x2a).Append(nil, cpu.MODE_20))
}

func TestLineString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("LDA 0xa", LineString(cpu.Instruction{Opcode: cpu.OP_LDA, Operand: 10}))
	assert.Equal("HLT", LineString(cpu.Instruction{Opcode: cpu.OP_HLT}))
	assert.Equal("0x2a", LineString(Data(42)))
}
