package asm

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/be/container"
	"github.com/ezrec/be/cpu"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"12",
		"0 { LDI 2; STA 10; LDA 10; ADD 10; OUT; HLT }",
	}

	var out bytes.Buffer
	err := asm.Assemble(strings.NewReader(strings.Join(program, "\n")), &out)
	assert.NoError(err)

	expected := []byte{
		'B', 'E', 12, 0,
		0, 0, 0, 0, // address
		0, 0, 0, 12, // length
		0x50, 0x02, 0x40, 0x0a, 0x10, 0x0a, 0x20, 0x0a, 0xe0, 0x00, 0xf0, 0x00,
	}
	assert.Equal(expected, out.Bytes())
}

func TestAssemblerTruncation(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	var out bytes.Buffer
	err := asm.Assemble(strings.NewReader("4\n0 { LDI 0x1F }\n"), &out)
	assert.NoError(err)

	img, err := container.Load(&out)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	ins := img.Mode.Decode(img.Memory[0:])
	assert.Equal(cpu.OP_LDI, ins.Opcode)
	assert.Equal(uint32(15), ins.Operand)
}

func TestAssemblerModes(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		mode    string
		payload []byte
	}){
		{"4", []byte{0x13, 0x2a, 0xe0, 0xf0}},
		{"12", []byte{0x10, 0x03, 0x2a, 0x00, 0xe0, 0x00, 0xf0, 0x00}},
		{"20", []byte{0x10, 0x00, 0x03, 0x2a, 0x00, 0x00, 0xe0, 0x00, 0x00, 0xf0, 0x00, 0x00}},
	}

	for _, entry := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(entry.mode + "\n0x8 { LDA 3; 42; OUT; HLT }"))
		assert.NoError(err, entry.mode)
		if err != nil {
			continue
		}

		assert.Equal(1, len(prog.Blocks))
		assert.Equal(uint32(8), prog.Blocks[0].Address)
		assert.Equal(entry.payload, prog.Blocks[0].Encode(prog.Mode), entry.mode)
		assert.Equal(len(prog.Blocks[0].Lines)*prog.Mode.Width(), len(entry.payload), entry.mode)
	}
}

func TestAssemblerParseSave(t *testing.T) {
	assert := assert.New(t)

	source := strings.Join([]string{
		"# two blocks",
		"12",
		"0 { LDA 0x100; OUT; HLT }",
		"0x100 { 7 }",
	}, "\n")

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(source))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(cpu.MODE_12, prog.Mode)
	assert.Equal(2, len(prog.Blocks))

	var saved bytes.Buffer
	assert.NoError(prog.Save(&saved))

	var streamed bytes.Buffer
	assert.NoError(asm.Assemble(strings.NewReader(source), &streamed))

	assert.Equal(streamed.Bytes(), saved.Bytes())

	img, err := container.Load(&saved)
	assert.NoError(err)
	assert.Equal(byte(7), img.Memory[0x100])
	assert.Equal(byte(0), img.Memory[0x101])
}

func TestAssemblerPartialOutput(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	var out bytes.Buffer
	err := asm.Assemble(strings.NewReader("4\n0 { HLT }\n1 { BAD 1 }\n"), &out)
	assert.ErrorIs(err, ErrOpcode)

	// The first block was already written.
	assert.Equal([]byte{'B', 'E', 4, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0xf0}, out.Bytes())

	prog, err := asm.Parse(strings.NewReader("4\n0 { HLT }\n1 { BAD 1 }\n"))
	assert.Nil(prog)
	assert.ErrorIs(err, ErrOpcode)
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source string
		err    error
	}){
		{"no_mode", "", ErrNumberFormat},
		{"bad_mode", "13\n0 { HLT }", cpu.ErrAddressWidth},
		{"address", "4\nx { HLT }", ErrAddress},
		{"eof", "4\n0 { HLT", ErrBlock},
		{"line", "4\n0 { HLT 1 2 }", ErrLine},
	}

	for _, entry := range table {
		asm := &Assembler{}
		err := asm.Assemble(strings.NewReader(entry.source), &bytes.Buffer{})
		assert.ErrorIs(err, entry.err, entry.name)
	}
}

type failWriter struct {
	writes int
}

var errFull = errors.New("disk full")

func (fw *failWriter) Write(p []byte) (n int, err error) {
	if fw.writes == 0 {
		err = errFull
		return
	}
	fw.writes--
	n = len(p)
	return
}

func TestAssemblerWriteError(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	err := asm.Assemble(strings.NewReader("4\n0 { HLT }"), &failWriter{writes: 0})
	assert.ErrorIs(err, container.ErrIO)

	err = asm.Assemble(strings.NewReader("4\n0 { HLT }\n1 { HLT }"), &failWriter{writes: 2})
	assert.ErrorIs(err, container.ErrIO)
	assert.ErrorIs(err, errFull)
}

func TestAssemblerListing(t *testing.T) {
	assert := assert.New(t)

	var listing bytes.Buffer
	asm := &Assembler{Listing: &listing}

	err := asm.Assemble(strings.NewReader("12\n0x10 { LDI 2; 0x2a; HLT }"), &bytes.Buffer{})
	assert.NoError(err)

	expected := strings.Join([]string{
		"00010: 50 02     LDI 0x2",
		"00012: 2a 00     0x2a",
		"00014: f0 00     HLT",
		"",
	}, "\n")
	assert.Equal(expected, listing.String())
}
