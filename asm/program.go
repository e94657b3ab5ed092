package asm

import (
	"fmt"
	"io"

	"github.com/ezrec/be/container"
	"github.com/ezrec/be/cpu"
)

// Block is an address-tagged sequence of lines.
type Block struct {
	LineNo  int    // Source line of the opening brace.
	Address uint32 // Memory address of the first slot.
	Lines   []Line // Lines, in slot order.
}

// addLine parses and appends a statement.
func (block *Block) addLine(text string) (err error) {
	line, err := ParseLine(text)
	if err != nil {
		return
	}

	block.Lines = append(block.Lines, line)
	return
}

// Encode returns the payload of the block, one slot per line.
func (block *Block) Encode(mode cpu.Mode) (payload []byte) {
	payload = make([]byte, 0, len(block.Lines)*mode.Width())
	for _, line := range block.Lines {
		payload = line.Append(payload, mode)
	}

	return
}

// List writes a listing of the block, one slot per output line.
func (block *Block) List(w io.Writer, mode cpu.Mode) (err error) {
	width := mode.Width()
	for n, line := range block.Lines {
		address := block.Address + uint32(n*width)
		slot := fmt.Sprintf("% x", line.Append(nil, mode))
		_, err = fmt.Fprintf(w, "%05x: %-8s  %v\n", address, slot, LineString(line))
		if err != nil {
			return
		}
	}

	return
}

// Program is a fully parsed source file.
type Program struct {
	Mode   cpu.Mode
	Blocks []*Block
}

// Save writes the program as a container.
func (prog *Program) Save(output io.Writer) (err error) {
	cw, err := container.NewWriter(output, prog.Mode)
	if err != nil {
		return
	}

	for _, block := range prog.Blocks {
		err = cw.WriteBlock(block.Address, block.Encode(prog.Mode))
		if err != nil {
			return
		}
	}

	return
}
