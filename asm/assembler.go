// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"log"

	"github.com/ezrec/be/container"
)

// Assembler is a single pass block assembler for the BE system.
type Assembler struct {
	Verbose bool      // If set, logs each block as it is written.
	Listing io.Writer // If set, receives a listing of each written block.
}

// Parse parses an entire source stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	rd := NewReader(input)

	mode, err := rd.ReadMode()
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Print(f("using address size: %d", mode))
	}

	prog = &Program{Mode: mode}
	for {
		var block *Block
		block, err = rd.ReadBlock()
		if err == io.EOF {
			err = nil
			break
		}
		if err != nil {
			prog = nil
			return
		}
		prog.Blocks = append(prog.Blocks, block)
	}

	return
}

// Assemble translates input into a container on output.
//
// Each block is written as soon as it is parsed. On error, the blocks
// before the failing one have already been written, and output is
// left incomplete.
func (asm *Assembler) Assemble(input io.Reader, output io.Writer) (err error) {
	rd := NewReader(input)

	mode, err := rd.ReadMode()
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Print(f("using address size: %d", mode))
	}

	cw, err := container.NewWriter(output, mode)
	if err != nil {
		return
	}

	for {
		var block *Block
		block, err = rd.ReadBlock()
		if err == io.EOF {
			err = nil
			break
		}
		if err != nil {
			return
		}

		payload := block.Encode(mode)
		err = cw.WriteBlock(block.Address, payload)
		if err != nil {
			return
		}

		if asm.Verbose {
			log.Print(f("wrote block %d, address: 0x%X, size: %d", cw.Blocks-1, block.Address, len(payload)))
		}

		if asm.Listing != nil {
			err = block.List(asm.Listing, mode)
			if err != nil {
				return
			}
		}
	}

	if asm.Verbose {
		log.Print(f("finished with no errors"))
	}

	return
}
