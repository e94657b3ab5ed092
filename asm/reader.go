package asm

import (
	"bufio"
	"io"
	"strings"

	"github.com/ezrec/be/container"
	"github.com/ezrec/be/cpu"
)

// Reader reads the address-width mode and blocks from a source stream.
type Reader struct {
	LineNo int // Current source line.

	input *bufio.Reader
}

// NewReader creates a Reader for input.
func NewReader(input io.Reader) (rd *Reader) {
	rd = &Reader{
		LineNo: 1,
		input:  bufio.NewReader(input),
	}

	return
}

// readByte reads the next source byte. A '#' comment reads as a single '\n'.
func (rd *Reader) readByte() (c byte, err error) {
	defer func() {
		if err != nil && err != io.EOF {
			err = &container.ErrStream{Op: f("read source"), Err: err}
		}
	}()

	c, err = rd.input.ReadByte()
	if err != nil {
		return
	}

	if c == '#' {
		for c != '\n' {
			c, err = rd.input.ReadByte()
			if err != nil {
				return
			}
		}
	}

	if c == '\n' {
		rd.LineNo++
	}

	return
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// skipSpace reads up to and including the next non-space byte.
func (rd *Reader) skipSpace() (c byte, err error) {
	for {
		c, err = rd.readByte()
		if err != nil || !isSpace(c) {
			return
		}
	}
}

// ReadMode reads the leading address-width mode of the source.
func (rd *Reader) ReadMode() (mode cpu.Mode, err error) {
	var token []byte

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: rd.LineNo, Line: string(token), Err: err}
		}
	}()

	c, err := rd.skipSpace()
	for err == nil && !isSpace(c) {
		token = append(token, c)
		c, err = rd.readByte()
	}
	if err != nil && err != io.EOF {
		return
	}

	value, err := ParseNumber(string(token))
	if err != nil {
		return
	}

	mode, err = cpu.ParseMode(value)
	return
}

// ReadBlock reads the next `ADDRESS { LINE; ... }` block.
// io.EOF is returned when no blocks remain.
func (rd *Reader) ReadBlock() (block *Block, err error) {
	var text strings.Builder

	defer func() {
		if err != nil && err != io.EOF {
			block = nil
			err = &ErrSyntax{LineNo: rd.LineNo, Line: strings.TrimSpace(text.String()), Err: err}
		}
	}()

	c, err := rd.skipSpace()
	if err != nil {
		return
	}

	for c != '{' {
		text.WriteByte(c)
		c, err = rd.readByte()
		if err == io.EOF {
			err = ErrBlockEOF(strings.TrimSpace(text.String()))
		}
		if err != nil {
			return
		}
	}

	address, err := ParseNumber(text.String())
	if err != nil {
		err = ErrBlockAddress(strings.TrimSpace(text.String()))
		return
	}

	block = &Block{Address: address, LineNo: rd.LineNo}
	text.Reset()

	for {
		c, err = rd.readByte()
		if err == io.EOF {
			err = ErrBlockEOF(strings.TrimSpace(text.String()))
		}
		if err != nil {
			return
		}

		switch c {
		case '{':
			text.WriteByte(c)
			err = ErrBlockDelimiter(strings.TrimSpace(text.String()))
			return
		case ';':
			err = block.addLine(text.String())
			if err != nil {
				return
			}
			text.Reset()
		case '}':
			if strings.TrimSpace(text.String()) != "" {
				err = block.addLine(text.String())
				if err != nil {
					return
				}
			}
			return
		default:
			text.WriteByte(c)
		}
	}
}
