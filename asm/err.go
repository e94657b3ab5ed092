package asm

import (
	"errors"

	"github.com/ezrec/be/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrNumberFormat = errors.New(f("number format"))
	ErrOpcode       = errors.New(f("opcode invalid"))
	ErrLine         = errors.New(f("line invalid"))
	ErrAddress      = errors.New(f("block address invalid"))
	ErrBlock        = errors.New(f("block invalid"))
)

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Is(target error) bool {
	return target == ErrNumberFormat
}

type ErrOpcodeUnknown string

func (err ErrOpcodeUnknown) Error() string {
	return f("unrecognized opcode '%v'", string(err))
}

func (err ErrOpcodeUnknown) Is(target error) bool {
	return target == ErrOpcode
}

type ErrLineSegments string

func (err ErrLineSegments) Error() string {
	return f("expected operator/data pair or single data byte, found '%v'", string(err))
}

func (err ErrLineSegments) Is(target error) bool {
	return target == ErrLine
}

type ErrBlockAddress string

func (err ErrBlockAddress) Error() string {
	return f("expected block address, found '%v'", string(err))
}

func (err ErrBlockAddress) Is(target error) bool {
	return target == ErrAddress
}

// ErrBlockEOF is the end of the source inside of a block.
type ErrBlockEOF string

func (err ErrBlockEOF) Error() string {
	return f("unexpected end of file within block '%v'", string(err))
}

func (err ErrBlockEOF) Is(target error) bool {
	return target == ErrBlock
}

// ErrBlockDelimiter is a misplaced block delimiter.
type ErrBlockDelimiter string

func (err ErrBlockDelimiter) Error() string {
	return f("expected end of block, found '%v'", string(err))
}

func (err ErrBlockDelimiter) Is(target error) bool {
	return target == ErrBlock
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
