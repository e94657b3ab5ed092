package container

import (
	"github.com/pkg/errors"

	"github.com/ezrec/be/translate"
)

var f = translate.From

var (
	// Container errors
	ErrHeader      = errors.New(f("header invalid"))
	ErrMemoryRange = errors.New(f("memory address falls out of range for this address size"))
	ErrIO          = errors.New(f("i/o failure"))
)

// ErrStream is a failed read or write of an underlying stream.
type ErrStream struct {
	Op  string
	Err error
}

func (err *ErrStream) Error() string {
	return f("%v: %v", err.Op, err.Err)
}

func (err *ErrStream) Unwrap() error {
	return err.Err
}

func (err *ErrStream) Is(target error) bool {
	return target == ErrIO
}

// ErrRange is a block that does not fit in the memory image.
type ErrRange struct {
	Address uint32
	Length  uint32
	Size    int
}

func (err *ErrRange) Error() string {
	return f("block 0x%X+%d exceeds memory size %d", err.Address, err.Length, err.Size)
}

func (err *ErrRange) Is(target error) bool {
	return target == ErrMemoryRange
}
