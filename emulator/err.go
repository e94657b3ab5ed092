package emulator

import (
	"errors"

	"github.com/ezrec/be/translate"
)

var f = translate.From

var (
	// Emulator errors
	ErrStepLimit = errors.New(f("step limit reached"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip  uint32
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("ip 0x%05X: %v", err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
