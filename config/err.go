package config

import (
	"github.com/pkg/errors"

	"github.com/ezrec/be/translate"
)

var f = translate.From

var (
	// Configuration errors
	ErrConfig = errors.New(f("configuration invalid"))
)

// ErrGlobal is a configuration global with a value of the wrong type or range.
type ErrGlobal string

func (err ErrGlobal) Error() string {
	return f("global %q: value invalid", string(err))
}

func (err ErrGlobal) Is(target error) bool {
	return target == ErrConfig
}

// ErrEval is a configuration file that failed to evaluate.
type ErrEval struct {
	Name string
	Err  error
}

func (err *ErrEval) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrEval) Unwrap() error {
	return err.Err
}

func (err *ErrEval) Is(target error) bool {
	return target == ErrConfig
}
