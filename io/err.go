package io

import (
	"errors"

	"github.com/ezrec/be/translate"
)

var f = translate.From

var (
	// Console errors
	ErrConsoleDetached = errors.New(f("console has no output attached"))
)
