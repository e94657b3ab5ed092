package cpu

import (
	"errors"

	"github.com/ezrec/be/translate"
)

var f = translate.From

var (
	// Address-width mode errors
	ErrAddressWidth = errors.New(f("address width invalid"))
)

// ErrMode is an address-width mode value outside of {4, 12, 20}.
type ErrMode uint32

func (err ErrMode) Error() string {
	return f("address width %d invalid, valid widths are 4, 12, 20", uint32(err))
}

func (err ErrMode) Is(target error) bool {
	return target == ErrAddressWidth
}
