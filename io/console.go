package io

import (
	"fmt"
	"io"

	"github.com/ezrec/be/container"
	"github.com/ezrec/be/cpu"
)

var _ cpu.Output = (*Console)(nil)

// Console is the output device of the OUT instruction.
// Each emitted value is written as a decimal number and a newline.
type Console struct {
	Output io.Writer // Destination of emitted values.
	Count  int       // Number of values emitted.
}

// Emit writes value to the console output.
func (con *Console) Emit(value uint8) (err error) {
	if con.Output == nil {
		err = ErrConsoleDetached
		return
	}

	_, err = fmt.Fprintf(con.Output, "%d\n", value)
	if err != nil {
		err = &container.ErrStream{Op: f("write console"), Err: err}
		return
	}

	con.Count++
	return
}
