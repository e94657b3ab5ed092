// Package container reads and writes the BE binary container.
//
// A container is a 4 byte header followed by block records:
//
//	0: 'B'
//	1: 'E'
//	2: address-width mode
//	3: reserved, 0
//	4: records: 32-bit address, 32-bit length, length bytes of payload
//
// All multi-byte values are big-endian.
package container

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/ezrec/be/cpu"
)

const (
	MARKER_0    = 'B' // First header marker byte.
	MARKER_1    = 'E' // Second header marker byte.
	HEADER_SIZE = 4   // Size of the container header.
	RECORD_SIZE = 8   // Size of a block record header.
)

var endian = binary.BigEndian

// Writer writes a container, one block record at a time.
type Writer struct {
	Mode   cpu.Mode // Address-width mode of the container.
	Blocks int      // Count of block records written.

	output io.Writer
}

// NewWriter writes the container header to output.
func NewWriter(output io.Writer, mode cpu.Mode) (cw *Writer, err error) {
	header := [HEADER_SIZE]byte{MARKER_0, MARKER_1, byte(mode), 0}

	_, err = output.Write(header[:])
	if err != nil {
		err = &ErrStream{Op: f("write header"), Err: err}
		return
	}

	cw = &Writer{
		Mode:   mode,
		output: output,
	}

	return
}

// WriteBlock writes a block record of payload at address.
func (cw *Writer) WriteBlock(address uint32, payload []byte) (err error) {
	record := make([]byte, 0, RECORD_SIZE+len(payload))
	record = endian.AppendUint32(record, address)
	record = endian.AppendUint32(record, uint32(len(payload)))
	record = append(record, payload...)

	_, err = cw.output.Write(record)
	if err != nil {
		err = errors.WithMessagef(&ErrStream{Op: f("write block"), Err: err}, "block %d", cw.Blocks)
		return
	}

	cw.Blocks++
	return
}
