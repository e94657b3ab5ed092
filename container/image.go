package container

import (
	"encoding/hex"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/ezrec/be/cpu"
	"github.com/ezrec/be/translate"
)

// Record is the placement of one loaded block.
type Record struct {
	Address uint32
	Length  uint32
}

// Image is a loaded container.
type Image struct {
	Mode    cpu.Mode // Address-width mode.
	Memory  []byte   // Memory image, 2^Mode bytes.
	Records []Record // Blocks, in load order.
}

// Load reads a container into a zeroed memory image.
//
// Blocks are copied in container order; a later block overwrites any
// earlier one it overlaps. A block that does not fit in memory fails
// the load before any of its bytes are copied.
func Load(input io.Reader) (img *Image, err error) {
	defer func() {
		if err != nil {
			img = nil
		}
	}()

	var header [HEADER_SIZE]byte
	_, err = io.ReadFull(input, header[:])
	switch {
	case err == io.EOF, err == io.ErrUnexpectedEOF:
		err = errors.WithMessage(ErrHeader, f("truncated header"))
		return
	case err != nil:
		err = &ErrStream{Op: f("read header"), Err: err}
		return
	}

	if header[0] != MARKER_0 || header[1] != MARKER_1 {
		err = errors.WithMessagef(ErrHeader, "marker %q", header[:2])
		return
	}

	mode, err := cpu.ParseMode(uint32(header[2]))
	if err != nil {
		return
	}

	img = &Image{
		Mode:   mode,
		Memory: make([]byte, mode.MemorySize()),
	}

	for index := 0; ; index++ {
		var record [RECORD_SIZE]byte
		_, err = io.ReadFull(input, record[:])
		if err == io.EOF {
			err = nil
			break
		}
		if err != nil {
			err = errors.WithMessagef(&ErrStream{Op: f("read block record"), Err: err}, "block %d", index)
			return
		}

		address := endian.Uint32(record[0:4])
		length := endian.Uint32(record[4:8])

		if uint64(address)+uint64(length) > uint64(len(img.Memory)) {
			err = &ErrRange{Address: address, Length: length, Size: len(img.Memory)}
			err = errors.WithMessagef(err, "block %d", index)
			return
		}

		_, err = io.ReadFull(input, img.Memory[address:address+length])
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			err = errors.WithMessagef(&ErrStream{Op: f("read block payload"), Err: err}, "block %d", index)
			return
		}

		img.Records = append(img.Records, Record{Address: address, Length: length})
	}

	return
}

// Dump writes the entire memory image to output.
func (img *Image) Dump(output io.Writer) (err error) {
	_, err = output.Write(img.Memory)
	if err != nil {
		err = &ErrStream{Op: f("write dump"), Err: err}
	}
	return
}

// String returns a human-readable dump of the loaded blocks.
func (img *Image) String() string {
	var sb strings.Builder

	translate.Fprintf(&sb, "Address width: %d (%d bytes)\n", img.Mode, len(img.Memory))
	for n, rec := range img.Records {
		translate.Fprintf(&sb, "Block %d: address 0x%X, size %d\n", n, rec.Address, rec.Length)
		if rec.Length > 0 {
			sb.WriteString(hex.Dump(img.Memory[rec.Address : rec.Address+rec.Length]))
		}
	}

	return sb.String()
}
