package cpu

// Mode is an address-width mode, in bits.
type Mode uint8

const (
	MODE_4  = Mode(4)  // 16 bytes of memory, 1-byte instructions.
	MODE_12 = Mode(12) // 4K of memory, 2-byte instructions.
	MODE_20 = Mode(20) // 1M of memory, 3-byte instructions.
)

// ParseMode validates an address-width value.
func ParseMode(value uint32) (mode Mode, err error) {
	switch value {
	case 4, 12, 20:
		mode = Mode(value)
	default:
		err = ErrMode(value)
	}
	return
}

// Valid returns true for the 4, 12 and 20 bit modes.
func (mode Mode) Valid() bool {
	_, err := ParseMode(uint32(mode))
	return err == nil
}

// Width returns the size in bytes of one instruction slot.
func (mode Mode) Width() int {
	return (int(mode) + 4 + 7) / 8
}

// MemorySize returns the size in bytes of the memory image.
func (mode Mode) MemorySize() int {
	return 1 << mode
}

// Mask returns the operand mask for the mode.
func (mode Mode) Mask() uint32 {
	return (uint32(1) << mode) - 1
}

// DataMask returns the mask applied to LDI immediates.
// A 4-bit machine has a 4-bit data path.
func (mode Mode) DataMask() uint8 {
	if mode == MODE_4 {
		return 0xf
	}
	return 0xff
}
