// Package internal holds byte-order helpers shared by the instruction codec.
package internal

// PutUintBE stores the low len(dst)*8 bits of value into dst, most significant byte first.
// Bits of value above that width are dropped.
func PutUintBE(dst []byte, value uint32) {
	for n := len(dst) - 1; n >= 0; n-- {
		dst[n] = byte(value & 0xff)
		value >>= 8
	}
}

// AppendUintBE appends the low width*8 bits of value to dst, most significant byte first.
func AppendUintBE(dst []byte, value uint32, width int) []byte {
	start := len(dst)
	for i := 0; i < width; i++ {
		dst = append(dst, 0)
	}
	PutUintBE(dst[start:], value)
	return dst
}

// UintBE reads src as an unsigned big-endian integer.
// At most the last four bytes of src contribute to the result.
func UintBE(src []byte) (value uint32) {
	for _, b := range src {
		value = (value << 8) | uint32(b)
	}
	return
}
