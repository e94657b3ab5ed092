package asm

import (
	"strconv"
	"strings"
)

// ParseNumber parses an unsigned 32-bit literal.
//
//	0x1F, 0X1f  hexadecimal
//	0b101       binary
//	42          decimal
//
// Values must fit in 32 bits; wider literals are a number format error
// rather than being truncated. Surrounding whitespace is ignored. Signs, separators and embedded
// whitespace are rejected.
func ParseNumber(token string) (value uint32, err error) {
	word := strings.TrimSpace(token)

	var v64 uint64
	switch {
	case strings.HasPrefix(word, "0x"), strings.HasPrefix(word, "0X"):
		v64, err = strconv.ParseUint(word[2:], 16, 32)
	case strings.HasPrefix(word, "0b"), strings.HasPrefix(word, "0B"):
		v64, err = strconv.ParseUint(word[2:], 2, 32)
	default:
		v64, err = strconv.ParseUint(word, 10, 32)
	}
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint32(v64)
	return
}
