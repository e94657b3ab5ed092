package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		token string
		value uint32
	}){
		{"0x1F", 31},
		{"0x1f", 31},
		{"0X1F", 31},
		{"0xdeadBEEF", 0xdeadbeef},
		{"0b101", 5},
		{"0B11", 3},
		{"0b0", 0},
		{"42", 42},
		{"0", 0},
		{"007", 7},
		{"4294967295", 0xffffffff},
		{"  12\t", 12},
		{"\n0x10 ", 16},
	}

	for _, entry := range table {
		value, err := ParseNumber(entry.token)
		assert.NoError(err, entry.token)
		assert.Equal(entry.value, value, entry.token)
	}
}

func TestParseNumber_Invalid(t *testing.T) {
	assert := assert.New(t)

	for _, token := range []string{
		"",
		"   ",
		"0xFG",
		"0x",
		"0b",
		"0b102",
		"0b1 1",
		"1 2",
		"-1",
		"+1",
		"1.5",
		"1_000",
		"1,000",
		"0x_1",
		"abc",
		"4294967296",
		"0x100000000",
		"0b100000000000000000000000000000000",
		"LDA",
	} {
		_, err := ParseNumber(token)
		assert.ErrorIs(err, ErrNumberFormat, "%q", token)
	}
}

func TestErrParseNumber(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseNumber(" 0xFG ")
	assert.Equal(ErrParseNumber("0xFG"), err)
	assert.Contains(err.Error(), "0xFG")
}
