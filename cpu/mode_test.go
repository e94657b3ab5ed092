package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value  uint32
		width  int
		memory int
		mask   uint32
	}){
		{4, 1, 16, 0xf},
		{12, 2, 4096, 0xfff},
		{20, 3, 1 << 20, 0xfffff},
	}

	for _, entry := range table {
		mode, err := ParseMode(entry.value)
		assert.NoError(err)
		assert.True(mode.Valid())
		assert.Equal(entry.width, mode.Width(), "mode %d", entry.value)
		assert.Equal(entry.memory, mode.MemorySize(), "mode %d", entry.value)
		assert.Equal(entry.mask, mode.Mask(), "mode %d", entry.value)
	}
}

func TestParseMode_Invalid(t *testing.T) {
	assert := assert.New(t)

	for _, value := range []uint32{0, 1, 3, 5, 8, 11, 13, 16, 19, 21, 24, 32} {
		_, err := ParseMode(value)
		assert.Error(err, "mode %d", value)
		assert.True(errors.Is(err, ErrAddressWidth), "mode %d", value)
		assert.Equal(ErrMode(value), err)
		assert.False(Mode(value).Valid())
	}
}

func TestMode_DataMask(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint8(0xf), MODE_4.DataMask())
	assert.Equal(uint8(0xff), MODE_12.DataMask())
	assert.Equal(uint8(0xff), MODE_20.DataMask())
}
