package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllOnes(t *testing.T) {
	assert.Equal(t, uint32(0), AllOnes[uint32](0))
	assert.Equal(t, uint32(1), AllOnes[uint32](1))
	assert.Equal(t, uint32(0xF), AllOnes[uint32](4))
	assert.Equal(t, uint32(0xFF), AllOnes[uint32](8))
	assert.Equal(t, uint64(0xFFFFFFFF), AllOnes[uint64](32))
}

func TestExtractBits(t *testing.T) {
	tests := []struct {
		name     string
		value    uint32
		offset   int
		width    int
		expected uint32
	}{
		{name: "low byte", value: 0x12345678, offset: 0, width: 8, expected: 0x78},
		{name: "high byte", value: 0x12345678, offset: 24, width: 8, expected: 0x12},
		{name: "middle nibble", value: 0x12345678, offset: 12, width: 4, expected: 0x5},
		{name: "single top bit set", value: 0x80000000, offset: 31, width: 1, expected: 1},
		{name: "single top bit clear", value: 0x7FFFFFFF, offset: 31, width: 1, expected: 0},
		{name: "full word", value: 0xDEADBEEF, offset: 0, width: 32, expected: 0xDEADBEEF},
		{name: "zero value", value: 0, offset: 5, width: 11, expected: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, ExtractBits(test.value, test.offset, test.width))
		})
	}
}

// ExtractBits must agree with the shift-and-mask definition for any span
// within 32 bits
func TestExtractBits_MatchesDefinition(t *testing.T) {
	values := []uint32{0, 1, 0x00000001, 0x80000000, 0xDEADBEEF, 0xFFFFFFFF, 0x0100_0000}

	for _, value := range values {
		for offset := 0; offset < 32; offset++ {
			for width := 1; offset+width <= 32; width++ {
				expected := (value >> offset) & ((1 << width) - 1)
				assert.Equal(t, expected, ExtractBits(value, offset, width),
					"value=%#x offset=%d width=%d", value, offset, width)
			}
		}
	}
}

func TestHexDigits(t *testing.T) {
	assert.Equal(t, 1, HexDigits(1))
	assert.Equal(t, 1, HexDigits(4))
	assert.Equal(t, 2, HexDigits(5))
	assert.Equal(t, 2, HexDigits(8))
	assert.Equal(t, 8, HexDigits(32))
}
