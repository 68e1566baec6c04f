package utils

import (
	"golang.org/x/exp/constraints"
)

// Returns an all ones bitmask of n bits of the given unsigned integer type
func AllOnes[T constraints.Unsigned](bits int) T {
	return (T(1) << bits) - T(1)
}

// Extracts a range of bits given a first bit and a width. Callers must keep
// offset+width within the bit width of T, the result is garbage otherwise.
func ExtractBits[T constraints.Unsigned](value T, offset int, width int) T {
	return (value >> offset) & AllOnes[T](width)
}

// Returns the number of hex digits needed to print a value of the given bit
// width without truncation
func HexDigits(bits int) int {
	return (bits + 3) / 4
}
