package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Formats a value into a fixed width binary string of exactly width bits
func BinaryFormat(value uint32, width int) string {
	leadingZerosFormat := "%0" + fmt.Sprint(width) + "s"
	return fmt.Sprintf(leadingZerosFormat, strconv.FormatUint(uint64(value), 2))
}

// Same as BinaryFormat but with a '_' separator every group bits, counted
// from the least significant end. A group of zero or less disables grouping.
func GroupedBinaryFormat(value uint32, width int, group int) string {
	text := BinaryFormat(value, width)

	if group <= 0 || len(text) <= group {
		return text
	}

	var builder strings.Builder

	for i, digit := range text {
		if i > 0 && (len(text)-i)%group == 0 {
			builder.WriteByte('_')
		}
		builder.WriteRune(digit)
	}

	return builder.String()
}

// Formats a value into a fixed width hex string of minDigits uppercase
// digits, optionally prefixed with "0x"
func HexFormat(value uint32, minDigits int, addPrefix bool) string {
	prefix := ""
	if addPrefix {
		prefix = "0x"
	}

	leadingZerosFormat := prefix + "%0" + fmt.Sprint(minDigits) + "s"
	return fmt.Sprintf(leadingZerosFormat, strings.ToUpper(strconv.FormatUint(uint64(value), 16)))
}

// Formats a value as plain base-10 text
func DecimalFormat(value uint32) string {
	return strconv.FormatUint(uint64(value), 10)
}
