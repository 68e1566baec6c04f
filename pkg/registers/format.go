// Package registers implements the register inspection core of the debugger:
// a bank of named, indexed 32-bit registers, each optionally split into named
// bit fields, with per-node display formats and expansion state that survive
// across debug sessions. The package is independent of any presentation
// layer; frontends consume it through the TreeItem descriptors and the
// change subscription.
package registers

import (
	"fmt"
)

// Format is the rendering mode of a register or field value
type Format int

const (
	// FormatAuto picks a default rendering: 8-digit hex for registers, a
	// width-dependent hex/binary heuristic for fields
	FormatAuto Format = iota
	// FormatDecimal renders plain base-10
	FormatDecimal
	// FormatHexadecimal renders zero-padded hex
	FormatHexadecimal
	// FormatBinary renders fixed-width binary
	FormatBinary
)

// String returns the string representation of a Format. FormatAuto maps to
// the empty string so that persisted records omit it.
func (f Format) String() string {
	switch f {
	case FormatDecimal:
		return "Decimal"
	case FormatHexadecimal:
		return "Hexadecimal"
	case FormatBinary:
		return "Binary"
	default:
		return ""
	}
}

// ParseFormat parses the persisted string form of a Format. The empty string
// parses to FormatAuto.
func ParseFormat(text string) (Format, error) {
	switch text {
	case "":
		return FormatAuto, nil
	case "Decimal":
		return FormatDecimal, nil
	case "Hexadecimal":
		return FormatHexadecimal, nil
	case "Binary":
		return FormatBinary, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format %q", text)
	}
}

// Next cycles through the formats in display order. Used by interactive
// frontends to toggle the format of the selected node.
func (f Format) Next() Format {
	switch f {
	case FormatAuto:
		return FormatDecimal
	case FormatDecimal:
		return FormatHexadecimal
	case FormatHexadecimal:
		return FormatBinary
	default:
		return FormatAuto
	}
}
