package registers

import (
	"strings"
)

// FieldSpec describes one bit span of a register layout
type FieldSpec struct {
	// Field name. Names need not be unique within a layout: the xPSR ICI/IT
	// bits deliberately appear as two spans with the same label.
	Name string
	// First bit of the span
	Offset int
	// Width of the span in bits
	Width int
}

// fieldTable maps upper-cased register names to their field layouts. Layouts
// are hand-curated; registers without an entry render as plain 32-bit
// values. New architectures register their layouts through
// RegisterFieldSpecs without touching the entities.
var fieldTable = map[string][]FieldSpec{}

// statusFields is the layout of the Cortex-M program status register. The
// layout is shared between the CPSR and xPSR spellings of the name.
var statusFields = []FieldSpec{
	{Name: "Negative Flag (N)", Offset: 31, Width: 1},
	{Name: "Zero Flag (Z)", Offset: 30, Width: 1},
	{Name: "Carry or borrow flag (C)", Offset: 29, Width: 1},
	{Name: "Overflow Flag (V)", Offset: 28, Width: 1},
	{Name: "Saturation Flag (Q)", Offset: 27, Width: 1},
	{Name: "ICI/IT", Offset: 25, Width: 2},
	{Name: "Thumb State (T)", Offset: 24, Width: 1},
	{Name: "Greater than or Equal flags (GE)", Offset: 16, Width: 4},
	{Name: "ICI/IT", Offset: 10, Width: 6},
	{Name: "Interrupt Number", Offset: 0, Width: 8},
}

// controlFields is the layout of the Cortex-M CONTROL register
var controlFields = []FieldSpec{
	{Name: "FPCA", Offset: 2, Width: 1},
	{Name: "SPSEL", Offset: 1, Width: 1},
	{Name: "nPRIV", Offset: 0, Width: 1},
}

func init() {
	RegisterFieldSpecs("XPSR", statusFields)
	RegisterFieldSpecs("CPSR", statusFields)
	RegisterFieldSpecs("CONTROL", controlFields)
}

// RegisterFieldSpecs installs a field layout for a register name. The name
// match is case-insensitive. Installing a layout for an already known name
// replaces the previous layout.
func RegisterFieldSpecs(name string, specs []FieldSpec) {
	fieldTable[strings.ToUpper(name)] = specs
}

// LookupFieldSpecs returns the field layout for a register name, or nil if
// the name has no curated layout
func LookupFieldSpecs(name string) []FieldSpec {
	return fieldTable[strings.ToUpper(name)]
}
