package registers

import (
	"github.com/EvilEli/cortex-debug/pkg/utils"
)

// Field is a named bit span within its owning register's value. Fields never
// store a value of their own; they extract it from the owner on demand. A
// Field is created and destroyed together with its Register and never
// outlives it, so the back-reference carries no ownership.
type Field struct {
	name   string
	offset int
	width  int
	owner  *Register
	format Format
}

// Name returns the field name
func (f *Field) Name() string {
	return f.name
}

// Offset returns the first bit of the span within the register value
func (f *Field) Offset() int {
	return f.offset
}

// Width returns the width of the span in bits
func (f *Field) Width() int {
	return f.width
}

// Register returns the owning register
func (f *Field) Register() *Register {
	return f.owner
}

// Value extracts the field's current value from the owning register
func (f *Field) Value() uint32 {
	return f.owner.ExtractBits(f.offset, f.width)
}

// Format returns the field's explicit format
func (f *Field) Format() Format {
	return f.format
}

// SetFormat sets the field's explicit format
func (f *Field) SetFormat(format Format) {
	f.format = format
}

// ResolvedFormat resolves the field's display format: the field's own
// explicit format if set, otherwise the owning register's resolved format.
// The result may still be FormatAuto, in which case rendering falls back to
// the width heuristic.
func (f *Field) ResolvedFormat() Format {
	if f.format != FormatAuto {
		return f.format
	}
	return f.owner.ResolvedFormat()
}

// CopyValue formats the field's current value without the name label.
// Explicit formats render as requested; FormatAuto uses a width heuristic:
// spans of 4 or more bits read better as hex, narrower spans as binary.
func (f *Field) CopyValue() string {
	value := f.Value()

	switch f.ResolvedFormat() {
	case FormatDecimal:
		return utils.DecimalFormat(value)
	case FormatBinary:
		return utils.BinaryFormat(value, f.width)
	case FormatHexadecimal:
		return utils.HexFormat(value, utils.HexDigits(f.width), true)
	default:
		if f.width >= 4 {
			return utils.HexFormat(value, utils.HexDigits(f.width), true)
		}
		return utils.BinaryFormat(value, f.width)
	}
}

// Render formats the field for display as "<name> = <value>"
func (f *Field) Render() string {
	return f.name + " = " + f.CopyValue()
}

// TreeItem returns the field's tree descriptor. Fields are always leaves.
func (f *Field) TreeItem() TreeItem {
	return TreeItem{
		Label:      f.Render(),
		Expandable: false,
		Expanded:   false,
	}
}

// Preference returns the field's persisted record, or nil if the field
// carries only default state. Fields are not collapsible, so the record
// never has an expanded flag.
func (f *Field) Preference() *PreferenceRecord {
	if f.format == FormatAuto {
		return nil
	}

	return &PreferenceRecord{
		Node:   f.owner.Name() + "." + f.name,
		Format: f.format.String(),
	}
}
