package registers

import (
	"github.com/EvilEli/cortex-debug/pkg/utils"
)

const registerBits = 32

// Register is one named, numbered register of the inspected target. The
// index is the stable position within the bank for the lifetime of one debug
// session and keys raw-value updates; the name keys persisted preferences.
type Register struct {
	name     string
	index    int
	value    uint32
	fields   []*Field
	format   Format
	expanded bool
}

// NewRegister creates a register and populates its fields from the layout
// table. Registers with no recognized layout have no fields.
func NewRegister(name string, index int) *Register {
	r := &Register{
		name:  name,
		index: index,
	}

	for _, spec := range LookupFieldSpecs(name) {
		r.fields = append(r.fields, &Field{
			name:   spec.Name,
			offset: spec.Offset,
			width:  spec.Width,
			owner:  r,
		})
	}

	return r
}

// Name returns the register name
func (r *Register) Name() string {
	return r.name
}

// Index returns the register's position in the bank
func (r *Register) Index() int {
	return r.index
}

// Value returns the raw register contents
func (r *Register) Value() uint32 {
	return r.value
}

// SetValue overwrites the raw register contents. The value is trusted to be
// a 32-bit quantity supplied by the debug target; no validation happens here.
func (r *Register) SetValue(value uint32) {
	r.value = value
}

// Fields returns the register's bit fields in layout order
func (r *Register) Fields() []*Field {
	return r.fields
}

// FieldByName returns the first field with the given name, or nil. Duplicate
// field labels are legal (the xPSR ICI/IT spans), first match wins.
func (r *Register) FieldByName(name string) *Field {
	for _, f := range r.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}

// Format returns the register's explicit format
func (r *Register) Format() Format {
	return r.format
}

// SetFormat sets the register's explicit format
func (r *Register) SetFormat(format Format) {
	r.format = format
}

// Expanded reports whether the register node is expanded in the tree
func (r *Register) Expanded() bool {
	return r.expanded
}

// SetExpanded sets the register node's expansion state
func (r *Register) SetExpanded(expanded bool) {
	r.expanded = expanded
}

// ResolvedFormat returns the register's explicit format verbatim. There is
// no fallback level above a register: FormatAuto simply means the default
// hex rendering.
func (r *Register) ResolvedFormat() Format {
	return r.format
}

// ExtractBits extracts a bit span from the current value
func (r *Register) ExtractBits(offset int, width int) uint32 {
	return utils.ExtractBits(r.value, offset, width)
}

// CopyValue formats the raw value without the name label. FormatAuto and
// FormatHexadecimal both render as 8-digit hex.
func (r *Register) CopyValue() string {
	switch r.format {
	case FormatDecimal:
		return utils.DecimalFormat(r.value)
	case FormatBinary:
		return utils.BinaryFormat(r.value, registerBits)
	default:
		return utils.HexFormat(r.value, utils.HexDigits(registerBits), true)
	}
}

// Render formats the register for display as "<name> = <value>"
func (r *Register) Render() string {
	return r.name + " = " + r.CopyValue()
}

// TreeItem returns the register's tree descriptor
func (r *Register) TreeItem() TreeItem {
	return TreeItem{
		Label:      r.Render(),
		Expandable: len(r.fields) > 0,
		Expanded:   r.expanded,
	}
}

// Preferences returns the register's persisted records: one for the
// register itself when it carries non-default state, followed by one per
// field with a non-default format. Default state produces no records at
// all, keeping the persisted file minimal.
func (r *Register) Preferences() []PreferenceRecord {
	var records []PreferenceRecord

	if r.expanded || r.format != FormatAuto {
		records = append(records, PreferenceRecord{
			Node:     r.name,
			Format:   r.format.String(),
			Expanded: r.expanded,
		})
	}

	for _, f := range r.fields {
		if record := f.Preference(); record != nil {
			records = append(records, *record)
		}
	}

	return records
}
