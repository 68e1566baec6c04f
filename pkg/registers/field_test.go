package registers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fieldFixture builds a plain register with a single ad hoc field
func fieldFixture(t *testing.T, offset, width int, value uint32) (*Register, *Field) {
	t.Helper()

	r := NewRegister("scratch", 0)
	require.Empty(t, r.Fields())

	f := &Field{name: "span", offset: offset, width: width, owner: r}
	r.fields = append(r.fields, f)
	r.SetValue(value)

	return r, f
}

func TestField_Value(t *testing.T) {
	_, f := fieldFixture(t, 8, 8, 0x0000AB00)
	assert.Equal(t, uint32(0xAB), f.Value())
}

func TestField_AutoFormatHeuristic(t *testing.T) {
	tests := []struct {
		name     string
		offset   int
		width    int
		value    uint32
		expected string
	}{
		// narrow spans read better as binary
		{name: "width 1 renders binary", offset: 31, width: 1, value: 0x80000000, expected: "1"},
		{name: "width 2 renders binary", offset: 0, width: 2, value: 0x3, expected: "11"},
		{name: "width 3 renders binary", offset: 0, width: 3, value: 0x5, expected: "101"},
		// 4 bits and wider read better as hex
		{name: "width 4 renders hex", offset: 0, width: 4, value: 0xA, expected: "0xA"},
		{name: "width 8 renders hex", offset: 0, width: 8, value: 1, expected: "0x01"},
		{name: "width 6 renders hex", offset: 0, width: 6, value: 0x3F, expected: "0x3F"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, f := fieldFixture(t, test.offset, test.width, test.value)
			assert.Equal(t, test.expected, f.CopyValue())
		})
	}
}

func TestField_ExplicitFormats(t *testing.T) {
	_, f := fieldFixture(t, 0, 8, 255)

	f.SetFormat(FormatDecimal)
	assert.Equal(t, "255", f.CopyValue())

	f.SetFormat(FormatBinary)
	assert.Equal(t, "11111111", f.CopyValue())

	f.SetFormat(FormatHexadecimal)
	assert.Equal(t, "0xFF", f.CopyValue())
}

func TestField_FormatInheritance(t *testing.T) {
	r, f := fieldFixture(t, 0, 8, 255)

	// field Auto inherits the register's explicit format
	r.SetFormat(FormatDecimal)
	assert.Equal(t, FormatDecimal, f.ResolvedFormat())
	assert.Equal(t, "255", f.CopyValue())

	// field explicit overrides the register
	f.SetFormat(FormatBinary)
	assert.Equal(t, FormatBinary, f.ResolvedFormat())
	assert.Equal(t, "11111111", f.CopyValue())

	// both Auto falls back to the width heuristic, never to 8-digit hex
	r.SetFormat(FormatAuto)
	f.SetFormat(FormatAuto)
	assert.Equal(t, FormatAuto, f.ResolvedFormat())
	assert.Equal(t, "0xFF", f.CopyValue())
}

func TestField_Render(t *testing.T) {
	_, f := fieldFixture(t, 0, 8, 1)
	assert.Equal(t, "span = 0x01", f.Render())

	item := f.TreeItem()
	assert.Equal(t, "span = 0x01", item.Label)
	assert.False(t, item.Expandable)
}

func TestField_Preference(t *testing.T) {
	_, f := fieldFixture(t, 0, 8, 0)

	// default format carries no record
	assert.Nil(t, f.Preference())

	f.SetFormat(FormatBinary)
	record := f.Preference()
	require.NotNil(t, record)
	assert.Equal(t, "scratch.span", record.Node)
	assert.Equal(t, "Binary", record.Format)
	assert.False(t, record.Expanded)
}
