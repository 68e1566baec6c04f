package registers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_RenderFormats(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		value    uint32
		expected string
	}{
		{name: "auto defaults to 8 digit hex", format: FormatAuto, value: 255, expected: "R0 = 0x000000FF"},
		{name: "explicit hex", format: FormatHexadecimal, value: 255, expected: "R0 = 0x000000FF"},
		{name: "decimal", format: FormatDecimal, value: 255, expected: "R0 = 255"},
		{name: "binary", format: FormatBinary, value: 255, expected: "R0 = 00000000000000000000000011111111"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := NewRegister("R0", 0)
			r.SetValue(test.value)
			r.SetFormat(test.format)
			assert.Equal(t, test.expected, r.Render())
		})
	}
}

func TestRegister_BinaryRenderIs32Chars(t *testing.T) {
	r := NewRegister("R0", 0)
	r.SetValue(0x80000001)
	r.SetFormat(FormatBinary)
	assert.Len(t, r.CopyValue(), 32)
}

func TestRegister_ResolvedFormatIsVerbatim(t *testing.T) {
	r := NewRegister("R0", 0)
	assert.Equal(t, FormatAuto, r.ResolvedFormat())

	r.SetFormat(FormatDecimal)
	assert.Equal(t, FormatDecimal, r.ResolvedFormat())
}

func TestRegister_StatusFieldLayout(t *testing.T) {
	r := NewRegister("xPSR", 0)
	require.Len(t, r.Fields(), len(statusFields))

	// name matching is case insensitive, CPSR shares the layout
	assert.Len(t, NewRegister("CPSR", 1).Fields(), len(statusFields))
	assert.Len(t, NewRegister("cpsr", 2).Fields(), len(statusFields))

	// the two ICI/IT spans must both survive, first match wins on lookup
	var spans []*Field
	for _, f := range r.Fields() {
		if f.Name() == "ICI/IT" {
			spans = append(spans, f)
		}
	}
	require.Len(t, spans, 2)
	assert.Equal(t, 25, spans[0].Offset())
	assert.Equal(t, 2, spans[0].Width())
	assert.Equal(t, 10, spans[1].Offset())
	assert.Equal(t, 6, spans[1].Width())
	assert.Same(t, spans[0], r.FieldByName("ICI/IT"))
}

func TestRegister_ControlFieldLayout(t *testing.T) {
	r := NewRegister("CONTROL", 21)
	require.Len(t, r.Fields(), 3)
	assert.Equal(t, "FPCA", r.Fields()[0].Name())
	assert.Equal(t, "SPSEL", r.Fields()[1].Name())
	assert.Equal(t, "nPRIV", r.Fields()[2].Name())
}

func TestRegister_GenericHasNoFields(t *testing.T) {
	r := NewRegister("R0", 0)
	assert.Empty(t, r.Fields())
	assert.False(t, r.TreeItem().Expandable)
}

func TestRegister_StatusScenario(t *testing.T) {
	r := NewRegister("XPSR", 0)
	r.SetValue(0x00000001)

	negative := r.FieldByName("Negative Flag (N)")
	require.NotNil(t, negative)
	assert.Equal(t, "0", negative.CopyValue())

	interrupt := r.FieldByName("Interrupt Number")
	require.NotNil(t, interrupt)
	assert.Equal(t, "0x01", interrupt.CopyValue())

	r.SetValue(0x80000000)
	assert.Equal(t, "1", negative.CopyValue())
	assert.Equal(t, "0x00", interrupt.CopyValue())
}

func TestRegister_SetValueIdempotentRendering(t *testing.T) {
	r := NewRegister("xPSR", 0)
	r.SetValue(0xDEADBEEF)
	first := r.Render()

	r.SetValue(0xDEADBEEF)
	assert.Equal(t, first, r.Render())
}

func TestRegisterFieldSpecs_Extensible(t *testing.T) {
	RegisterFieldSpecs("TESTREG", []FieldSpec{{Name: "LOW", Offset: 0, Width: 4}})
	defer delete(fieldTable, "TESTREG")

	r := NewRegister("TestReg", 0)
	require.Len(t, r.Fields(), 1)
	r.SetValue(0xC)
	assert.Equal(t, "0xC", r.Fields()[0].CopyValue())
}
