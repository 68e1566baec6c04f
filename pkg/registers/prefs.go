package registers

import (
	"strings"
)

// PreferenceRecord is the persisted unit of display state for one tree node,
// addressed by register name or "<register>.<field>" path. Records carry
// only non-default state: an absent format means Auto, an absent expanded
// flag means collapsed. FormatAuto is never written out.
type PreferenceRecord struct {
	Node     string `yaml:"node"`
	Format   string `yaml:"format,omitempty"`
	Expanded bool   `yaml:"expanded,omitempty"`
}

// CollectPreferences derives the persisted record list from the current
// state of a register bank
func CollectPreferences(regs []*Register) []PreferenceRecord {
	var records []PreferenceRecord

	for _, r := range regs {
		records = append(records, r.Preferences()...)
	}

	return records
}

// ApplyPreferences reconciles a persisted record list into a freshly built
// register bank by name matching. The reconciliation is best-effort and
// forward compatible: records naming registers or fields that no longer
// exist are dropped silently, as are records with unparseable formats.
// Duplicate register names are ambiguous, the first occurrence by index
// wins.
func ApplyPreferences(regs []*Register, records []PreferenceRecord) {
	for _, record := range records {
		regName, fieldName, isField := strings.Cut(record.Node, ".")

		r := registerByName(regs, regName)
		if r == nil {
			continue
		}

		format, err := ParseFormat(record.Format)
		if err != nil {
			continue
		}

		if !isField {
			r.SetExpanded(record.Expanded)
			r.SetFormat(format)
			continue
		}

		// fields have no expanded concept, only the format applies
		if f := r.FieldByName(fieldName); f != nil {
			f.SetFormat(format)
		}
	}
}

func registerByName(regs []*Register, name string) *Register {
	for _, r := range regs {
		if r.Name() == name {
			return r
		}
	}
	return nil
}
