package registers

import (
	"context"
)

// DebugTarget is the debug backend collaborator the Registry fetches
// register data from. Implementations wrap whatever transport talks to the
// live target (a GDB server, a simulator, a test stub); the Registry only
// sees name lists and wire-format value pairs.
type DebugTarget interface {
	// RegisterNames returns the ordered register name list of the current
	// session. Entries may be blank; blank entries are skipped when building
	// the bank, leaving gaps in the index space.
	RegisterNames(ctx context.Context) ([]string, error)

	// RegisterValues returns the current raw values in wire form
	RegisterValues(ctx context.Context) ([]RegisterValue, error)
}

// RegisterValue is one register value as reported by the target: the
// register number as decimal text and the raw value as hex text. Both are
// parsed before use.
type RegisterValue struct {
	Number string
	Value  string
}

// PreferenceStore is the persistence collaborator for display preferences.
// Load returns the previously saved record list; an absent store is an empty
// list, not an error. Save overwrites the stored set wholesale.
type PreferenceStore interface {
	Load() ([]PreferenceRecord, error)
	Save(records []PreferenceRecord) error
}

// TreeItem is the descriptor a tree frontend needs to draw one node
type TreeItem struct {
	Label      string
	Expandable bool
	Expanded   bool
}
