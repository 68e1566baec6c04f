package registers

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/EvilEli/cortex-debug/pkg/utils"
)

// State is the lifecycle state of the Registry
type State int

const (
	// StateUnloaded means no session entities exist
	StateUnloaded State = iota
	// StateLoading means the register name list has been requested
	StateLoading
	// StateLoaded means entities exist; their values may be stale
	StateLoaded
)

// String returns the string representation of a State
func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// ErrBadValueReport is returned when the target reports a register value
// that cannot be parsed
var ErrBadValueReport = errors.New("malformed register value report")

// Registry owns the register bank for the lifetime of one debug session. It
// builds the entities from the target's name list, loads and applies
// persisted display preferences, drives bulk value refreshes, and saves
// preferences back when the session ends.
//
// All mutation happens on the single coordinating goroutine; the only
// suspension points are the collaborator calls. Results of a refresh issued
// for an earlier session generation are discarded.
type Registry struct {
	target  DebugTarget
	store   PreferenceStore
	log     *slog.Logger
	state   State
	regs    []*Register
	byIndex map[int]*Register
	events  notifier
	// generation increments on every session transition so that an in-flight
	// refresh resolving after a restart cannot write into replaced entities
	generation uint64
}

// NewRegistry creates a registry over the given collaborators. A nil store
// disables persistence; a nil logger falls back to slog.Default().
func NewRegistry(target DebugTarget, store PreferenceStore, log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}

	return &Registry{
		target: target,
		store:  store,
		log:    log,
		state:  StateUnloaded,
	}
}

// State returns the registry's lifecycle state
func (g *Registry) State() State {
	return g.state
}

// Registers returns the current bank in target order. The slice is empty
// outside a loaded session.
func (g *Registry) Registers() []*Register {
	return g.regs
}

// Subscribe registers a change handler invoked after each coherent state
// transition and returns a function that unregisters it
func (g *Registry) Subscribe(handler ChangeHandler) (unregister func()) {
	return g.events.subscribe(handler)
}

// SessionStarted discards any existing entities and resets to StateUnloaded.
// Dependents are notified so they re-render to an empty view; the bank is
// rebuilt by the next Refresh.
func (g *Registry) SessionStarted() {
	g.log.Debug("debug session started", "previous_state", g.state.String())
	g.clear()
	g.events.publish(ChangeSessionStarted)
}

// SessionTerminated saves the current display preferences and discards the
// session entities
func (g *Registry) SessionTerminated() {
	if g.store != nil && len(g.regs) > 0 {
		records := CollectPreferences(g.regs)
		if err := g.store.Save(records); err != nil {
			g.log.Warn("could not save register display preferences", "error", err)
		} else {
			g.log.Debug("saved register display preferences", "records", len(records))
		}
	}

	g.clear()
	g.events.publish(ChangeSessionTerminated)
}

// DebugStopped refreshes the bank after the target halts
func (g *Registry) DebugStopped(ctx context.Context) error {
	return g.Refresh(ctx)
}

// DebugContinued is a no-op: values are intentionally not refreshed while
// the target is running
func (g *Registry) DebugContinued() {}

// Refresh synchronizes the bank with the target. On the first refresh of a
// session it fetches the name list, builds the entities, applies persisted
// preferences and then fetches values; on subsequent refreshes it fetches
// values only.
func (g *Registry) Refresh(ctx context.Context) error {
	generation := g.generation

	if len(g.regs) == 0 {
		g.state = StateLoading

		names, err := g.target.RegisterNames(ctx)
		if err != nil {
			g.state = StateUnloaded
			return utils.MakeError(err, "requesting register names")
		}
		if generation != g.generation {
			g.log.Debug("discarding stale register name response", "generation", generation)
			return nil
		}

		g.createRegisters(names)
		g.state = StateLoaded
		g.events.publish(ChangeRegistersLoaded)
	}

	values, err := g.target.RegisterValues(ctx)
	if err != nil {
		return utils.MakeError(err, "requesting register values")
	}
	if generation != g.generation {
		g.log.Debug("discarding stale register value response", "generation", generation)
		return nil
	}

	if err := g.applyValues(values); err != nil {
		return err
	}

	g.events.publish(ChangeValuesUpdated)
	return nil
}

// Lookup resolves a node path ("xPSR" or "xPSR.Interrupt Number") to its
// copy text for clipboard/export use. The second result reports whether the
// node exists.
func (g *Registry) Lookup(path string) (string, bool) {
	regName, fieldName, isField := strings.Cut(path, ".")

	r := registerByName(g.regs, regName)
	if r == nil {
		return "", false
	}
	if !isField {
		return r.CopyValue(), true
	}

	f := r.FieldByName(fieldName)
	if f == nil {
		return "", false
	}
	return f.CopyValue(), true
}

// createRegisters builds the bank from the target's name list. Blank name
// entries are skipped, leaving gaps in the index space; the index of each
// kept register is its position in the original list.
func (g *Registry) createRegisters(names []string) {
	g.regs = nil
	g.byIndex = make(map[int]*Register, len(names))

	for index, name := range names {
		if name == "" {
			continue
		}
		r := NewRegister(name, index)
		g.regs = append(g.regs, r)
		g.byIndex[index] = r
	}

	g.log.Debug("built register bank", "registers", len(g.regs))
	g.loadPreferences()
}

// loadPreferences reads the persisted record list and applies it to the
// freshly built bank. Absence of saved preferences is not an error.
func (g *Registry) loadPreferences() {
	if g.store == nil {
		return
	}

	records, err := g.store.Load()
	if err != nil {
		g.log.Warn("could not load register display preferences", "error", err)
		return
	}

	ApplyPreferences(g.regs, records)
	g.log.Debug("applied register display preferences", "records", len(records))
}

// applyValues parses and applies a raw-value batch. The whole batch is
// parsed before any entity is mutated so that a malformed report aborts the
// update cycle without corrupting prior state. Numbers without a matching
// register are ignored: the target may report more registers than are
// tracked, or vice versa.
func (g *Registry) applyValues(values []RegisterValue) error {
	type update struct {
		reg   *Register
		value uint32
	}
	updates := make([]update, 0, len(values))

	for _, rv := range values {
		index, err := strconv.Atoi(rv.Number)
		if err != nil {
			return utils.MakeError(ErrBadValueReport, "register number %q", rv.Number)
		}

		text := strings.TrimPrefix(strings.ToLower(rv.Value), "0x")
		value, err := strconv.ParseUint(text, 16, 32)
		if err != nil {
			return utils.MakeError(ErrBadValueReport, "register %d value %q", index, rv.Value)
		}

		if reg, ok := g.byIndex[index]; ok {
			updates = append(updates, update{reg: reg, value: uint32(value)})
		}
	}

	for _, u := range updates {
		u.reg.SetValue(u.value)
	}

	return nil
}

func (g *Registry) clear() {
	g.regs = nil
	g.byIndex = nil
	g.state = StateUnloaded
	g.generation++
}
