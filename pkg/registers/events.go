package registers

// ChangeReason identifies the state transition behind a tree change
// notification
type ChangeReason int

const (
	// ChangeSessionStarted is fired when a new debug session begins and the
	// previous bank has been discarded
	ChangeSessionStarted ChangeReason = iota
	// ChangeRegistersLoaded is fired after the bank has been rebuilt from
	// the target's name list and persisted preferences were applied
	ChangeRegistersLoaded
	// ChangeValuesUpdated is fired after a raw-value batch has been applied
	ChangeValuesUpdated
	// ChangeSessionTerminated is fired when the session ends and the bank
	// has been discarded
	ChangeSessionTerminated
)

// String returns the string representation of a ChangeReason
func (r ChangeReason) String() string {
	switch r {
	case ChangeSessionStarted:
		return "session_started"
	case ChangeRegistersLoaded:
		return "registers_loaded"
	case ChangeValuesUpdated:
		return "values_updated"
	case ChangeSessionTerminated:
		return "session_terminated"
	default:
		return "unknown"
	}
}

// ChangeHandler is a callback invoked after each coherent Registry state
// transition
type ChangeHandler func(reason ChangeReason)

// notifier fans a change event out to the registered handlers. One event is
// published per coherent transition, never per individual entity mutation.
type notifier struct {
	handlers []ChangeHandler
}

// subscribe registers a handler and returns a function that unregisters it
func (n *notifier) subscribe(handler ChangeHandler) (unregister func()) {
	n.handlers = append(n.handlers, handler)
	index := len(n.handlers) - 1

	return func() {
		// Mark as nil instead of removing to preserve indices
		if index < len(n.handlers) {
			n.handlers[index] = nil
		}
	}
}

func (n *notifier) publish(reason ChangeReason) {
	for _, handler := range n.handlers {
		if handler != nil {
			handler(reason)
		}
	}
}
