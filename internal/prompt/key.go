package prompt

// Key is a discrete key press delivered by an InputSource.
type Key struct {
	Name string // symbolic name: "up", "down", "return", "escape", "a", ...
	Ctrl bool   // control modifier held
}

// String returns the key in "ctrl+c" notation.
func (k Key) String() string {
	if k.Ctrl {
		return "ctrl+" + k.Name
	}
	return k.Name
}

// Event is a state machine trigger derived from a key.
type Event int

const (
	// EventNone is any key without a meaning; it is ignored.
	EventNone Event = iota
	// MoveUp moves the cursor to the previous choice.
	MoveUp
	// MoveDown moves the cursor to the next choice.
	MoveDown
	// Confirm selects the current choice.
	Confirm
	// Cancel stops the session without completing it.
	Cancel
)

func (e Event) String() string {
	switch e {
	case MoveUp:
		return "move-up"
	case MoveDown:
		return "move-down"
	case Confirm:
		return "confirm"
	case Cancel:
		return "cancel"
	default:
		return "none"
	}
}

// Keymap maps key strings (as returned by Key.String) to events.
type Keymap map[string]Event

// DefaultKeymap returns the arrow/enter/esc bindings plus vim-style j/k.
func DefaultKeymap() Keymap {
	return Keymap{
		"up":     MoveUp,
		"k":      MoveUp,
		"down":   MoveDown,
		"j":      MoveDown,
		"return": Confirm,
		"enter":  Confirm,
		"escape": Cancel,
		"esc":    Cancel,
		"ctrl+c": Cancel,
	}
}

// Resolve returns the event bound to k, or EventNone.
func (m Keymap) Resolve(k *Key) Event {
	if k == nil {
		return EventNone
	}
	return m[k.String()]
}
