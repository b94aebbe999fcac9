package session

// EventKind tags a normalized key event.
type EventKind int

// Recognized event kinds. Terminal-specific key codes are normalized
// into these by the UI layer before they reach the state machine.
const (
	KindUnknown EventKind = iota
	KindPrintable
	KindBackspace
	KindResize
	KindCancel
)

// Event is one normalized input event.
type Event struct {
	Kind EventKind
	Rune rune // set for KindPrintable
}

// Printable builds a printable-character event.
func Printable(r rune) Event {
	return Event{Kind: KindPrintable, Rune: r}
}

// Space builds a printable event for the space character.
func Space() Event {
	return Printable(' ')
}

// Backspace builds a backspace event.
func Backspace() Event {
	return Event{Kind: KindBackspace}
}

// Cancel builds an explicit stop event.
func Cancel() Event {
	return Event{Kind: KindCancel}
}

// Resize builds a resize notification. It never mutates the session;
// callers recompute the layout instead.
func Resize() Event {
	return Event{Kind: KindResize}
}
