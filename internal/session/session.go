// Package session drives the live typing state machine.
package session

import "time"

// CharStatus is the judged state of one prompt character.
type CharStatus int

// Character states. Every index starts Pending and is judged exactly
// once per pass of the cursor.
const (
	Pending CharStatus = iota
	Correct
	Incorrect
)

// State is the lifecycle phase of a session.
type State int

// Session lifecycle: NotStarted until the first accepted key event,
// Running while typing, Finished when the cursor reaches the end of
// the prompt or the session is cancelled.
const (
	NotStarted State = iota
	Running
	Finished
)

// Session holds the mutable state for one typing test run. It is owned
// by a single event loop and is not safe for concurrent use.
type Session struct {
	target    []rune
	statuses  []CharStatus
	cursor    int
	state     State
	startedAt time.Time
	endedAt   time.Time

	now func() time.Time
}

// New creates a session for the given prompt text with all characters
// pending.
func New(text string) *Session {
	target := []rune(text)
	return &Session{
		target:   target,
		statuses: make([]CharStatus, len(target)),
		now:      time.Now,
	}
}

// Apply consumes one normalized event, mutating the session in place.
// Events are never rejected: out-of-range or nonsensical events are
// silent no-ops so the live typing experience stays uninterrupted.
func (s *Session) Apply(ev Event) {
	if s.state == Finished {
		return
	}
	switch ev.Kind {
	case KindPrintable:
		s.applyPrintable(ev.Rune)
	case KindBackspace:
		s.applyBackspace()
	case KindCancel:
		if s.state == Running {
			s.finish()
		}
	case KindResize, KindUnknown:
		// No state change; resize only triggers a re-layout upstream.
	}
}

func (s *Session) applyPrintable(r rune) {
	if s.cursor >= len(s.target) {
		return
	}
	expected := s.target[s.cursor]
	if r == ' ' && expected != ' ' {
		// Space mid-word cannot be used to skip ahead.
		return
	}
	if s.state == NotStarted {
		s.state = Running
		s.startedAt = s.now()
	}
	if r == expected {
		s.statuses[s.cursor] = Correct
	} else {
		s.statuses[s.cursor] = Incorrect
	}
	s.cursor++
	if s.cursor == len(s.target) {
		s.finish()
	}
}

func (s *Session) applyBackspace() {
	if s.cursor == 0 {
		return
	}
	// A committed separator space marks the previous word as done;
	// correction is bounded to the current word.
	if s.target[s.cursor-1] == ' ' {
		return
	}
	s.cursor--
	s.statuses[s.cursor] = Pending
}

func (s *Session) finish() {
	s.state = Finished
	s.endedAt = s.now()
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// Cursor returns the index of the next character to judge.
func (s *Session) Cursor() int {
	return s.cursor
}

// Statuses returns the per-character judgments. The slice is shared;
// callers must treat it as read-only.
func (s *Session) Statuses() []CharStatus {
	return s.statuses
}

// Target returns the prompt runes the session judges against.
func (s *Session) Target() []rune {
	return s.target
}

// StartedAt reports when the first accepted key event arrived.
func (s *Session) StartedAt() (time.Time, bool) {
	return s.startedAt, s.state != NotStarted
}

// Elapsed returns the time spent typing so far: zero before the first
// keystroke, frozen at the finish time once the session ends.
func (s *Session) Elapsed() time.Duration {
	switch s.state {
	case NotStarted:
		return 0
	case Finished:
		return s.endedAt.Sub(s.startedAt)
	default:
		return s.now().Sub(s.startedAt)
	}
}
