// Package score computes accuracy and WPM for typing sessions.
package score

import (
	"errors"
	"time"

	"koalatype/internal/session"
)

// ErrNotStarted is returned when scoring a session that never received
// an accepted key event.
var ErrNotStarted = errors.New("session not started")

// minElapsed floors elapsed time to avoid division by zero.
const minElapsed = time.Millisecond

// Result is the final outcome of one typing session.
type Result struct {
	Accuracy     float64 // percent in [0, 100]
	WPM          float64
	Elapsed      time.Duration
	CorrectChars int
	TotalChars   int
}

// Compute derives metrics from judged character counts and elapsed
// time using the 5-characters-per-word convention. WPM measures raw
// throughput, so all judged characters count toward it.
func Compute(correct, total int, elapsed time.Duration) Result {
	if elapsed < minElapsed {
		elapsed = minElapsed
	}
	accuracy := 100.0
	if total > 0 {
		accuracy = 100.0 * float64(correct) / float64(total)
	}
	wpm := (float64(total) / 5.0) / elapsed.Minutes()
	return Result{
		Accuracy:     accuracy,
		WPM:          wpm,
		Elapsed:      elapsed,
		CorrectChars: correct,
		TotalChars:   total,
	}
}

// FromSession scores a session on the characters actually judged, so a
// cancelled session is scored on what was typed.
func FromSession(s *session.Session) (Result, error) {
	if _, ok := s.StartedAt(); !ok {
		return Result{}, ErrNotStarted
	}
	total := s.Cursor()
	correct := 0
	for _, st := range s.Statuses()[:total] {
		if st == session.Correct {
			correct++
		}
	}
	return Compute(correct, total, s.Elapsed()), nil
}
