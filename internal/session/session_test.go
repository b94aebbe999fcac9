package session

import (
	"testing"
	"time"
)

func applyText(s *Session, text string) {
	for _, r := range text {
		s.Apply(Printable(r))
	}
}

func TestTypingJudgesCharacters(t *testing.T) {
	s := New("cat dog")
	applyText(s, "cat dig")

	want := []CharStatus{Correct, Correct, Correct, Correct, Correct, Incorrect, Correct}
	for i, st := range s.Statuses() {
		if st != want[i] {
			t.Fatalf("status %d: expected %v, got %v", i, want[i], st)
		}
	}
	if s.Cursor() != 7 {
		t.Fatalf("expected cursor 7, got %d", s.Cursor())
	}
	if s.State() != Finished {
		t.Fatalf("expected Finished, got %v", s.State())
	}
}

func TestWrongCharacterStillAdvances(t *testing.T) {
	s := New("abc")
	s.Apply(Printable('x'))
	if s.Cursor() != 1 {
		t.Fatalf("expected cursor 1 after mistake, got %d", s.Cursor())
	}
	if s.Statuses()[0] != Incorrect {
		t.Fatalf("expected Incorrect status, got %v", s.Statuses()[0])
	}
}

func TestMonotonicJudging(t *testing.T) {
	s := New("hello world")
	applyText(s, "helxo")
	cursor := s.Cursor()
	if cursor != 5 {
		t.Fatalf("expected cursor 5, got %d", cursor)
	}
	for i, st := range s.Statuses() {
		if i < cursor && st == Pending {
			t.Fatalf("index %d before cursor is Pending", i)
		}
		if i >= cursor && st != Pending {
			t.Fatalf("index %d at/after cursor is %v", i, st)
		}
	}
}

func TestSpaceMidWordIgnored(t *testing.T) {
	s := New("hello world")
	applyText(s, "he")
	s.Apply(Space())
	if s.Cursor() != 2 {
		t.Fatalf("expected space mid-word to be ignored, cursor %d", s.Cursor())
	}
	if s.Statuses()[2] != Pending {
		t.Fatalf("expected index 2 to stay Pending")
	}
}

func TestSpaceMatchesSeparator(t *testing.T) {
	s := New("a b")
	s.Apply(Printable('a'))
	s.Apply(Space())
	if s.Cursor() != 2 {
		t.Fatalf("expected cursor 2, got %d", s.Cursor())
	}
	if s.Statuses()[1] != Correct {
		t.Fatalf("expected separator judged Correct, got %v", s.Statuses()[1])
	}
}

func TestIgnoredSpaceDoesNotStartSession(t *testing.T) {
	s := New("abc")
	s.Apply(Space())
	if s.State() != NotStarted {
		t.Fatalf("expected NotStarted after ignored space, got %v", s.State())
	}
}

func TestBackspaceWithinWord(t *testing.T) {
	s := New("cat")
	applyText(s, "cx")
	s.Apply(Backspace())
	if s.Cursor() != 1 {
		t.Fatalf("expected cursor 1, got %d", s.Cursor())
	}
	if s.Statuses()[1] != Pending {
		t.Fatalf("expected corrected index reset to Pending, got %v", s.Statuses()[1])
	}
}

func TestBackspaceStopsAtWordBoundary(t *testing.T) {
	s := New("ab cd")
	applyText(s, "ab ")
	s.Apply(Backspace())
	if s.Cursor() != 3 {
		t.Fatalf("expected backspace blocked at word start, cursor %d", s.Cursor())
	}
	s.Apply(Printable('c'))
	s.Apply(Backspace())
	if s.Cursor() != 3 {
		t.Fatalf("expected cursor back to word start, got %d", s.Cursor())
	}
	s.Apply(Backspace())
	if s.Cursor() != 3 {
		t.Fatalf("expected second backspace blocked, cursor %d", s.Cursor())
	}
}

func TestBackspaceAtStartIsNoop(t *testing.T) {
	s := New("abc")
	s.Apply(Backspace())
	if s.Cursor() != 0 || s.State() != NotStarted {
		t.Fatalf("expected untouched session, cursor %d state %v", s.Cursor(), s.State())
	}
}

func TestCancelFinishesPartialSession(t *testing.T) {
	s := New("abcdef")
	applyText(s, "abc")
	s.Apply(Cancel())
	if s.State() != Finished {
		t.Fatalf("expected Finished after cancel, got %v", s.State())
	}
	if s.Cursor() != 3 {
		t.Fatalf("expected cursor preserved, got %d", s.Cursor())
	}
}

func TestCancelBeforeStartIsNoop(t *testing.T) {
	s := New("abc")
	s.Apply(Cancel())
	if s.State() != NotStarted {
		t.Fatalf("expected NotStarted, got %v", s.State())
	}
}

func TestEventsAfterFinishAreIgnored(t *testing.T) {
	s := New("ab")
	applyText(s, "ab")
	if s.State() != Finished {
		t.Fatalf("expected Finished, got %v", s.State())
	}
	s.Apply(Printable('x'))
	s.Apply(Backspace())
	if s.Cursor() != 2 {
		t.Fatalf("expected cursor frozen at 2, got %d", s.Cursor())
	}
}

func TestResizeDoesNotMutate(t *testing.T) {
	s := New("abc")
	applyText(s, "a")
	s.Apply(Resize())
	if s.Cursor() != 1 || s.State() != Running {
		t.Fatalf("expected resize no-op, cursor %d state %v", s.Cursor(), s.State())
	}
}

func TestElapsedUsesRecordedTimes(t *testing.T) {
	s := New("ab")
	now := time.Unix(1000, 0)
	s.now = func() time.Time { return now }

	s.Apply(Printable('a'))
	now = now.Add(3 * time.Second)
	s.Apply(Printable('b'))
	if s.State() != Finished {
		t.Fatalf("expected Finished, got %v", s.State())
	}
	now = now.Add(time.Hour)
	if got := s.Elapsed(); got != 3*time.Second {
		t.Fatalf("expected elapsed 3s frozen at finish, got %v", got)
	}
	started, ok := s.StartedAt()
	if !ok || !started.Equal(time.Unix(1000, 0)) {
		t.Fatalf("unexpected start time %v ok=%v", started, ok)
	}
}
