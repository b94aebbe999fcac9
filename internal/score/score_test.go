package score

import (
	"errors"
	"math"
	"testing"
	"time"

	"koalatype/internal/session"
)

func TestComputeAccuracyAndWPM(t *testing.T) {
	res := Compute(6, 7, time.Minute)
	if math.Abs(res.Accuracy-85.71) > 0.01 {
		t.Fatalf("expected accuracy 85.71, got %.2f", res.Accuracy)
	}
	if math.Abs(res.WPM-1.4) > 0.001 {
		t.Fatalf("expected 1.4 WPM, got %.3f", res.WPM)
	}
	if res.CorrectChars != 6 || res.TotalChars != 7 {
		t.Fatalf("unexpected char counts: %+v", res)
	}
}

func TestComputeZeroTyped(t *testing.T) {
	res := Compute(0, 0, 5*time.Second)
	if res.Accuracy != 100.0 {
		t.Fatalf("expected accuracy 100 for empty session, got %.2f", res.Accuracy)
	}
	if res.WPM != 0 {
		t.Fatalf("expected 0 WPM for empty session, got %.2f", res.WPM)
	}
}

func TestComputeFloorsElapsed(t *testing.T) {
	res := Compute(5, 5, 0)
	if res.Elapsed != time.Millisecond {
		t.Fatalf("expected elapsed floored to 1ms, got %v", res.Elapsed)
	}
	if math.IsInf(res.WPM, 0) || math.IsNaN(res.WPM) || res.WPM < 0 {
		t.Fatalf("expected finite non-negative WPM, got %v", res.WPM)
	}
}

func TestComputeAccuracyRange(t *testing.T) {
	tests := []struct {
		correct int
		total   int
	}{
		{0, 10},
		{5, 10},
		{10, 10},
		{0, 0},
	}
	for _, tt := range tests {
		res := Compute(tt.correct, tt.total, time.Second)
		if res.Accuracy < 0 || res.Accuracy > 100 {
			t.Fatalf("accuracy out of range for %d/%d: %.2f", tt.correct, tt.total, res.Accuracy)
		}
	}
}

func TestFromSessionNotStarted(t *testing.T) {
	s := session.New("abc")
	if _, err := FromSession(s); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("expected ErrNotStarted, got %v", err)
	}
}

func TestFromSessionScoresJudgedCharacters(t *testing.T) {
	s := session.New("cat dog")
	for _, r := range "cat dig" {
		s.Apply(session.Printable(r))
	}
	res, err := FromSession(s)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if res.CorrectChars != 6 || res.TotalChars != 7 {
		t.Fatalf("expected 6/7 correct, got %d/%d", res.CorrectChars, res.TotalChars)
	}
	if math.Abs(res.Accuracy-85.71) > 0.01 {
		t.Fatalf("expected accuracy 85.71, got %.2f", res.Accuracy)
	}
}

func TestFromSessionCancelledScoresTypedPrefix(t *testing.T) {
	s := session.New("abcdef")
	s.Apply(session.Printable('a'))
	s.Apply(session.Cancel())
	res, err := FromSession(s)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if res.TotalChars != 1 || res.CorrectChars != 1 {
		t.Fatalf("expected 1/1 judged, got %d/%d", res.CorrectChars, res.TotalChars)
	}
	if res.Accuracy != 100.0 {
		t.Fatalf("expected accuracy 100, got %.2f", res.Accuracy)
	}
}
