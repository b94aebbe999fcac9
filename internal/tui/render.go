// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"koalatype/internal/layout"
	"koalatype/internal/session"
)

// renderPrompt paints the prompt at its computed layout positions, one
// styled cell per rune. Judged characters keep the target glyph so the
// prompt stays readable; a mistyped separator shows a dot instead of an
// invisible red space.
func renderPrompt(target []rune, statuses []session.CharStatus, cursor int, entries []layout.Entry, lineCount int) string {
	if len(target) == 0 || len(entries) != len(target) || lineCount <= 0 {
		return ""
	}
	words := findWords(target)
	currentWord := wordForCursor(words, cursor)

	lines := make([]strings.Builder, lineCount)
	cols := make([]int, lineCount)
	for i, r := range target {
		e := entries[i]
		if e.Row < 0 || e.Row >= lineCount {
			continue
		}
		for cols[e.Row] < e.Col {
			lines[e.Row].WriteByte(' ')
			cols[e.Row]++
		}

		displayed := r
		var style = pendingStyle
		switch statuses[i] {
		case session.Correct:
			style = correctStyle
		case session.Incorrect:
			style = incorrectStyle
			if r == ' ' {
				displayed = '•'
			}
		default:
			if r != ' ' && currentWord != nil && i >= currentWord.start && i < currentWord.end {
				style = currentWordStyle
			}
		}
		if i == cursor {
			style = style.Underline(true)
		}

		lines[e.Row].WriteString(style.Render(string(displayed)))
		w := runewidth.RuneWidth(displayed)
		if w < 1 {
			w = 1
		}
		cols[e.Row] += w
	}

	rendered := make([]string, lineCount)
	for i := range lines {
		rendered[i] = lines[i].String()
	}
	return strings.Join(rendered, "\n")
}

type wordRange struct {
	start int
	end   int
}

func findWords(target []rune) []wordRange {
	words := []wordRange{}
	start := -1
	for i, r := range target {
		if r == ' ' {
			if start != -1 {
				words = append(words, wordRange{start: start, end: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, wordRange{start: start, end: len(target)})
	}
	return words
}

func wordForCursor(words []wordRange, cursor int) *wordRange {
	if len(words) == 0 {
		return nil
	}
	if cursor < 0 {
		return &words[0]
	}
	for i, w := range words {
		if cursor < w.end {
			return &words[i]
		}
	}
	return &words[len(words)-1]
}
