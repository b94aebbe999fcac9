// Package layout maps prompt characters to wrapped terminal positions.
package layout

import "github.com/mattn/go-runewidth"

// Entry is the screen position assigned to one rune of the prompt.
type Entry struct {
	Row int
	Col int
}

// Layout computes greedy word-wrapped positions for every rune of text
// at the given width. It is a pure function: identical (text, width)
// always yields identical output. Words are never split across rows
// unless a single word is wider than the whole line, in which case it
// wraps character by character. Separator spaces occupy slots too, so
// the result maps 1:1 onto the runes of text.
//
// The returned line count is the number of rows used (0 for empty text).
func Layout(text string, width int) ([]Entry, int) {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil, 0
	}
	if width < 1 {
		width = 1
	}

	entries := make([]Entry, 0, len(runes))
	row, col := 0, 0
	i := 0
	for i < len(runes) {
		if runes[i] == ' ' {
			if col+1 > width && col > 0 {
				row++
				col = 0
			}
			entries = append(entries, Entry{Row: row, Col: col})
			col++
			i++
			continue
		}

		j := i
		wordWidth := 0
		for j < len(runes) && runes[j] != ' ' {
			wordWidth += cellWidth(runes[j])
			j++
		}
		if col > 0 && col+wordWidth > width {
			row++
			col = 0
		}
		for _, r := range runes[i:j] {
			w := cellWidth(r)
			if col > 0 && col+w > width {
				row++
				col = 0
			}
			entries = append(entries, Entry{Row: row, Col: col})
			col += w
		}
		i = j
	}
	return entries, row + 1
}

// cellWidth reports the terminal cells a rune occupies. Zero-width
// runes still need a slot so the mapping stays total.
func cellWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		w = 1
	}
	return w
}
