// Package generator builds typing prompts from word packs.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"koalatype/internal/pack"
)

// ErrInvalidConfig is returned for unusable generation parameters.
var ErrInvalidConfig = errors.New("invalid prompt config")

// Prompt is the fixed target text for one typing test.
type Prompt struct {
	Text      string
	WordCount int
	Seed      int64
	Seeded    bool
}

// Generate samples count words uniformly with replacement from the pack
// and joins them with single spaces. A non-nil seed makes the output
// reproducible for the same (pack, count, seed).
func Generate(p pack.Pack, count int, seed *int64) (Prompt, error) {
	if count <= 0 {
		return Prompt{}, fmt.Errorf("%w: word count must be > 0", ErrInvalidConfig)
	}
	if len(p.Words) == 0 {
		return Prompt{}, fmt.Errorf("%w: pack %q has no words", ErrInvalidConfig, p.Name)
	}

	prompt := Prompt{WordCount: count}
	if seed != nil {
		prompt.Seed = *seed
		prompt.Seeded = true
	} else {
		prompt.Seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(prompt.Seed))

	words := make([]string, count)
	for i := range words {
		words[i] = p.Words[rnd.Intn(len(p.Words))]
	}
	prompt.Text = strings.Join(words, " ")
	return prompt, nil
}
