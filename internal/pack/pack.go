// Package pack provides named word packs for prompt generation.
package pack

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPack is returned when a requested pack is not registered.
var ErrUnknownPack = errors.New("unknown word pack")

// Pack is an immutable named collection of candidate words.
type Pack struct {
	Name        string
	Description string
	Words       []string
}

// Registry holds the available word packs by name.
type Registry struct {
	packs map[string]Pack
}

// NewRegistry returns a registry preloaded with the builtin packs.
func NewRegistry() *Registry {
	r := &Registry{packs: map[string]Pack{}}
	for _, p := range builtinPacks() {
		r.packs[p.Name] = p
	}
	return r
}

// Add registers a pack, replacing any existing pack with the same name.
func (r *Registry) Add(p Pack) {
	r.packs[p.Name] = p
}

// Get returns the pack with the given name.
func (r *Registry) Get(name string) (Pack, error) {
	p, ok := r.packs[name]
	if !ok {
		return Pack{}, fmt.Errorf("%w: %q", ErrUnknownPack, name)
	}
	return p, nil
}

// List returns all registered packs sorted by name.
func (r *Registry) List() []Pack {
	out := make([]Pack, 0, len(r.packs))
	for _, p := range r.packs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
