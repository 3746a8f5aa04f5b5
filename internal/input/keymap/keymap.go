package keymap

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dshills/blockstorm/internal/input/key"
)

// Keymap priorities.
const (
	PriorityDefault = 0
	PriorityHigh    = 100
)

// Keymap holds key bindings.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Bindings are the key-to-action mappings.
	Bindings []Binding

	// Priority determines precedence when multiple keymaps match.
	// Higher priority wins. Default is 0.
	Priority int

	// Source indicates where this keymap was defined.
	// Examples: "default", "config"
	Source string
}

// NewKeymap creates a new keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		Bindings: make([]Binding, 0),
	}
}

// WithPriority sets the priority for this keymap.
func (k *Keymap) WithPriority(priority int) *Keymap {
	k.Priority = priority
	return k
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(keys, action string) *Keymap {
	k.Bindings = append(k.Bindings, NewBinding(keys, action))
	return k
}

// Validate checks that all bindings in the keymap are valid.
func (k *Keymap) Validate() error {
	_, err := k.parse()
	return err
}

func (k *Keymap) parse() ([]ParsedBinding, error) {
	parsed := make([]ParsedBinding, 0, len(k.Bindings))
	for i, b := range k.Bindings {
		if b.Keys == "" {
			return nil, fmt.Errorf("binding %d: empty keys", i)
		}
		if b.Action == "" {
			return nil, fmt.Errorf("binding %d (%s): empty action", i, b.Keys)
		}
		ev, err := key.Parse(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("binding %d (%s): %w", i, b.Keys, err)
		}
		parsed = append(parsed, ParsedBinding{Binding: b, Combo: ev.Combo()})
	}
	return parsed, nil
}

// Clone creates a copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	clone := *k
	clone.Bindings = append([]Binding(nil), k.Bindings...)
	return &clone
}

// Override returns a copy of the keymap with bindings replaced by the
// given key spec to action table. An empty action removes the binding for
// that key. Specs are compared after parsing, so "Ctrl+Enter" overrides
// "Ctrl-Enter".
func (k *Keymap) Override(overrides map[string]string) (*Keymap, error) {
	out := k.Clone()
	for _, spec := range slices.Sorted(maps.Keys(overrides)) {
		action := overrides[spec]
		ev, err := key.Parse(spec)
		if err != nil {
			return nil, fmt.Errorf("keymap override %q: %w", spec, err)
		}
		combo := ev.Combo()

		kept := out.Bindings[:0]
		for _, b := range out.Bindings {
			if be, err := key.Parse(b.Keys); err == nil && be.Combo() == combo {
				continue
			}
			kept = append(kept, b)
		}
		out.Bindings = kept
		if action != "" {
			out.Bindings = append(out.Bindings, NewBinding(spec, action))
		}
	}
	return out, nil
}
