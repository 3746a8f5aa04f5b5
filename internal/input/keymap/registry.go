package keymap

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dshills/blockstorm/internal/input/key"
)

// ErrNilKeymap is returned when registering a nil keymap.
var ErrNilKeymap = errors.New("cannot register nil keymap")

// Registry manages all keymaps and provides binding lookup.
type Registry struct {
	mu sync.RWMutex

	// keymaps holds all registered keymaps by name.
	keymaps map[string]*registered

	// index maps a key combination to its candidate bindings.
	index map[key.Combo][]Match

	seq int
}

type registered struct {
	keymap   *Keymap
	bindings []ParsedBinding
	seq      int
}

// NewRegistry creates a new keymap registry.
func NewRegistry() *Registry {
	return &Registry{
		keymaps: make(map[string]*registered),
		index:   make(map[key.Combo][]Match),
	}
}

// Register adds a keymap to the registry.
// If a keymap with the same name already exists, it is replaced.
func (r *Registry) Register(km *Keymap) error {
	if km == nil {
		return ErrNilKeymap
	}
	parsed, err := km.parse()
	if err != nil {
		return fmt.Errorf("parsing keymap %q: %w", km.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.unregisterLocked(km.Name)
	r.seq++
	r.keymaps[km.Name] = &registered{keymap: km, bindings: parsed, seq: r.seq}
	r.rebuildLocked()
	return nil
}

// Unregister removes a keymap from the registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.unregisterLocked(name) {
		r.rebuildLocked()
	}
}

func (r *Registry) unregisterLocked(name string) bool {
	if _, ok := r.keymaps[name]; !ok {
		return false
	}
	delete(r.keymaps, name)
	return true
}

// rebuildLocked recomputes the lookup index. Caller must hold the write lock.
func (r *Registry) rebuildLocked() {
	r.index = make(map[key.Combo][]Match)
	for _, reg := range r.keymaps {
		for i := range reg.bindings {
			pb := &reg.bindings[i]
			r.index[pb.Combo] = append(r.index[pb.Combo], Match{
				ParsedBinding: pb,
				Keymap:        reg.keymap,
				Score:         reg.keymap.Priority + pb.Priority,
				seq:           reg.seq,
			})
		}
	}
	for combo, matches := range r.index {
		slices.SortStableFunc(matches, func(a, b Match) int {
			switch {
			case a.less(b):
				return -1
			case b.less(a):
				return 1
			}
			return 0
		})
		r.index[combo] = matches
	}
}

// Lookup returns the winning binding for a key event, or nil.
func (r *Registry) Lookup(ev key.Event) *Match {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := r.index[ev.Combo()]
	if len(matches) == 0 {
		return nil
	}
	m := matches[0]
	return &m
}

// LookupAll returns every binding for a key event, winner first.
func (r *Registry) LookupAll(ev key.Event) []Match {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.index[ev.Combo()])
}

// Get returns a registered keymap by name.
func (r *Registry) Get(name string) (*Keymap, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.keymaps[name]
	if !ok {
		return nil, false
	}
	return reg.keymap, true
}

// Names returns the names of all registered keymaps, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.keymaps))
	for name := range r.keymaps {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
