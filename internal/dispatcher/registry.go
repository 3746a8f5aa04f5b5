package dispatcher

import (
	"sort"
	"strings"
	"sync"

	"github.com/dshills/blockstorm/internal/dispatcher/handler"
)

// wildcard is the suffix that registers a handler for a whole namespace,
// as in "block.*".
const wildcard = ".*"

// Registry maps action names to handlers. A name ending in ".*" registers
// the handler for every action in that namespace.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string][]entry // action name or "ns.*" -> handlers
	seq      uint64
}

type entry struct {
	h   handler.Handler
	seq uint64
}

// NewRegistry creates a new handler registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string][]entry),
	}
}

// Register adds a handler for an action name or namespace pattern.
func (r *Registry) Register(actionName string, h handler.Handler) {
	if h == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.handlers[actionName] = append(r.handlers[actionName], entry{h: h, seq: r.seq})
}

// Unregister removes all handlers for an action name or pattern.
func (r *Registry) Unregister(actionName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, actionName)
}

// UnregisterHandler removes a specific handler for an action name.
func (r *Registry) UnregisterHandler(actionName string, h handler.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.handlers[actionName]
	for i, e := range entries {
		if e.h == h {
			r.handlers[actionName] = append(entries[:i:i], entries[i+1:]...)
			break
		}
	}
	if len(r.handlers[actionName]) == 0 {
		delete(r.handlers, actionName)
	}
}

// Get returns the highest priority handler for an action, or nil.
func (r *Registry) Get(actionName string) handler.Handler {
	all := r.GetAll(actionName)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// GetAll returns the handlers willing to take an action, highest priority
// first. Exact and namespace registrations are merged; among equal
// priorities the earlier registration comes first.
func (r *Registry) GetAll(actionName string) []handler.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []entry
	entries = append(entries, r.handlers[actionName]...)
	if ns, _, ok := strings.Cut(actionName, "."); ok {
		entries = append(entries, r.handlers[ns+wildcard]...)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		pi, pj := entries[i].h.Priority(), entries[j].h.Priority()
		if pi != pj {
			return pi > pj
		}
		return entries[i].seq < entries[j].seq
	})

	result := make([]handler.Handler, 0, len(entries))
	for _, e := range entries {
		if e.h.CanHandle(actionName) {
			result = append(result, e.h)
		}
	}
	return result
}

// Has returns true if a handler would take the action.
func (r *Registry) Has(actionName string) bool {
	return len(r.GetAll(actionName)) > 0
}

// List returns all registered names and patterns, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered names and patterns.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// Clear removes all registered handlers.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = make(map[string][]entry)
}
