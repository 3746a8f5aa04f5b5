// Package handler provides the handler interface and result types for
// action dispatch.
package handler

import (
	"strings"

	"github.com/dshills/blockstorm/internal/engine"
	"github.com/dshills/blockstorm/internal/input/key"
)

// Action is a named request produced by a key binding.
type Action struct {
	// Name is the action identifier, e.g. "block.enter".
	Name string

	// Event is the key event that triggered the action. It is the zero
	// Event for programmatic dispatch.
	Event key.Event
}

// Namespace returns the prefix before the first dot, or "" if none.
func (a Action) Namespace() string {
	ns, _, ok := strings.Cut(a.Name, ".")
	if !ok {
		return ""
	}
	return ns
}

// Handler processes a specific action or set of actions.
type Handler interface {
	// Handle runs the action against the engine and returns a result.
	// A StatusNoOp result passes the action on to the next handler.
	Handle(action Action, eng *engine.Engine) Result

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool

	// Priority returns the handler priority (higher = checked first).
	Priority() int
}

// HandlerFunc is a function adapter for Handler interface.
type HandlerFunc struct {
	fn   func(action Action, eng *engine.Engine) Result
	prio int
}

// NewHandlerFunc creates a HandlerFunc from a function.
func NewHandlerFunc(fn func(action Action, eng *engine.Engine) Result) *HandlerFunc {
	return &HandlerFunc{fn: fn, prio: 0}
}

// NewHandlerFuncWithPriority creates a HandlerFunc with a specified priority.
func NewHandlerFuncWithPriority(fn func(action Action, eng *engine.Engine) Result, priority int) *HandlerFunc {
	return &HandlerFunc{fn: fn, prio: priority}
}

// Handle implements Handler.Handle.
func (f *HandlerFunc) Handle(action Action, eng *engine.Engine) Result {
	if f.fn == nil {
		return Errorf("handler function is nil")
	}
	return f.fn(action, eng)
}

// CanHandle implements Handler.CanHandle.
// HandlerFunc always returns true; caller must ensure correct routing.
func (f *HandlerFunc) CanHandle(string) bool {
	return true
}

// Priority implements Handler.Priority.
func (f *HandlerFunc) Priority() int {
	return f.prio
}

// SimpleHandler wraps a function with an explicit action name.
type SimpleHandler struct {
	// ActionName is the name of the action this handler processes.
	ActionName string

	// Fn is the handler function.
	Fn func(action Action, eng *engine.Engine) Result

	// Prio is the handler priority.
	Prio int
}

// Handle implements Handler.Handle.
func (h *SimpleHandler) Handle(action Action, eng *engine.Engine) Result {
	if h.Fn == nil {
		return Errorf("handler function is nil")
	}
	return h.Fn(action, eng)
}

// CanHandle implements Handler.CanHandle.
func (h *SimpleHandler) CanHandle(actionName string) bool {
	return actionName == h.ActionName
}

// Priority implements Handler.Priority.
func (h *SimpleHandler) Priority() int {
	return h.Prio
}

// Command adapts an engine method such as (*engine.Engine).Enter to a
// handler function.
func Command(run func(*engine.Engine) bool) func(Action, *engine.Engine) Result {
	return func(_ Action, eng *engine.Engine) Result {
		return FromBool(run(eng))
	}
}
