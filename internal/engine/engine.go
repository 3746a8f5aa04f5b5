package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/blockstorm/internal/engine/command"
	"github.com/dshills/blockstorm/internal/engine/model"
	"github.com/dshills/blockstorm/internal/engine/position"
	"github.com/dshills/blockstorm/internal/engine/selection"
)

// Re-export commonly used types for convenience.
type (
	// State is a document paired with a selection.
	State = command.State

	// Command transforms a state or declines.
	Command = command.Command

	// Selection is a text or node selection.
	Selection = selection.Selection

	// Node is a document tree node.
	Node = model.Node
)

// Engine is the main facade for the block editor engine.
// It holds the current document and selection and applies commands to
// them atomically.
//
// All operations are thread-safe and can be called from multiple goroutines.
type Engine struct {
	mu sync.RWMutex

	state State

	logger    *slog.Logger
	sessionID string
	readOnly  bool
	onChange  []func(State)

	// Initialization
	initDoc *model.Node
}

// New creates a new Engine with the given options.
// Without WithDocument the engine starts with one empty paragraph.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:    slog.Default(),
		sessionID: uuid.NewString(),
	}

	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("session", e.sessionID)

	doc := model.EmptyDoc()
	if e.initDoc != nil {
		if err := model.Validate(e.initDoc); err != nil {
			e.logger.Warn("initial document rejected", "error", err)
		} else {
			doc = e.initDoc
		}
	}
	e.state = initialState(doc)
	e.initDoc = nil

	return e
}

func initialState(doc *model.Node) State {
	sel, ok := selection.AtStart(doc)
	if !ok {
		sel = nil
	}
	return State{Doc: doc, Selection: sel}
}

// ============================================================================
// Read Operations
// ============================================================================

// State returns the current document and selection.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Doc returns the current document.
func (e *Engine) Doc() *model.Node {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Doc
}

// Selection returns the current selection.
func (e *Engine) Selection() Selection {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Selection
}

// BlockCount returns the number of top-level blocks.
func (e *Engine) BlockCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Doc.BlockCount()
}

// SessionID returns the identifier attached to this engine's log records.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// IsReadOnly reports whether the engine rejects document changes.
func (e *Engine) IsReadOnly() bool {
	return e.readOnly
}

// ============================================================================
// State Replacement
// ============================================================================

// Load replaces the document and places the selection at its start.
func (e *Engine) Load(doc *model.Node) error {
	if err := model.Validate(doc); err != nil {
		return fmt.Errorf("load: %w: %w", ErrInvalidDocument, err)
	}

	e.mu.Lock()
	e.state = initialState(doc)
	st := e.state
	e.mu.Unlock()

	e.logger.Debug("document loaded", "blocks", doc.BlockCount(), "size", doc.ContentSize())
	e.notify(st)
	return nil
}

// SetState replaces the document and selection. A selection that is not
// valid for the document is snapped to the nearest valid one, preferring
// what lies before its head; a cursor just after an image therefore
// becomes a selection of that image.
func (e *Engine) SetState(s State) error {
	if err := model.Validate(s.Doc); err != nil {
		return fmt.Errorf("set state: %w: %w", ErrInvalidDocument, err)
	}
	sel, err := settle(s.Doc, s.Selection)
	if err != nil {
		return fmt.Errorf("set state: %w", err)
	}

	st := State{Doc: s.Doc, Selection: sel}
	e.mu.Lock()
	e.state = st
	e.mu.Unlock()

	e.notify(st)
	return nil
}

// Select replaces the selection, snapping it like SetState.
func (e *Engine) Select(sel Selection) error {
	return e.SetState(State{Doc: e.Doc(), Selection: sel})
}

func settle(doc *model.Node, sel Selection) (Selection, error) {
	if sel == nil {
		if s, ok := selection.AtStart(doc); ok {
			return s, nil
		}
		return nil, ErrInvalidSelection
	}
	err := selection.Validate(doc, sel)
	if err == nil {
		return sel, nil
	}
	if errors.Is(err, selection.ErrNoSelection) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSelection, err)
	}
	if s, ok := selection.Near(doc, sel.Head(), position.Backward); ok {
		return s, nil
	}
	return nil, fmt.Errorf("%s: %w", sel, ErrInvalidSelection)
}

// ============================================================================
// Command Execution
// ============================================================================

// Exec runs cmd against the current state.
// It returns true if the command applied and its result was committed.
func (e *Engine) Exec(cmd Command) bool {
	return e.run("exec", cmd)
}

// ArrowUp moves into the previous block at a block boundary.
func (e *Engine) ArrowUp() bool { return e.run("arrowUp", command.ArrowUp) }

// ArrowDown moves into the next block at a block boundary.
func (e *Engine) ArrowDown() bool { return e.run("arrowDown", command.ArrowDown) }

// Enter continues after an atomic block.
func (e *Engine) Enter() bool { return e.run("enter", command.Enter) }

// SplitBlock inserts an empty paragraph after the current block.
func (e *Engine) SplitBlock() bool { return e.run("splitBlock", command.SplitBlock) }

// Backspace removes an empty paragraph, moving to the previous block.
func (e *Engine) Backspace() bool { return e.run("backspace", command.Backspace) }

// Delete removes an empty paragraph, moving to the next block.
func (e *Engine) Delete() bool { return e.run("delete", command.Delete) }

// Escape leaves a node selection or collapses a ranged one.
func (e *Engine) Escape() bool { return e.run("escape", command.Escape) }

// NavigateToNextBlock moves to the start of the next block.
func (e *Engine) NavigateToNextBlock() bool {
	return e.run("navigateToNextBlock", command.NextBlock)
}

// NavigateToPreviousBlock moves to the end of the previous block.
func (e *Engine) NavigateToPreviousBlock() bool {
	return e.run("navigateToPreviousBlock", command.PreviousBlock)
}

// CreateBlockAfterCurrent inserts an empty paragraph after the current block.
func (e *Engine) CreateBlockAfterCurrent() bool {
	return e.run("createBlockAfterCurrent", command.SplitBlock)
}

func (e *Engine) run(name string, cmd Command) bool {
	e.mu.Lock()
	prev := e.state
	next, ok := e.apply(name, cmd, prev)
	if ok {
		e.state = next
	}
	e.mu.Unlock()

	if ok {
		e.notify(next)
	}
	return ok
}

// apply runs cmd and checks the result. The caller holds the lock.
func (e *Engine) apply(name string, cmd Command, prev State) (next State, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("command panicked, rolled back", "command", name, "panic", r)
			next, ok = prev, false
		}
	}()

	next, ok = cmd(prev)
	if !ok {
		e.logger.Debug("command declined", "command", name, "selection", selString(prev.Selection))
		return prev, false
	}
	if e.readOnly && next.Doc != prev.Doc {
		e.logger.Debug("command declined, read-only", "command", name)
		return prev, false
	}
	if err := checkState(next); err != nil {
		e.logger.Error("command rolled back", "command", name, "error", err)
		return prev, false
	}

	e.logger.Debug("command applied", "command", name,
		"selection", selString(next.Selection), "blocks", next.Doc.BlockCount())
	return next, true
}

// checkState verifies the invariants every committed state satisfies.
func checkState(s State) error {
	if err := model.Validate(s.Doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if err := selection.Validate(s.Doc, s.Selection); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSelection, err)
	}
	return nil
}

func (e *Engine) notify(s State) {
	for _, fn := range e.onChange {
		fn(s)
	}
}

func selString(sel Selection) string {
	if sel == nil {
		return "none"
	}
	return sel.String()
}
