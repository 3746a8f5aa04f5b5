// Package command implements the block editing commands bound to keys.
//
// A Command receives the current document and selection and either returns
// a replacement pair and true, or declines by returning false. A declining
// command has no effect; the caller keeps its state and lets the next
// handler or the host's default behaviour run. Commands never return errors
// for expected situations such as the document edge or the last remaining
// block.
package command

import (
	"github.com/dshills/blockstorm/internal/engine/model"
	"github.com/dshills/blockstorm/internal/engine/position"
	"github.com/dshills/blockstorm/internal/engine/selection"
)

// State is a document paired with a selection valid for it.
type State struct {
	Doc       *model.Node
	Selection selection.Selection
}

// Command transforms a state. The bool reports whether the command applied.
type Command func(State) (State, bool)

// Chain returns a command that runs cmds in order until one applies.
func Chain(cmds ...Command) Command {
	return func(s State) (State, bool) {
		for _, cmd := range cmds {
			if next, ok := cmd(s); ok {
				return next, true
			}
		}
		return s, false
	}
}

// cursorAt resolves a collapsed text selection.
func cursorAt(s State) (*position.Resolved, bool) {
	sel, ok := s.Selection.(selection.TextSelection)
	if !ok || !sel.Empty() {
		return nil, false
	}
	r, err := position.Resolve(s.Doc, sel.Head())
	if err != nil {
		return nil, false
	}
	return r, true
}

// startOf returns the selection at the start of a block: a node selection
// for an atomic block, otherwise the first place inside it.
func startOf(doc *model.Node, before int, block *model.Node) (selection.Selection, bool) {
	if block.IsAtom() {
		ns, err := selection.NewNode(doc, before)
		return ns, err == nil
	}
	return selection.Near(doc, before+1, position.Forward)
}

// endOf returns the selection at the end of a block.
func endOf(doc *model.Node, before int, block *model.Node) (selection.Selection, bool) {
	if block.IsAtom() {
		ns, err := selection.NewNode(doc, before)
		return ns, err == nil
	}
	return selection.Near(doc, before+block.NodeSize()-1, position.Backward)
}
