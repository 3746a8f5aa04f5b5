// Package navigation moves the selection between blocks.
//
// Arrow keys are only taken over when the cursor sits on the edge of its
// block in the direction of travel, or when an atomic block is selected.
// Everywhere else the host's native caret movement applies and Arrow
// declines.
package navigation

import (
	"github.com/dshills/blockstorm/internal/engine/model"
	"github.com/dshills/blockstorm/internal/engine/position"
	"github.com/dshills/blockstorm/internal/engine/selection"
)

// Edge describes where a selection sits within its block.
type Edge int

const (
	// Invalid means the selection does not resolve in the document.
	Invalid Edge = iota
	// MidBlock means the cursor has text on both sides.
	MidBlock
	// AtStart means the cursor is at the start of a non-empty block.
	AtStart
	// AtEnd means the cursor is at the end of a non-empty block.
	AtEnd
	// AtBoth means the cursor is in an empty block.
	AtBoth
	// OnNode means an atomic block is selected.
	OnNode
	// Ranged means a non-empty text selection.
	Ranged
)

var edgeNames = [...]string{"Invalid", "MidBlock", "AtStart", "AtEnd", "AtBoth", "OnNode", "Ranged"}

// String returns the edge name.
func (e Edge) String() string {
	if e < 0 || int(e) >= len(edgeNames) {
		return "Edge(?)"
	}
	return edgeNames[e]
}

// AllowsExit reports whether a cursor on this edge may leave its block in dir.
func (e Edge) AllowsExit(dir position.Direction) bool {
	switch e {
	case AtBoth, OnNode:
		return true
	case AtStart:
		return dir == position.Backward
	case AtEnd:
		return dir == position.Forward
	}
	return false
}

// Boundary reports where sel sits within its block.
func Boundary(doc *model.Node, sel selection.Selection) Edge {
	switch s := sel.(type) {
	case selection.NodeSelection:
		return OnNode
	case selection.TextSelection:
		if !s.Empty() {
			return Ranged
		}
		r, err := position.Resolve(doc, s.Head())
		if err != nil || !r.InTextblock() {
			return Invalid
		}
		size := r.Parent().ContentSize()
		switch {
		case size == 0:
			return AtBoth
		case r.ParentOffset == 0:
			return AtStart
		case r.ParentOffset == size:
			return AtEnd
		}
		return MidBlock
	}
	return Invalid
}

// Arrow moves sel into the neighbouring block in dir when the selection is
// on the matching edge of its block. Moving forward lands at the start of
// the next block and moving backward at the end of the previous one; an
// atomic neighbour becomes a node selection.
func Arrow(doc *model.Node, sel selection.Selection, dir position.Direction) (selection.Selection, bool) {
	if !Boundary(doc, sel).AllowsExit(dir) {
		return nil, false
	}
	return into(doc, sel, dir)
}

// Adjacent moves sel into the neighbouring block in dir regardless of where
// the selection sits within its own block.
func Adjacent(doc *model.Node, sel selection.Selection, dir position.Direction) (selection.Selection, bool) {
	if Boundary(doc, sel) == Invalid {
		return nil, false
	}
	return into(doc, sel, dir)
}

func into(doc *model.Node, sel selection.Selection, dir position.Direction) (selection.Selection, bool) {
	origin := sel.Head()
	if ns, ok := sel.(selection.NodeSelection); ok {
		origin = ns.From()
	}

	adj, ok := position.FindAdjacentBlock(doc, origin, dir)
	if !ok {
		return nil, false
	}
	if adj.Node.IsAtom() {
		ns, err := selection.NewNode(doc, adj.Before)
		if err != nil {
			return nil, false
		}
		return ns, true
	}
	if dir == position.Forward {
		return selection.Near(doc, adj.Pos, position.Forward)
	}
	return selection.Near(doc, adj.ContentEnd(), position.Backward)
}
