package command

import (
	"github.com/dshills/blockstorm/internal/engine/position"
	"github.com/dshills/blockstorm/internal/engine/selection"
)

// Escape leaves a selection.
//
// A selected atomic block gives way to a cursor at the start of the next
// block, or to the nearest text position after the block when the next
// block has none. A ranged text selection collapses to its end. A plain
// cursor has nothing to escape from.
func Escape(s State) (State, bool) {
	switch sel := s.Selection.(type) {
	case selection.NodeSelection:
		if adj, ok := position.FindAdjacentBlock(s.Doc, sel.From(), position.Forward); ok && !adj.Node.IsAtom() {
			if next, ok := selection.FindFrom(s.Doc, adj.Pos, position.Forward, true); ok {
				return State{Doc: s.Doc, Selection: next}, true
			}
		}
		next, ok := selection.FindFrom(s.Doc, sel.To(), position.Forward, true)
		if !ok {
			next, ok = selection.FindFrom(s.Doc, sel.To(), position.Backward, true)
		}
		if !ok {
			return s, false
		}
		return State{Doc: s.Doc, Selection: next}, true
	case selection.TextSelection:
		if sel.Empty() {
			return s, false
		}
		return State{Doc: s.Doc, Selection: sel.CollapseToEnd()}, true
	}
	return s, false
}
