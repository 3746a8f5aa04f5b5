package command

import (
	"github.com/dshills/blockstorm/internal/engine/model"
	"github.com/dshills/blockstorm/internal/engine/position"
	"github.com/dshills/blockstorm/internal/engine/transform"
)

// Backspace removes an empty paragraph holding the cursor and moves to the
// end of the previous block. It declines when the paragraph is the only
// child of its container or has no previous sibling.
func Backspace(s State) (State, bool) {
	return removeEmpty(s, position.Backward)
}

// Delete removes an empty paragraph holding the cursor and moves to the
// start of the next block.
func Delete(s State) (State, bool) {
	return removeEmpty(s, position.Forward)
}

func removeEmpty(s State, dir position.Direction) (State, bool) {
	r, ok := cursorAt(s)
	if !ok {
		return s, false
	}
	depth := r.Depth()
	para := r.Parent()
	if depth == 0 || para.Kind() != model.KindParagraph || para.ContentSize() != 0 {
		return s, false
	}
	if r.Node(depth-1).ChildCount() <= 1 {
		return s, false
	}

	adj, ok := position.FindAdjacentBlock(s.Doc, r.Pos, dir)
	if !ok {
		return s, false
	}
	from, to := r.Before(depth), r.After(depth)
	doc, err := transform.Delete(s.Doc, from, to)
	if err != nil {
		return s, false
	}

	if dir == position.Backward {
		sel, ok := endOf(doc, adj.Before, adj.Node)
		if !ok {
			return s, false
		}
		return State{Doc: doc, Selection: sel}, true
	}

	sel, ok := startOf(doc, adj.Before-(to-from), adj.Node)
	if !ok {
		return s, false
	}
	return State{Doc: doc, Selection: sel}, true
}
