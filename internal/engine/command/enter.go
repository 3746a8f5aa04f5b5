package command

import (
	"github.com/dshills/blockstorm/internal/engine/model"
	"github.com/dshills/blockstorm/internal/engine/position"
	"github.com/dshills/blockstorm/internal/engine/selection"
	"github.com/dshills/blockstorm/internal/engine/transform"
)

// Enter continues editing after an atomic block.
//
// It applies when an atomic block is selected or sits directly before the
// cursor. If the block is already followed by an empty text block the
// cursor moves there and the tree is left alone, so repeating Enter never
// stacks empty paragraphs. Otherwise an empty paragraph is inserted after
// the block. Every other situation, including a cursor in an empty trailing
// paragraph, is left to the host.
func Enter(s State) (State, bool) {
	atomEnd, ok := atomicOrigin(s)
	if !ok {
		return s, false
	}

	r, err := position.Resolve(s.Doc, atomEnd)
	if err != nil {
		return s, false
	}
	if next := r.NodeAfter(); next != nil && next.IsTextblock() && next.ContentSize() == 0 {
		return State{Doc: s.Doc, Selection: selection.Cursor(atomEnd + 1)}, true
	}

	doc, err := transform.Insert(s.Doc, atomEnd, model.Paragraph())
	if err != nil {
		return s, false
	}
	return State{Doc: doc, Selection: selection.Cursor(atomEnd + 1)}, true
}

// atomicOrigin returns the address just after the atomic block that is
// selected or directly precedes a collapsed cursor.
func atomicOrigin(s State) (int, bool) {
	switch sel := s.Selection.(type) {
	case selection.NodeSelection:
		return sel.To(), true
	case selection.TextSelection:
		r, ok := cursorAt(s)
		if !ok {
			return 0, false
		}
		if before := r.NodeBefore(); before != nil && before.IsAtom() {
			return sel.Head(), true
		}
	}
	return 0, false
}

// SplitBlock inserts an empty paragraph after the current block and moves
// the cursor into it. The current block is the text block holding the
// selection head or the selected atomic block.
func SplitBlock(s State) (State, bool) {
	after, ok := currentBlockEnd(s)
	if !ok {
		return s, false
	}
	doc, err := transform.Insert(s.Doc, after, model.Paragraph())
	if err != nil {
		return s, false
	}
	return State{Doc: doc, Selection: selection.Cursor(after + 1)}, true
}

func currentBlockEnd(s State) (int, bool) {
	if end, ok := atomicOrigin(s); ok {
		return end, true
	}
	if s.Selection == nil {
		return 0, false
	}
	r, err := position.Resolve(s.Doc, s.Selection.Head())
	if err != nil || !r.InTextblock() {
		return 0, false
	}
	return r.After(r.Depth()), true
}
