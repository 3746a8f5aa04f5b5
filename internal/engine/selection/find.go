package selection

import (
	"github.com/dshills/blockstorm/internal/engine/model"
	"github.com/dshills/blockstorm/internal/engine/position"
)

// Near returns the valid selection closest to pos.
//
// A text position becomes a cursor. Otherwise an atomic block directly on
// the bias side of pos is selected. Failing that, the document is searched
// from pos in the bias direction and then in the opposite one. The result
// is false only when pos is out of range or the document has nothing
// selectable.
func Near(doc *model.Node, pos int, bias position.Direction) (Selection, bool) {
	r, err := position.Resolve(doc, pos)
	if err != nil {
		return nil, false
	}
	if r.InTextblock() {
		return Cursor(pos), true
	}
	if bias == position.Forward {
		if n := r.NodeAfter(); n != nil && n.IsAtom() {
			return NodeSelection{from: pos, node: n}, true
		}
	} else if n := r.NodeBefore(); n != nil && n.IsAtom() {
		return NodeSelection{from: pos - 1, node: n}, true
	}
	if sel, ok := findFrom(r, bias, false); ok {
		return sel, true
	}
	return findFrom(r, -bias, false)
}

// FindFrom searches from pos in direction dir for the first text position
// or, unless textOnly is set, selectable atomic block.
func FindFrom(doc *model.Node, pos int, dir position.Direction, textOnly bool) (Selection, bool) {
	r, err := position.Resolve(doc, pos)
	if err != nil {
		return nil, false
	}
	return findFrom(r, dir, textOnly)
}

// AtStart returns the first selectable place in doc.
func AtStart(doc *model.Node) (Selection, bool) {
	return FindFrom(doc, 0, position.Forward, false)
}

// AtEnd returns the last selectable place in doc.
func AtEnd(doc *model.Node) (Selection, bool) {
	return FindFrom(doc, doc.ContentSize(), position.Backward, false)
}

func findFrom(r *position.Resolved, dir position.Direction, textOnly bool) (Selection, bool) {
	if r.InTextblock() {
		return Cursor(r.Pos), true
	}
	if sel, ok := findIn(r.Parent(), r.Pos, r.Index(r.Depth()), dir, textOnly); ok {
		return sel, true
	}
	for d := r.Depth() - 1; d >= 0; d-- {
		var (
			sel Selection
			ok  bool
		)
		if dir == position.Backward {
			sel, ok = findIn(r.Node(d), r.Before(d+1), r.Index(d), dir, textOnly)
		} else {
			sel, ok = findIn(r.Node(d), r.After(d+1), r.Index(d)+1, dir, textOnly)
		}
		if ok {
			return sel, true
		}
	}
	return nil, false
}

// findIn walks the children of node starting at index, where pos is the
// address at that boundary, and descends into containers on the way.
func findIn(node *model.Node, pos, index int, dir position.Direction, textOnly bool) (Selection, bool) {
	if node.IsTextblock() {
		return Cursor(pos), true
	}
	step := int(dir)
	i := index
	if dir == position.Backward {
		i--
	}
	for ; i >= 0 && i < node.ChildCount(); i += step {
		child := node.Child(i)
		if child.IsAtom() {
			if !textOnly {
				if dir == position.Backward {
					return NodeSelection{from: pos - 1, node: child}, true
				}
				return NodeSelection{from: pos, node: child}, true
			}
		} else {
			inner := 0
			if dir == position.Backward {
				inner = child.ChildCount()
			}
			if sel, ok := findIn(child, pos+step, inner, dir, textOnly); ok {
				return sel, true
			}
		}
		pos += child.NodeSize() * step
	}
	return nil, false
}
