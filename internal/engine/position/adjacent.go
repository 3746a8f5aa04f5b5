package position

import "github.com/dshills/blockstorm/internal/engine/model"

// Direction is the direction of travel through the document.
type Direction int

const (
	// Backward moves toward the start of the document.
	Backward Direction = -1
	// Forward moves toward the end of the document.
	Forward Direction = 1
)

// String returns "backward" or "forward".
func (d Direction) String() string {
	if d < 0 {
		return "backward"
	}
	return "forward"
}

// Adjacent is a sibling block found by FindAdjacentBlock.
type Adjacent struct {
	// Node is the sibling block.
	Node *model.Node
	// Before is the address just before the block.
	Before int
	// Pos is the text-entry address: just inside a container's opening
	// boundary, or just after an atomic block.
	Pos int
}

// End returns the address just after the block.
func (a Adjacent) End() int {
	return a.Before + a.Node.NodeSize()
}

// ContentEnd returns the address at the end of the block's content, or the
// address after the block when it is atomic.
func (a Adjacent) ContentEnd() int {
	if a.Node.IsAtom() {
		return a.End()
	}
	return a.End() - 1
}

// FindAdjacentBlock finds the block next to the one pos belongs to.
//
// The origin is the atomic block directly after pos if there is one,
// otherwise the text-bearing block containing pos. When pos sits between
// blocks the nodes on either side of it are the candidates. Only siblings
// at the same depth are considered, so the last block inside a quote has no
// forward neighbour.
func FindAdjacentBlock(doc *model.Node, pos int, dir Direction) (Adjacent, bool) {
	r, err := Resolve(doc, pos)
	if err != nil {
		return Adjacent{}, false
	}

	depth := r.Depth()
	var target int
	switch after := r.NodeAfter(); {
	case after != nil && after.IsAtom():
		target = r.Index(depth) + int(dir)
	case r.InTextblock():
		if depth == 0 {
			return Adjacent{}, false
		}
		depth--
		target = r.Index(depth) + int(dir)
	case dir == Forward:
		target = r.Index(depth)
	default:
		target = r.Index(depth) - 1
	}

	container := r.Node(depth)
	if target < 0 || target >= container.ChildCount() {
		return Adjacent{}, false
	}
	before := r.PosAtIndex(target, depth)
	return Adjacent{Node: container.Child(target), Before: before, Pos: before + 1}, true
}
