package position

import (
	"fmt"

	"github.com/dshills/blockstorm/internal/engine/model"
)

// step is one level of a resolved path: the node entered, the index of the
// child the address points at or into, and the absolute address of that
// child's start.
type step struct {
	node   *model.Node
	index  int
	offset int
}

// Resolved is an address resolved against a document.
//
// Depth 0 is the document itself; Depth() is the innermost node that
// directly contains the address.
type Resolved struct {
	// Pos is the resolved address.
	Pos int
	// ParentOffset is the address relative to the start of Parent's content.
	ParentOffset int

	path []step
}

// Resolve walks doc to find the path for pos.
func Resolve(doc *model.Node, pos int) (*Resolved, error) {
	if pos < 0 || pos > doc.ContentSize() {
		return nil, fmt.Errorf("resolve %d (size %d): %w", pos, doc.ContentSize(), ErrOutOfRange)
	}

	var path []step
	start, parentOffset := 0, pos
	for node := doc; ; {
		index, offset := findIndex(node, parentOffset)
		rem := parentOffset - offset
		path = append(path, step{node: node, index: index, offset: start + offset})
		if rem == 0 {
			break
		}
		child := node.Child(index)
		if child.IsText() {
			break
		}
		if child.IsAtom() {
			return nil, fmt.Errorf("resolve %d: %w", pos, ErrInsideAtom)
		}
		node = child
		parentOffset = rem - 1
		start += offset + 1
	}

	return &Resolved{Pos: pos, ParentOffset: parentOffset, path: path}, nil
}

// findIndex returns the index of the child containing or starting at pos
// and that child's offset within n's content.
func findIndex(n *model.Node, pos int) (index, offset int) {
	if pos == 0 {
		return 0, 0
	}
	if pos == n.ContentSize() {
		return n.ChildCount(), pos
	}
	cur := 0
	for i := 0; i < n.ChildCount(); i++ {
		end := cur + n.Child(i).NodeSize()
		if end >= pos {
			if end == pos {
				return i + 1, end
			}
			return i, cur
		}
		cur = end
	}
	return n.ChildCount(), cur
}

// Depth returns the depth of the innermost node containing the address.
func (r *Resolved) Depth() int { return len(r.path) - 1 }

// Doc returns the document the address was resolved in.
func (r *Resolved) Doc() *model.Node { return r.path[0].node }

// Node returns the ancestor at depth d.
func (r *Resolved) Node(d int) *model.Node { return r.path[d].node }

// Parent returns the innermost node containing the address.
func (r *Resolved) Parent() *model.Node { return r.path[len(r.path)-1].node }

// Index returns the child index within the ancestor at depth d.
func (r *Resolved) Index(d int) int { return r.path[d].index }

// Start returns the address of the start of the content of the ancestor at depth d.
func (r *Resolved) Start(d int) int {
	if d == 0 {
		return 0
	}
	return r.path[d-1].offset + 1
}

// End returns the address of the end of the content of the ancestor at depth d.
func (r *Resolved) End(d int) int {
	return r.Start(d) + r.Node(d).ContentSize()
}

// Before returns the address just before the ancestor at depth d.
// d must be at least 1.
func (r *Resolved) Before(d int) int {
	return r.path[d-1].offset
}

// After returns the address just after the ancestor at depth d.
// d must be at least 1.
func (r *Resolved) After(d int) int {
	return r.Before(d) + r.Node(d).NodeSize()
}

// TextOffset returns how far into a Text run the address lies, or 0 when it
// sits between nodes.
func (r *Resolved) TextOffset() int {
	return r.Pos - r.path[len(r.path)-1].offset
}

// NodeAfter returns the node directly after the address, the remainder of
// a Text run when the address is inside one, or nil at the end of the parent.
func (r *Resolved) NodeAfter() *model.Node {
	parent := r.Parent()
	index := r.Index(r.Depth())
	if index == parent.ChildCount() {
		return nil
	}
	child := parent.Child(index)
	if off := r.TextOffset(); off > 0 {
		return child.Cut(off, child.NodeSize())
	}
	return child
}

// NodeBefore returns the node directly before the address, the leading part
// of a Text run when the address is inside one, or nil at the start of the
// parent.
func (r *Resolved) NodeBefore() *model.Node {
	parent := r.Parent()
	index := r.Index(r.Depth())
	if off := r.TextOffset(); off > 0 {
		return parent.Child(index).Cut(0, off)
	}
	if index == 0 {
		return nil
	}
	return parent.Child(index - 1)
}

// PosAtIndex returns the address just before the child at index of the
// ancestor at depth d.
func (r *Resolved) PosAtIndex(index, d int) int {
	parent := r.Node(d)
	pos := r.Start(d)
	for i := 0; i < index && i < parent.ChildCount(); i++ {
		pos += parent.Child(i).NodeSize()
	}
	return pos
}

// InTextblock reports whether the address lies inside a text-bearing block.
func (r *Resolved) InTextblock() bool {
	return r.Parent().IsTextblock()
}

// SameParent reports whether both addresses share the innermost parent.
func (r *Resolved) SameParent(other *Resolved) bool {
	return r.Depth() == other.Depth() && r.Start(r.Depth()) == other.Start(other.Depth())
}

// String returns the address with its path, e.g. "7[doc:2 blockquote:0 paragraph:0]".
func (r *Resolved) String() string {
	s := fmt.Sprintf("%d[", r.Pos)
	for i, st := range r.path {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s:%d", st.node.Kind(), st.index)
	}
	return s + "]"
}

// AddressOf returns the address just before the child reached by following
// the index path from doc. The final index may equal the child count, which
// addresses the end of that container's content.
func AddressOf(doc *model.Node, path ...int) (int, error) {
	pos := 0
	node := doc
	for i, idx := range path {
		last := i == len(path)-1
		limit := node.ChildCount()
		if last {
			limit++
		}
		if idx < 0 || idx >= limit {
			return 0, fmt.Errorf("address of %v: index %d at depth %d: %w", path, idx, i, ErrInvalidPath)
		}
		for j := 0; j < idx; j++ {
			pos += node.Child(j).NodeSize()
		}
		if !last {
			node = node.Child(idx)
			if node.IsLeaf() {
				return 0, fmt.Errorf("address of %v: leaf at depth %d: %w", path, i, ErrInvalidPath)
			}
			pos++
		}
	}
	return pos, nil
}
