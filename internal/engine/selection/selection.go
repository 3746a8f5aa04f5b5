// Package selection describes what the user has selected in a document.
//
// A selection is either a TextSelection, an anchor and head that both lie
// inside text-bearing blocks (a cursor when they coincide), or a
// NodeSelection covering exactly one atomic block. Selections are values;
// operations return new selections rather than modifying existing ones.
package selection

import (
	"fmt"

	"github.com/dshills/blockstorm/internal/engine/model"
	"github.com/dshills/blockstorm/internal/engine/position"
)

// Selection is implemented by TextSelection and NodeSelection only.
type Selection interface {
	// Anchor returns the fixed end of the selection.
	Anchor() int
	// Head returns the moving end of the selection.
	Head() int
	// From returns the smaller address covered.
	From() int
	// To returns the larger address covered.
	To() int
	// Empty reports whether the selection covers nothing.
	Empty() bool
	// Equals reports whether two selections are the same.
	Equals(other Selection) bool
	String() string

	isSelection()
}

// TextSelection is a range between two addresses inside text-bearing blocks.
type TextSelection struct {
	anchor int
	head   int
}

// Cursor returns a collapsed text selection at pos without validation.
// Use NewText when pos comes from outside the engine.
func Cursor(pos int) TextSelection {
	return TextSelection{anchor: pos, head: pos}
}

// Range returns a text selection from anchor to head without validation.
func Range(anchor, head int) TextSelection {
	return TextSelection{anchor: anchor, head: head}
}

// NewText returns a text selection after checking that both ends lie
// inside text-bearing blocks of doc.
func NewText(doc *model.Node, anchor, head int) (TextSelection, error) {
	for _, pos := range []int{anchor, head} {
		if err := checkTextPos(doc, pos); err != nil {
			return TextSelection{}, err
		}
	}
	return TextSelection{anchor: anchor, head: head}, nil
}

func checkTextPos(doc *model.Node, pos int) error {
	r, err := position.Resolve(doc, pos)
	if err != nil {
		return err
	}
	if !r.InTextblock() {
		return fmt.Errorf("address %d in %s: %w", pos, r.Parent().Kind(), ErrNotTextPosition)
	}
	return nil
}

func (s TextSelection) isSelection() {}

// Anchor returns the fixed end.
func (s TextSelection) Anchor() int { return s.anchor }

// Head returns the moving end.
func (s TextSelection) Head() int { return s.head }

// From returns the smaller end.
func (s TextSelection) From() int { return min(s.anchor, s.head) }

// To returns the larger end.
func (s TextSelection) To() int { return max(s.anchor, s.head) }

// Empty reports whether the selection is a cursor.
func (s TextSelection) Empty() bool { return s.anchor == s.head }

// Collapse returns a cursor at the head.
func (s TextSelection) Collapse() TextSelection {
	return Cursor(s.head)
}

// CollapseToEnd returns a cursor at the larger end.
func (s TextSelection) CollapseToEnd() TextSelection {
	return Cursor(s.To())
}

// CollapseToStart returns a cursor at the smaller end.
func (s TextSelection) CollapseToStart() TextSelection {
	return Cursor(s.From())
}

// IsForward reports whether the head is at or after the anchor.
func (s TextSelection) IsForward() bool {
	return s.head >= s.anchor
}

// Equals reports whether other is a text selection with the same ends.
func (s TextSelection) Equals(other Selection) bool {
	o, ok := other.(TextSelection)
	return ok && o == s
}

// String returns "Cursor(n)" or "Text(a→h)".
func (s TextSelection) String() string {
	if s.Empty() {
		return fmt.Sprintf("Cursor(%d)", s.head)
	}
	return fmt.Sprintf("Text(%d→%d)", s.anchor, s.head)
}

// NodeSelection selects exactly one atomic block.
type NodeSelection struct {
	from int
	node *model.Node
}

// NewNode returns a node selection of the atomic block starting at from.
func NewNode(doc *model.Node, from int) (NodeSelection, error) {
	r, err := position.Resolve(doc, from)
	if err != nil {
		return NodeSelection{}, err
	}
	node := r.NodeAfter()
	if node == nil || !node.IsAtom() {
		return NodeSelection{}, fmt.Errorf("address %d: %w", from, ErrNotSelectable)
	}
	return NodeSelection{from: from, node: node}, nil
}

func (s NodeSelection) isSelection() {}

// Node returns the selected block.
func (s NodeSelection) Node() *model.Node { return s.node }

// Anchor returns the address before the block.
func (s NodeSelection) Anchor() int { return s.from }

// Head returns the address after the block.
func (s NodeSelection) Head() int { return s.To() }

// From returns the address before the block.
func (s NodeSelection) From() int { return s.from }

// To returns the address after the block.
func (s NodeSelection) To() int {
	if s.node == nil {
		return s.from
	}
	return s.from + s.node.NodeSize()
}

// Empty is always false.
func (s NodeSelection) Empty() bool { return false }

// Equals reports whether other selects the same block at the same address.
func (s NodeSelection) Equals(other Selection) bool {
	o, ok := other.(NodeSelection)
	return ok && o.from == s.from && o.node.Equal(s.node)
}

// String returns "Node(n kind)".
func (s NodeSelection) String() string {
	if s.node == nil {
		return fmt.Sprintf("Node(%d)", s.from)
	}
	return fmt.Sprintf("Node(%d %s)", s.from, s.node.Kind())
}

// Validate checks that sel is valid for doc.
func Validate(doc *model.Node, sel Selection) error {
	switch s := sel.(type) {
	case TextSelection:
		_, err := NewText(doc, s.anchor, s.head)
		return err
	case NodeSelection:
		if s.node == nil {
			return fmt.Errorf("node selection at %d without node: %w", s.from, ErrNoSelection)
		}
		ns, err := NewNode(doc, s.from)
		if err != nil {
			return err
		}
		if !ns.node.Equal(s.node) {
			return fmt.Errorf("address %d holds %s: %w", s.from, ns.node.Kind(), ErrStaleNode)
		}
		return nil
	case nil:
		return ErrNoSelection
	default:
		return fmt.Errorf("%T: %w", sel, ErrNoSelection)
	}
}
