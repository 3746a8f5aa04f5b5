// Package transform applies structural edits to immutable document trees.
//
// Each edit rebuilds only the path from the touched parent to the root;
// every other subtree is shared with the input document. The touched parent
// is checked against the schema before the new root is returned, so a
// failed edit leaves no partial result behind.
package transform

import (
	"fmt"
	"slices"

	"github.com/dshills/blockstorm/internal/engine/model"
	"github.com/dshills/blockstorm/internal/engine/position"
)

// Insert returns a document with node inserted at pos.
// pos must be a boundary between children of a node that may hold node.
func Insert(doc *model.Node, pos int, node *model.Node) (*model.Node, error) {
	r, err := position.Resolve(doc, pos)
	if err != nil {
		return nil, fmt.Errorf("insert at %d: %w", pos, err)
	}
	if r.TextOffset() > 0 {
		return nil, fmt.Errorf("insert at %d: %w", pos, ErrNotBoundary)
	}

	depth := r.Depth()
	parent := r.Parent()
	content := slices.Insert(parent.Children(), r.Index(depth), node)
	updated := parent.WithContent(content)
	if err := updated.CheckShallow(); err != nil {
		return nil, fmt.Errorf("insert %s at %d: %w", node.Kind(), pos, err)
	}
	return rebuild(r, depth, updated), nil
}

// Delete returns a document with the children between from and to removed.
// Both addresses must be boundaries within the same parent.
func Delete(doc *model.Node, from, to int) (*model.Node, error) {
	if from > to {
		return nil, fmt.Errorf("delete %d-%d: %w", from, to, ErrInvalidRange)
	}
	rf, err := position.Resolve(doc, from)
	if err != nil {
		return nil, fmt.Errorf("delete %d-%d: %w", from, to, err)
	}
	rt, err := position.Resolve(doc, to)
	if err != nil {
		return nil, fmt.Errorf("delete %d-%d: %w", from, to, err)
	}
	if !rf.SameParent(rt) || rf.TextOffset() > 0 || rt.TextOffset() > 0 {
		return nil, fmt.Errorf("delete %d-%d: %w", from, to, ErrInvalidRange)
	}
	if from == to {
		return doc, nil
	}

	depth := rf.Depth()
	parent := rf.Parent()
	content := slices.Delete(parent.Children(), rf.Index(depth), rt.Index(depth))
	updated := parent.WithContent(content)
	if err := updated.CheckShallow(); err != nil {
		return nil, fmt.Errorf("delete %d-%d: %w", from, to, err)
	}
	return rebuild(rf, depth, updated), nil
}

// DeleteNode returns a document without the block that starts at pos.
func DeleteNode(doc *model.Node, pos int) (*model.Node, error) {
	r, err := position.Resolve(doc, pos)
	if err != nil {
		return nil, fmt.Errorf("delete node at %d: %w", pos, err)
	}
	node := r.NodeAfter()
	if node == nil || r.TextOffset() > 0 {
		return nil, fmt.Errorf("delete node at %d: %w", pos, ErrNotBoundary)
	}
	return Delete(doc, pos, pos+node.NodeSize())
}

// rebuild replaces the ancestor at depth with node and copies every
// ancestor above it.
func rebuild(r *position.Resolved, depth int, node *model.Node) *model.Node {
	for d := depth - 1; d >= 0; d-- {
		node = r.Node(d).ReplaceChild(r.Index(d), node)
	}
	return node
}
