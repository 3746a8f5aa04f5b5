package model

import "slices"

// CanContain reports whether a node of kind parent may hold a child of kind child.
func CanContain(parent, child Kind) bool {
	switch parent {
	case KindDoc, KindBlockquote, KindListItem:
		return child.IsBlock() && child != KindListItem
	case KindParagraph, KindHeading:
		return child == KindText
	case KindBulletList, KindOrderedList:
		return child == KindListItem
	default:
		return false
	}
}

// RequiresContent reports whether nodes of this kind must hold at least one child.
func RequiresContent(k Kind) bool {
	switch k {
	case KindDoc, KindBlockquote, KindBulletList, KindOrderedList, KindListItem:
		return true
	}
	return false
}

// Check validates n and its descendants against the document schema.
// The first violation found is returned as a *SchemaError.
func (n *Node) Check() error {
	return n.check(nil)
}

// Validate checks that doc is a document root and satisfies the schema.
func Validate(doc *Node) error {
	if doc == nil {
		return &SchemaError{Kind: KindDoc, Message: "nil document"}
	}
	if doc.kind != KindDoc {
		return &SchemaError{Kind: doc.kind, Message: "root is not a document"}
	}
	return doc.Check()
}

// CheckShallow validates n against the schema without descending into
// its children's subtrees.
func (n *Node) CheckShallow() error {
	return n.checkSelf(nil)
}

func (n *Node) check(path []int) error {
	if err := n.checkSelf(path); err != nil {
		return err
	}
	for i, c := range n.content {
		if err := c.check(append(slices.Clip(path), i)); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) checkSelf(path []int) error {
	fail := func(msg string) error {
		return &SchemaError{Path: slices.Clone(path), Kind: n.kind, Message: msg}
	}

	switch n.kind {
	case KindText:
		if n.text == "" {
			return fail("empty text run")
		}
		return nil
	case KindImage, KindHorizontalRule:
		if len(n.content) > 0 {
			return fail("atomic block has content")
		}
		return nil
	case KindHeading:
		if n.level < 1 || n.level > 6 {
			return fail("heading level out of range")
		}
	case KindDoc, KindParagraph, KindBlockquote, KindBulletList, KindOrderedList, KindListItem:
	default:
		return fail("unknown node kind")
	}

	if RequiresContent(n.kind) && len(n.content) == 0 {
		return fail("container is empty")
	}
	for i, c := range n.content {
		if c == nil {
			return fail("nil child")
		}
		if !CanContain(n.kind, c.kind) {
			return &SchemaError{
				Path:    append(slices.Clone(path), i),
				Kind:    c.kind,
				Message: "not allowed in " + n.kind.String(),
			}
		}
	}
	return nil
}

// Normalize returns a tree in which adjacent Text runs with equal marks are
// merged and empty runs are removed. Unchanged subtrees are shared.
func (n *Node) Normalize() *Node {
	if n.IsLeaf() {
		return n
	}
	changed := false
	content := make([]*Node, 0, len(n.content))
	for _, c := range n.content {
		nc := c.Normalize()
		if nc != c {
			changed = true
		}
		if nc.kind == KindText {
			if nc.text == "" {
				changed = true
				continue
			}
			if last := len(content) - 1; last >= 0 && content[last].kind == KindText &&
				content[last].marks.Equal(nc.marks) {
				content[last] = Text(content[last].text+nc.text, nc.marks...)
				changed = true
				continue
			}
		}
		content = append(content, nc)
	}
	if !changed {
		return n
	}
	return n.WithContent(content)
}
