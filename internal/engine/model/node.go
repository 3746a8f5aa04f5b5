package model

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Node is an immutable element of the document tree.
//
// The zero value is not useful; build nodes with the constructors in this
// package. A *Node is safe to share between trees and goroutines.
type Node struct {
	kind    Kind
	level   int
	src     string
	alt     string
	text    string
	marks   MarkSet
	content []*Node

	// size is the rune length for text and the content size otherwise.
	size int
}

func newNode(kind Kind, content []*Node) *Node {
	n := &Node{kind: kind, content: content}
	for _, c := range content {
		if c == nil {
			continue
		}
		n.size += c.NodeSize()
	}
	return n
}

// Paragraph returns a paragraph holding the given Text runs.
func Paragraph(runs ...*Node) *Node {
	return newNode(KindParagraph, runs)
}

// Heading returns a heading of the given level holding the given Text runs.
func Heading(level int, runs ...*Node) *Node {
	n := newNode(KindHeading, runs)
	n.level = level
	return n
}

// Blockquote returns a quote wrapping blocks.
func Blockquote(blocks ...*Node) *Node {
	return newNode(KindBlockquote, blocks)
}

// BulletList returns an unordered list of items.
func BulletList(items ...*Node) *Node {
	return newNode(KindBulletList, items)
}

// OrderedList returns a numbered list of items.
func OrderedList(items ...*Node) *Node {
	return newNode(KindOrderedList, items)
}

// ListItem returns a list item wrapping blocks.
func ListItem(blocks ...*Node) *Node {
	return newNode(KindListItem, blocks)
}

// Image returns an atomic image block.
func Image(src, alt string) *Node {
	return &Node{kind: KindImage, src: src, alt: alt}
}

// HorizontalRule returns an atomic separator block.
func HorizontalRule() *Node {
	return &Node{kind: KindHorizontalRule}
}

// Text returns an inline run carrying the given marks.
func Text(s string, marks ...Mark) *Node {
	return &Node{
		kind:  KindText,
		text:  s,
		marks: NewMarkSet(marks...),
		size:  utf8.RuneCountInString(s),
	}
}

// NewDoc builds a document from top-level blocks and validates it.
func NewDoc(blocks ...*Node) (*Node, error) {
	doc := newNode(KindDoc, blocks)
	if err := doc.Check(); err != nil {
		return nil, err
	}
	return doc, nil
}

// MustDoc is like NewDoc but panics on a schema violation.
// It is intended for fixed documents in tests and examples.
func MustDoc(blocks ...*Node) *Node {
	doc, err := NewDoc(blocks...)
	if err != nil {
		panic(err)
	}
	return doc
}

// EmptyDoc returns the minimal document: one empty paragraph.
func EmptyDoc() *Node {
	return newNode(KindDoc, []*Node{Paragraph()})
}

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// Level returns the heading level, or 0 for other kinds.
func (n *Node) Level() int { return n.level }

// Src returns the image source.
func (n *Node) Src() string { return n.src }

// Alt returns the image alternative text.
func (n *Node) Alt() string { return n.alt }

// Text returns the string of a Text run.
func (n *Node) Text() string { return n.text }

// Marks returns the marks of a Text run.
func (n *Node) Marks() MarkSet { return n.marks }

// IsText reports whether n is a Text run.
func (n *Node) IsText() bool { return n.kind == KindText }

// IsBlock reports whether n is a block.
func (n *Node) IsBlock() bool { return n.kind.IsBlock() }

// IsTextblock reports whether n holds Text runs.
func (n *Node) IsTextblock() bool { return n.kind.IsTextblock() }

// IsAtom reports whether n is an atomic block.
func (n *Node) IsAtom() bool { return n.kind.IsAtom() }

// IsLeaf reports whether n can have no children.
func (n *Node) IsLeaf() bool { return n.kind.IsAtom() || n.kind == KindText }

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int { return len(n.content) }

// Child returns the i-th child. It panics if i is out of range.
func (n *Node) Child(i int) *Node { return n.content[i] }

// MaybeChild returns the i-th child or nil.
func (n *Node) MaybeChild(i int) *Node {
	if i < 0 || i >= len(n.content) {
		return nil
	}
	return n.content[i]
}

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() *Node { return n.MaybeChild(0) }

// LastChild returns the last child or nil.
func (n *Node) LastChild() *Node { return n.MaybeChild(len(n.content) - 1) }

// Children returns a copy of the child slice.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.content))
	copy(out, n.content)
	return out
}

// BlockCount returns the number of top-level blocks of a document.
func (n *Node) BlockCount() int { return len(n.content) }

// ContentSize returns the size of the node's content.
func (n *Node) ContentSize() int {
	if n.kind == KindText {
		return 0
	}
	return n.size
}

// NodeSize returns the number of address units the node occupies.
func (n *Node) NodeSize() int {
	switch {
	case n.kind == KindText:
		return n.size
	case n.kind.IsAtom():
		return 1
	default:
		return n.size + 2
	}
}

// TextContent returns the concatenated text of all Text descendants.
func (n *Node) TextContent() string {
	if n.kind == KindText {
		return n.text
	}
	var b strings.Builder
	n.Descendants(func(d *Node, _ int) bool {
		if d.kind == KindText {
			b.WriteString(d.text)
		}
		return true
	})
	return b.String()
}

// Descendants calls fn for every descendant in document order, with the
// descendant's position relative to the start of n's content. Returning
// false from fn skips the descendant's children.
func (n *Node) Descendants(fn func(d *Node, pos int) bool) {
	n.descend(0, fn)
}

func (n *Node) descend(start int, fn func(*Node, int) bool) {
	pos := start
	for _, c := range n.content {
		if fn(c, pos) && len(c.content) > 0 {
			c.descend(pos+1, fn)
		}
		pos += c.NodeSize()
	}
}

// Cut returns the part of a Text run between rune offsets from and to,
// keeping its marks. Offsets are clamped to the run.
func (n *Node) Cut(from, to int) *Node {
	from = max(0, min(from, n.size))
	to = max(from, min(to, n.size))
	if from == 0 && to == n.size {
		return n
	}
	runes := []rune(n.text)
	return &Node{kind: KindText, text: string(runes[from:to]), marks: n.marks, size: to - from}
}

// WithContent returns a copy of n with its children replaced.
func (n *Node) WithContent(content []*Node) *Node {
	cp := newNode(n.kind, content)
	cp.level = n.level
	cp.src = n.src
	cp.alt = n.alt
	return cp
}

// ReplaceChild returns a copy of n with the i-th child replaced.
func (n *Node) ReplaceChild(i int, child *Node) *Node {
	content := n.Children()
	content[i] = child
	return n.WithContent(content)
}

// Equal reports whether n and other describe the same tree.
func (n *Node) Equal(other *Node) bool {
	if n == other {
		return true
	}
	if n == nil || other == nil {
		return false
	}
	if n.kind != other.kind || n.level != other.level || n.src != other.src ||
		n.alt != other.alt || n.text != other.text || !n.marks.Equal(other.marks) ||
		len(n.content) != len(other.content) {
		return false
	}
	for i := range n.content {
		if !n.content[i].Equal(other.content[i]) {
			return false
		}
	}
	return true
}

// String returns a compact debug form such as
// doc(heading1("Title"), paragraph("a", bold"b"), image).
func (n *Node) String() string {
	var b strings.Builder
	n.writeTo(&b)
	return b.String()
}

func (n *Node) writeTo(b *strings.Builder) {
	if n.kind == KindText {
		if len(n.marks) > 0 {
			b.WriteString(n.marks.String())
		}
		b.WriteString(strconv.Quote(n.text))
		return
	}
	b.WriteString(n.kind.String())
	if n.kind == KindHeading {
		fmt.Fprintf(b, "%d", n.level)
	}
	if n.kind.IsAtom() {
		return
	}
	b.WriteByte('(')
	for i, c := range n.content {
		if i > 0 {
			b.WriteString(", ")
		}
		c.writeTo(b)
	}
	b.WriteByte(')')
}
