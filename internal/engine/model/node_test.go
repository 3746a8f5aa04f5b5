package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeSizes(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		size int
	}{
		{"text counts runes", Text("héllo"), 5},
		{"empty paragraph", Paragraph(), 2},
		{"paragraph", Paragraph(Text("Hello")), 7},
		{"image", Image("a.png", ""), 1},
		{"rule", HorizontalRule(), 1},
		{"quote", Blockquote(Paragraph(Text("ab"))), 6},
		{"list", BulletList(ListItem(Paragraph(Text("x")))), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.size, tt.node.NodeSize())
		})
	}
}

func TestDocContentSize(t *testing.T) {
	doc := MustDoc(Paragraph(Text("Hello")), Image("a.png", "a"))

	assert.Equal(t, 8, doc.ContentSize())
	assert.Equal(t, 2, doc.BlockCount())
	assert.Equal(t, "Hello", doc.TextContent())
}

func TestNewDocRejectsInvalidTrees(t *testing.T) {
	tests := []struct {
		name   string
		blocks []*Node
	}{
		{"no blocks", nil},
		{"text at top level", []*Node{Text("x")}},
		{"empty list", []*Node{BulletList()}},
		{"empty quote", []*Node{Blockquote()}},
		{"list item at top level", []*Node{ListItem(Paragraph())}},
		{"block in paragraph", []*Node{Paragraph(Image("a", ""))}},
		{"paragraph in list", []*Node{OrderedList(Paragraph())}},
		{"heading level", []*Node{Heading(7, Text("x"))}},
		{"empty text run", []*Node{Paragraph(Text(""))}},
		{"nil block", []*Node{Paragraph(), nil}},
		{"nil nested child", []*Node{Blockquote(nil)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDoc(tt.blocks...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSchema))

			var se *SchemaError
			assert.True(t, errors.As(err, &se))
		})
	}
}

func TestSchemaErrorPath(t *testing.T) {
	_, err := NewDoc(Paragraph(), Blockquote(Paragraph(), Paragraph(Text(""))))

	var se *SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, []int{1, 1, 0}, se.Path)
	assert.Equal(t, KindText, se.Kind)
}

func TestEmptyDoc(t *testing.T) {
	doc := EmptyDoc()

	require.NoError(t, doc.Check())
	assert.Equal(t, 1, doc.BlockCount())
	assert.Equal(t, 2, doc.ContentSize())
}

func TestDescendantsPositions(t *testing.T) {
	doc := MustDoc(
		Paragraph(Text("ab")),
		Blockquote(Paragraph(Text("c"))),
		HorizontalRule(),
	)

	var got []string
	var pos []int
	doc.Descendants(func(n *Node, p int) bool {
		got = append(got, n.Kind().String())
		pos = append(pos, p)
		return true
	})

	assert.Equal(t, []string{"paragraph", "text", "blockquote", "paragraph", "text", "horizontalRule"}, got)
	assert.Equal(t, []int{0, 1, 4, 5, 6, 9}, pos)
}

func TestNormalizeMergesRuns(t *testing.T) {
	p := Paragraph(Text("a", Bold()), Text("b", Bold()), Text("c"), Text("d"))

	n := p.Normalize()

	require.Equal(t, 2, n.ChildCount())
	assert.Equal(t, "ab", n.Child(0).Text())
	assert.True(t, n.Child(0).Marks().Has(MarkBold))
	assert.Equal(t, "cd", n.Child(1).Text())
	assert.Equal(t, p.NodeSize(), n.NodeSize())
}

func TestNormalizeSharesUnchanged(t *testing.T) {
	p := Paragraph(Text("a"))
	assert.Same(t, p, p.Normalize())
}

func TestReplaceChildIsCopyOnWrite(t *testing.T) {
	doc := MustDoc(Paragraph(Text("a")), Paragraph(Text("b")))

	next := doc.ReplaceChild(1, Paragraph(Text("xyz")))

	assert.Equal(t, "b", doc.Child(1).TextContent())
	assert.Equal(t, "xyz", next.Child(1).TextContent())
	assert.Same(t, doc.Child(0), next.Child(0))
	assert.Equal(t, 8, next.ContentSize())
}

func TestMarkSetCanonicalOrder(t *testing.T) {
	set := NewMarkSet(Link("x"), Bold(), Italic(), Link("y"))

	require.Len(t, set, 3)
	assert.Equal(t, MarkBold, set[0].Type)
	assert.Equal(t, MarkItalic, set[1].Type)
	m, ok := set.Get(MarkLink)
	require.True(t, ok)
	assert.Equal(t, "y", m.Href)
	assert.Equal(t, "bold+italic+link(y)", set.String())
}

func TestNodeString(t *testing.T) {
	doc := MustDoc(Heading(2, Text("T")), Paragraph(Text("b", Bold())), Image("x", ""))

	assert.Equal(t, `doc(heading2("T"), paragraph(bold"b"), image)`, doc.String())
}

func TestKindNames(t *testing.T) {
	for k := KindDoc; k <= KindText; k++ {
		got, ok := KindFromName(k.String())
		require.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}
	_, ok := KindFromName("table")
	assert.False(t, ok)
}
