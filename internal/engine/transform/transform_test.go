package transform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/blockstorm/internal/engine/model"
	"github.com/dshills/blockstorm/internal/engine/position"
)

func TestInsertTopLevel(t *testing.T) {
	doc := model.MustDoc(model.Paragraph(model.Text("a")), model.Image("x", ""))

	got, err := Insert(doc, 4, model.Paragraph())
	require.NoError(t, err)

	assert.Equal(t, `doc(paragraph("a"), image, paragraph())`, got.String())
	assert.Equal(t, `doc(paragraph("a"), image)`, doc.String())
	assert.Same(t, doc.Child(0), got.Child(0))
	assert.NoError(t, got.Check())
}

func TestInsertNested(t *testing.T) {
	doc := model.MustDoc(
		model.Paragraph(),
		model.Blockquote(model.Paragraph(model.Text("q"))),
	)

	// after the quoted paragraph, inside the quote
	got, err := Insert(doc, 6, model.HorizontalRule())
	require.NoError(t, err)

	assert.Equal(t, `doc(paragraph(), blockquote(paragraph("q"), horizontalRule))`, got.String())
	assert.Same(t, doc.Child(0), got.Child(0))
}

func TestInsertRejected(t *testing.T) {
	doc := model.MustDoc(model.Paragraph(model.Text("ab")), model.BulletList(model.ListItem(model.Paragraph())))

	_, err := Insert(doc, 2, model.Paragraph())
	assert.True(t, errors.Is(err, ErrNotBoundary))

	_, err = Insert(doc, 1, model.Image("x", ""))
	assert.True(t, errors.Is(err, model.ErrSchema))

	// directly inside the list, where only items are allowed
	_, err = Insert(doc, 5, model.Paragraph())
	assert.True(t, errors.Is(err, model.ErrSchema))

	_, err = Insert(doc, 99, model.Paragraph())
	assert.True(t, errors.Is(err, position.ErrOutOfRange))
}

func TestDelete(t *testing.T) {
	doc := model.MustDoc(
		model.Paragraph(model.Text("a")),
		model.Paragraph(),
		model.HorizontalRule(),
	)

	got, err := Delete(doc, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, `doc(paragraph("a"), horizontalRule)`, got.String())

	got, err = DeleteNode(doc, 5)
	require.NoError(t, err)
	assert.Equal(t, `doc(paragraph("a"), paragraph())`, got.String())

	same, err := Delete(doc, 3, 3)
	require.NoError(t, err)
	assert.Same(t, doc, same)
}

func TestDeleteRejected(t *testing.T) {
	doc := model.MustDoc(model.Paragraph(model.Text("ab")))

	_, err := Delete(doc, 0, 4)
	assert.True(t, errors.Is(err, model.ErrSchema), "deleting the only block leaves an empty doc")

	_, err = Delete(doc, 0, 2)
	assert.True(t, errors.Is(err, ErrInvalidRange))

	_, err = Delete(doc, 4, 0)
	assert.True(t, errors.Is(err, ErrInvalidRange))

	_, err = DeleteNode(doc, 4)
	assert.True(t, errors.Is(err, ErrNotBoundary))
}

func TestDeleteLastQuotedBlockRejected(t *testing.T) {
	doc := model.MustDoc(model.Blockquote(model.Paragraph()), model.Paragraph())

	_, err := DeleteNode(doc, 1)
	assert.True(t, errors.Is(err, model.ErrSchema))
}
