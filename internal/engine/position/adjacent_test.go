package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/blockstorm/internal/engine/model"
)

func TestFindAdjacentBlock(t *testing.T) {
	doc := sampleDoc()

	tests := []struct {
		name   string
		pos    int
		dir    Direction
		ok     bool
		kind   model.Kind
		before int
	}{
		{"text forward finds image", 2, Forward, true, model.KindImage, 4},
		{"text backward at first block", 2, Backward, false, 0, 0},
		{"image origin forward", 4, Forward, true, model.KindBlockquote, 5},
		{"image origin backward", 4, Backward, true, model.KindParagraph, 0},
		{"gap after image backward", 5, Backward, true, model.KindImage, 4},
		{"gap before quote forward", 5, Forward, true, model.KindBlockquote, 5},
		{"nested text has no sibling", 7, Forward, false, 0, 0},
		{"nested text backward", 8, Backward, false, 0, 0},
		{"end of document forward", 10, Forward, false, 0, 0},
		{"end of document backward", 10, Backward, true, model.KindBlockquote, 5},
		{"out of range", 42, Forward, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj, ok := FindAdjacentBlock(doc, tt.pos, tt.dir)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.kind, adj.Node.Kind())
			assert.Equal(t, tt.before, adj.Before)
			assert.Equal(t, tt.before+1, adj.Pos)
		})
	}
}

func TestAdjacentEnds(t *testing.T) {
	doc := sampleDoc()

	adj, ok := FindAdjacentBlock(doc, 4, Backward)
	require.True(t, ok)
	assert.Equal(t, 4, adj.End())
	assert.Equal(t, 3, adj.ContentEnd())

	adj, ok = FindAdjacentBlock(doc, 2, Forward)
	require.True(t, ok)
	assert.Equal(t, 5, adj.End())
	assert.Equal(t, 5, adj.ContentEnd())
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "backward", Backward.String())
}
