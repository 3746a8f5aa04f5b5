package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/blockstorm/internal/engine/model"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		format Format
		want   string
	}{
		{
			name:   "json tree",
			raw:    `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"hi"}]}]}`,
			format: FormatJSON,
			want:   `doc(paragraph("hi"))`,
		},
		{
			name:   "legacy html",
			raw:    "<h1>T</h1>\n<p>x</p>",
			format: FormatLegacyHTML,
			want:   `doc(heading1("T"), paragraph("x"))`,
		},
		{
			name:   "json that is not a document",
			raw:    `{"type":"paragraph"}`,
			format: FormatLegacyHTML,
			want:   `doc(paragraph("{\"type\":\"paragraph\"}"))`,
		},
		{
			name:   "empty",
			raw:    "",
			format: FormatLegacyHTML,
			want:   `doc(paragraph())`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, format, err := Load([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.format, format)
			assert.Equal(t, tt.want, doc.String())
		})
	}
}

func TestLoadMalformedTree(t *testing.T) {
	_, format, err := Load([]byte(`{"type":"doc","content":"bad"}`))

	assert.Error(t, err)
	assert.Equal(t, FormatJSON, format)
}

func TestEncodeJSON(t *testing.T) {
	doc := model.EmptyDoc()

	compact, err := EncodeJSON(doc, false)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"doc","content":[{"type":"paragraph"}]}`, string(compact))

	indented, err := EncodeJSON(doc, true)
	require.NoError(t, err)
	assert.Contains(t, string(indented), "\n  ")

	back, format, err := Load(indented)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, format)
	assert.True(t, doc.Equal(back))
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "legacy-html", FormatLegacyHTML.String())
	assert.Equal(t, "Format(9)", Format(9).String())
}
