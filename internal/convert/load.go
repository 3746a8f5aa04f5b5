package convert

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/dshills/blockstorm/internal/engine/model"
)

// Format identifies the external form a document was read from.
type Format int

const (
	FormatLegacyHTML Format = iota
	FormatJSON
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatLegacyHTML:
		return "legacy-html"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Load reads a stored document. Input that is a JSON object with type
// "doc" is decoded as the serialized tree; anything else is treated as
// legacy HTML, which never fails.
func Load(raw []byte) (*model.Node, Format, error) {
	if gjson.ValidBytes(raw) {
		if t := gjson.GetBytes(raw, "type"); t.Type == gjson.String && t.Str == "doc" {
			doc, err := model.Decode(raw)
			if err != nil {
				return nil, FormatJSON, fmt.Errorf("load json document: %w", err)
			}
			return doc, FormatJSON, nil
		}
	}
	return LegacyHTMLToDocument(string(raw)), FormatLegacyHTML, nil
}

// EncodeJSON serializes doc, indented when indent is set.
func EncodeJSON(doc *model.Node, indent bool) ([]byte, error) {
	data, err := model.Encode(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if indent {
		data = pretty.Pretty(data)
	}
	return data, nil
}
