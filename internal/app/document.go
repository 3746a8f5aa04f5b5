package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/blockstorm/internal/convert"
	"github.com/dshills/blockstorm/internal/engine/model"
)

// OpenDocument reads a document from path. A missing file yields the
// minimal document, in the format its extension suggests.
func OpenDocument(path string) (*model.Node, convert.Format, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.EmptyDoc(), formatForPath(path, convert.FormatLegacyHTML), nil
	}
	if err != nil {
		return nil, 0, &OperationError{Op: "open", Path: path, Err: err}
	}
	doc, format, err := convert.Load(raw)
	if err != nil {
		return nil, 0, &OperationError{Op: "open", Path: path, Err: err}
	}
	return doc, format, nil
}

// SaveDocument writes doc to path. JSON files get the serialized tree and
// HTML files rendered HTML; other names use fallback.
func SaveDocument(path string, doc *model.Node, fallback convert.Format) error {
	var data []byte
	switch formatForPath(path, fallback) {
	case convert.FormatJSON:
		var err error
		if data, err = convert.EncodeJSON(doc, true); err != nil {
			return &OperationError{Op: "save", Path: path, Err: err}
		}
	default:
		data = []byte(convert.DocumentToHTML(doc) + "\n")
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &OperationError{Op: "save", Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &OperationError{Op: "save", Path: path, Err: err}
	}
	return nil
}

func formatForPath(path string, fallback convert.Format) convert.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return convert.FormatJSON
	case ".html", ".htm":
		return convert.FormatLegacyHTML
	}
	return fallback
}
