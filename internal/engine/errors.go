package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrInvalidDocument indicates a document that violates the schema.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidSelection indicates a selection that cannot be placed in the document.
	ErrInvalidSelection = errors.New("invalid selection")
)
