package model

import (
	"errors"
	"fmt"
)

var (
	// ErrSchema indicates a tree that violates the document schema.
	ErrSchema = errors.New("schema violation")

	// ErrNotDocument indicates serialized input whose root is not a doc.
	ErrNotDocument = errors.New("root node is not a document")
)

// SchemaError describes where a tree violates the schema.
type SchemaError struct {
	// Path is the child index path from the root to the offending node.
	Path    []int
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("schema: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("schema: %s at %v: %s", e.Kind, e.Path, e.Message)
}

// Unwrap returns ErrSchema so callers can match with errors.Is.
func (e *SchemaError) Unwrap() error {
	return ErrSchema
}
