package transform

import "errors"

var (
	// ErrNotBoundary indicates an address that does not sit between nodes.
	ErrNotBoundary = errors.New("position is not a node boundary")

	// ErrInvalidRange indicates a range that does not cover whole siblings.
	ErrInvalidRange = errors.New("invalid range")
)
