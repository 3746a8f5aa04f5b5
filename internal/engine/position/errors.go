package position

import "errors"

var (
	// ErrOutOfRange indicates an address outside [0, doc.ContentSize()].
	ErrOutOfRange = errors.New("position out of range")

	// ErrInsideAtom indicates an address that falls inside an atomic block.
	ErrInsideAtom = errors.New("position inside atomic node")

	// ErrInvalidPath indicates a child index path that leaves the tree.
	ErrInvalidPath = errors.New("invalid node path")
)
