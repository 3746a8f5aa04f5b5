package selection

import "errors"

var (
	// ErrNotTextPosition indicates a text selection end outside text-bearing content.
	ErrNotTextPosition = errors.New("not a text position")

	// ErrNotSelectable indicates a node selection that does not start before an atomic block.
	ErrNotSelectable = errors.New("no selectable node at position")

	// ErrStaleNode indicates a node selection whose block no longer matches the document.
	ErrStaleNode = errors.New("selected node does not match document")

	// ErrNoSelection indicates a missing selection.
	ErrNoSelection = errors.New("no selection")
)
