package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrNoHandler indicates no handler was found for an action.
	ErrNoHandler = errors.New("dispatcher: no handler for action")

	// ErrPanic indicates the handler panicked.
	ErrPanic = errors.New("dispatcher: handler panic")

	// ErrInvalidAction indicates the action is invalid.
	ErrInvalidAction = errors.New("dispatcher: invalid action")

	// ErrNilEngine indicates the dispatcher was created without an engine.
	ErrNilEngine = errors.New("dispatcher: nil engine")
)
