package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrReadOnly indicates a save was attempted on a read-only document.
	ErrReadOnly = errors.New("document is read-only")

	// ErrNoFile indicates a save was attempted without a file name.
	ErrNoFile = errors.New("no file name")
)

// InitError represents an error during component initialization.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initialize %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// OperationError represents an error that occurred during a file operation.
type OperationError struct {
	Op   string // "open" or "save"
	Path string
	Err  error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
