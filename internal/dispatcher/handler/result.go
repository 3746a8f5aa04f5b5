package handler

import "fmt"

// ResultStatus indicates the outcome of an action.
type ResultStatus uint8

const (
	// StatusOK indicates the handler handled the action.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the handler declined; the next handler is tried.
	StatusNoOp
	// StatusError indicates the handler failed.
	StatusError
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result represents the outcome of handling an action.
type Result struct {
	// Status indicates the result status.
	Status ResultStatus

	// Error contains any error that occurred.
	Error error

	// Message is an optional status message for display.
	Message string

	// Handler names the handler that produced the result, if any.
	Handler string
}

// IsOK returns true if the result indicates success.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// IsNoOp returns true if the action was declined.
func (r Result) IsNoOp() bool {
	return r.Status == StatusNoOp
}

// IsError returns true if the result indicates an error.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// Success creates a successful result.
func Success() Result {
	return Result{Status: StatusOK}
}

// SuccessWithMessage creates a successful result with a message.
func SuccessWithMessage(msg string) Result {
	return Result{Status: StatusOK, Message: msg}
}

// NoOp creates a no-operation result.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// NoOpWithMessage creates a no-operation result with a message.
func NoOpWithMessage(msg string) Result {
	return Result{Status: StatusNoOp, Message: msg}
}

// Error creates an error result.
func Error(err error) Result {
	return Result{Status: StatusError, Error: err}
}

// Errorf creates an error result with a formatted message.
func Errorf(format string, args ...any) Result {
	return Result{
		Status: StatusError,
		Error:  fmt.Errorf(format, args...),
	}
}

// FromBool maps a command outcome to a result: true is handled, false
// declined.
func FromBool(handled bool) Result {
	if handled {
		return Success()
	}
	return NoOp()
}

// WithMessage returns a copy of the result with the specified message.
func (r Result) WithMessage(msg string) Result {
	r.Message = msg
	return r
}

// WithHandler returns a copy of the result attributed to the named handler.
func (r Result) WithHandler(name string) Result {
	r.Handler = name
	return r
}
