package engine

import (
	"log/slog"

	"github.com/dshills/blockstorm/internal/engine/model"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithDocument sets the initial document. An invalid document is ignored
// and the engine starts with an empty one.
func WithDocument(doc *model.Node) Option {
	return func(e *Engine) {
		e.initDoc = doc
	}
}

// WithLogger sets the logger used for command tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithSessionID overrides the generated session identifier.
func WithSessionID(id string) Option {
	return func(e *Engine) {
		if id != "" {
			e.sessionID = id
		}
	}
}

// WithOnChange registers a callback invoked after every applied command
// with the new state. The callback runs without the engine lock held.
func WithOnChange(fn func(State)) Option {
	return func(e *Engine) {
		if fn != nil {
			e.onChange = append(e.onChange, fn)
		}
	}
}

// WithReadOnly creates a read-only engine.
// Commands that would change the document decline.
func WithReadOnly() Option {
	return func(e *Engine) {
		e.readOnly = true
	}
}
