package config

import (
	"errors"

	"github.com/dshills/blockstorm/internal/config/loader"
)

// Errors returned by configuration operations.
var (
	// ErrInvalidSetting indicates a setting has the wrong type or value.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrInvalidLevel indicates an unknown log level name.
	ErrInvalidLevel = errors.New("invalid log level")
)

// ParseError represents an error while parsing a configuration file.
type ParseError = loader.ParseError
