package dispatcher

import "github.com/dshills/blockstorm/internal/config"

// Config holds dispatcher configuration options.
type Config struct {
	// Flags enable or disable the built-in block handlers.
	Flags config.Flags

	// Keymap overrides the default bindings, spec to action.
	Keymap map[string]string

	// EnableMetrics enables dispatch timing and statistics collection.
	EnableMetrics bool

	// RecoverFromPanic wraps handler execution in panic recovery.
	RecoverFromPanic bool
}

// DefaultConfig returns a configuration with every block handler enabled.
func DefaultConfig() Config {
	return Config{
		Flags:            config.DefaultFlags(),
		RecoverFromPanic: true,
	}
}

// FromSettings builds a dispatcher configuration from loaded settings.
func FromSettings(c config.Config) Config {
	cfg := DefaultConfig()
	cfg.Flags = c.Editor
	cfg.Keymap = c.Keymap
	return cfg
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}

// WithFlags returns a copy of the config with the given flags.
func (c Config) WithFlags(flags config.Flags) Config {
	c.Flags = flags
	return c
}
