package config

import (
	"fmt"
	"log/slog"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/blockstorm/internal/config/loader"
	"github.com/dshills/blockstorm/internal/input/key"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "BLOCKSTORM_"

// Flags gates the block command families. All are enabled by default.
type Flags struct {
	// EnableArrowNavigation gates ArrowUp and ArrowDown.
	EnableArrowNavigation bool `toml:"enableArrowNavigation" yaml:"enableArrowNavigation"`

	// EnableEnterHandling gates Enter.
	EnableEnterHandling bool `toml:"enableEnterHandling" yaml:"enableEnterHandling"`

	// EnableEscapeHandling gates Escape.
	EnableEscapeHandling bool `toml:"enableEscapeHandling" yaml:"enableEscapeHandling"`

	// EnableBlockShortcuts gates Mod-Enter, Backspace and Delete.
	EnableBlockShortcuts bool `toml:"enableBlockShortcuts" yaml:"enableBlockShortcuts"`
}

// DefaultFlags returns flags with every command family enabled.
func DefaultFlags() Flags {
	return Flags{
		EnableArrowNavigation: true,
		EnableEnterHandling:   true,
		EnableEscapeHandling:  true,
		EnableBlockShortcuts:  true,
	}
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is a slog level name: debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`

	// File is the log file path. Empty disables logging.
	File string `toml:"file" yaml:"file"`
}

// SlogLevel returns the parsed level, or info if it cannot be parsed.
func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Config is the complete configuration.
type Config struct {
	Editor Flags     `toml:"editor" yaml:"editor"`
	Log    LogConfig `toml:"log" yaml:"log"`

	// Keymap maps key specs to actions, overriding the block bindings.
	Keymap map[string]string `toml:"keymap" yaml:"keymap"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: DefaultFlags(),
		Log:    LogConfig{Level: "info"},
	}
}

// Validate checks setting values that the file formats cannot.
func (c Config) Validate() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, c.Log.Level)
	}
	for spec := range c.Keymap {
		if _, err := key.Parse(spec); err != nil {
			return fmt.Errorf("%w: keymap.%s: %v", ErrInvalidSetting, spec, err)
		}
	}
	return nil
}

// Load builds the configuration from defaults, the file at path and the
// environment. An empty path or a missing file leaves the defaults in place.
func Load(path string) (Config, error) {
	return LoadWithFS(loader.DefaultFS(), path)
}

// LoadWithFS is like Load but reads the file through fsys.
func LoadWithFS(fsys loader.FileSystem, path string) (Config, error) {
	merged, err := toMap(Default())
	if err != nil {
		return Config{}, err
	}

	if path != "" {
		fl, err := loader.ForPath(fsys, path)
		if err != nil {
			return Config{}, err
		}
		file, err := fl.Load()
		if err != nil {
			return Config{}, err
		}
		merged = loader.DeepMerge(merged, file)
	}

	env, err := loader.NewEnvLoader(EnvPrefix).Load()
	if err != nil {
		return Config{}, err
	}
	merged = loader.DeepMerge(merged, env)

	cfg, err := fromMap(merged)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// toMap and fromMap convert through TOML so that file, environment and
// default layers merge as plain maps.
func toMap(c Config) (map[string]any, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding defaults: %w", err)
	}
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("encoding defaults: %w", err)
	}
	return m, nil
}

func fromMap(m map[string]any) (Config, error) {
	data, err := toml.Marshal(m)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidSetting, err)
	}
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidSetting, err)
	}
	return c, nil
}
