package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memFS is an in-memory loader.FileSystem.
type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	s, ok := m[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, fs.ErrNotExist)
	}
	return []byte(s), nil
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultFlags(), cfg.Editor)
	assert.True(t, cfg.Editor.EnableArrowNavigation)
	assert.True(t, cfg.Editor.EnableEnterHandling)
	assert.True(t, cfg.Editor.EnableEscapeHandling)
	assert.True(t, cfg.Editor.EnableBlockShortcuts)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.NoError(t, cfg.Validate())
}

func TestLoadNoFile(t *testing.T) {
	cfg, err := LoadWithFS(memFS{}, "")

	require.NoError(t, err)
	assert.Equal(t, DefaultFlags(), cfg.Editor)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadTOML(t *testing.T) {
	fsys := memFS{"/b.toml": `
[editor]
enableEscapeHandling = false

[log]
level = "debug"
file = "/tmp/b.log"

[keymap]
"Mod-Enter" = ""
"Alt-Enter" = "block.splitBlock"
`}

	cfg, err := LoadWithFS(fsys, "/b.toml")
	require.NoError(t, err)

	assert.False(t, cfg.Editor.EnableEscapeHandling)
	assert.True(t, cfg.Editor.EnableArrowNavigation)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "/tmp/b.log", cfg.Log.File)
	assert.Equal(t, map[string]string{"Mod-Enter": "", "Alt-Enter": "block.splitBlock"}, cfg.Keymap)
}

func TestLoadYAML(t *testing.T) {
	fsys := memFS{"/b.yaml": "editor:\n  enableBlockShortcuts: false\nlog:\n  level: warn\n"}

	cfg, err := LoadWithFS(fsys, "/b.yaml")
	require.NoError(t, err)

	assert.False(t, cfg.Editor.EnableBlockShortcuts)
	assert.True(t, cfg.Editor.EnableEnterHandling)
	assert.Equal(t, slog.LevelWarn, cfg.Log.SlogLevel())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("BLOCKSTORM_EDITOR_ENABLE_ARROW_NAVIGATION", "false")
	t.Setenv("BLOCKSTORM_LOG_LEVEL", "error")
	fsys := memFS{"/b.toml": "[log]\nlevel = \"debug\"\n"}

	cfg, err := LoadWithFS(fsys, "/b.toml")
	require.NoError(t, err)

	assert.False(t, cfg.Editor.EnableArrowNavigation)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		fsys   memFS
		path   string
		target error
	}{
		{"wrong type", memFS{"/b.toml": "[editor]\nenableEnterHandling = \"maybe\"\n"}, "/b.toml", ErrInvalidSetting},
		{"bad level", memFS{"/b.toml": "[log]\nlevel = \"loud\"\n"}, "/b.toml", ErrInvalidLevel},
		{"bad key spec", memFS{"/b.toml": "[keymap]\n\"Hyper-x\" = \"block.enter\"\n"}, "/b.toml", ErrInvalidSetting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWithFS(tt.fsys, tt.path)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestLoadParseError(t *testing.T) {
	_, err := LoadWithFS(memFS{"/b.toml": "[editor\n"}, "/b.toml")

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "/b.toml", perr.Path)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := LoadWithFS(memFS{}, "/b.ini")

	assert.Error(t, err)
}

func TestSlogLevelFallback(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, LogConfig{Level: "loud"}.SlogLevel())
	assert.Equal(t, slog.LevelError, LogConfig{Level: "ERROR"}.SlogLevel())
}
