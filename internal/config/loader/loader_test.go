package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

type failingFS struct{}

func (failingFS) ReadFile(string) ([]byte, error) { return nil, fs.ErrPermission }

func TestForPath(t *testing.T) {
	memfs := NewMemFS()

	fl, err := ForPath(memfs, "/a/blockstorm.toml")
	require.NoError(t, err)
	assert.IsType(t, &TOMLLoader{}, fl)

	fl, err = ForPath(memfs, "/a/blockstorm.YML")
	require.NoError(t, err)
	assert.IsType(t, &YAMLLoader{}, fl)

	_, err = ForPath(memfs, "/a/blockstorm.ini")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", `
[editor]
enableEscapeHandling = false

[log]
level = "debug"

[keymap]
"Mod-Enter" = "block.splitBlock"
`)

	config, err := NewTOMLLoaderWithFS(memfs, "/config.toml").Load()
	require.NoError(t, err)

	editor, ok := config["editor"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, editor["enableEscapeHandling"])
	assert.Equal(t, "debug", config["log"].(map[string]any)["level"])
	assert.Equal(t, "block.splitBlock", config["keymap"].(map[string]any)["Mod-Enter"])
}

func TestTOMLLoader_Missing(t *testing.T) {
	config, err := NewTOMLLoaderWithFS(NewMemFS(), "/nope.toml").Load()

	assert.NoError(t, err)
	assert.Nil(t, config)
}

func TestTOMLLoader_ReadError(t *testing.T) {
	_, err := NewTOMLLoaderWithFS(failingFS{}, "/config.toml").Load()

	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestTOMLLoader_ParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "[editor]\nenableEscapeHandling = \n")

	_, err := NewTOMLLoaderWithFS(memfs, "/bad.toml").Load()

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "/bad.toml", perr.Path)
	assert.Positive(t, perr.Line)
	assert.Contains(t, perr.Error(), "parse error in /bad.toml at line")
}

func TestYAMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.yaml", `
editor:
  enableArrowNavigation: false
log:
  file: /tmp/b.log
keymap:
  Escape: ""
`)

	config, err := NewYAMLLoaderWithFS(memfs, "/config.yaml").Load()
	require.NoError(t, err)

	assert.Equal(t, false, config["editor"].(map[string]any)["enableArrowNavigation"])
	assert.Equal(t, "/tmp/b.log", config["log"].(map[string]any)["file"])
	assert.Equal(t, "", config["keymap"].(map[string]any)["Escape"])
}

func TestYAMLLoader_ParseError(t *testing.T) {
	_, err := NewYAMLLoader("").LoadFromReader(strings.NewReader("editor:\n  a: 1\n b: [\n"))

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "<reader>", perr.Path)
	assert.Positive(t, perr.Line)
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"editor": map[string]any{"a": true, "b": true},
		"log":    map[string]any{"level": "info"},
	}
	src := map[string]any{
		"editor": map[string]any{"b": false},
		"log":    "flat",
	}

	got := DeepMerge(dst, src)
	assert.Equal(t, map[string]any{"a": true, "b": false}, got["editor"])
	assert.Equal(t, "flat", got["log"])
	assert.Equal(t, map[string]any{"x": 1}, DeepMerge(nil, map[string]any{"x": 1}))
}
