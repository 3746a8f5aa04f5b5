package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvLoader_Load(t *testing.T) {
	l := NewEnvLoader("BLOCKSTORM_")
	l.environ = func() []string {
		return []string{
			"BLOCKSTORM_EDITOR_ENABLE_ENTER_HANDLING=false",
			"BLOCKSTORM_EDITOR_ENABLE_BLOCK_SHORTCUTS=0",
			"BLOCKSTORM_LOG_LEVEL=debug",
			"BLOCKSTORM_LOG_FILE=",
			"BLOCKSTORM_ORPHAN=1",
			"HOME=/root",
		}
	}

	config, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"editor": map[string]any{
			"enableEnterHandling":  false,
			"enableBlockShortcuts": false,
		},
		"log": map[string]any{
			"level": "debug",
			"file":  "",
		},
	}, config)
}

func TestEnvLoader_envToPath(t *testing.T) {
	l := NewEnvLoader("BLOCKSTORM_")

	tests := []struct {
		env  string
		want string
	}{
		{"BLOCKSTORM_LOG_LEVEL", "log.level"},
		{"BLOCKSTORM_EDITOR_ENABLE_ARROW_NAVIGATION", "editor.enableArrowNavigation"},
		{"BLOCKSTORM_SOLO", ""},
		{"BLOCKSTORM__X", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, l.envToPath(tt.env))
		})
	}
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, true, parseValue("yes"))
	assert.Equal(t, false, parseValue("OFF"))
	assert.Equal(t, int64(42), parseValue("42"))
	assert.Equal(t, 1.5, parseValue("1.5"))
	assert.Equal(t, "debug", parseValue("debug"))
	assert.Equal(t, "", parseValue(""))
}
