package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvLoader loads configuration from environment variables.
//
// A variable PREFIX_SECTION_SOME_NAME sets section.someName.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "BLOCKSTORM_")
	environ func() []string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "BLOCKSTORM_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		environ: os.Environ,
	}
}

// Load reads environment variables and returns a configuration map.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range l.environ() {
		if !strings.HasPrefix(env, l.prefix) {
			continue
		}
		name, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		path := l.envToPath(name)
		if path == "" {
			continue
		}
		setByPath(config, path, parseValue(value))
	}

	return config, nil
}

// envToPath converts BLOCKSTORM_EDITOR_ENABLE_ENTER_HANDLING to
// editor.enableEnterHandling.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.TrimPrefix(env, l.prefix)
	parts := strings.Split(name, "_")
	if len(parts) < 2 || parts[0] == "" {
		return ""
	}

	setting := strings.ToLower(parts[1])
	for _, part := range parts[2:] {
		if len(part) > 0 {
			setting += strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
	}
	return strings.ToLower(parts[0]) + "." + setting
}

// parseValue attempts to parse the string value into an appropriate type.
func parseValue(s string) any {
	if s == "" {
		return s
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true
	case "false", "no", "off", "0":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	// Only if it contains a decimal point to avoid misinterpreting ints
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}
