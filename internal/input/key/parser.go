package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@", "-"
//   - Named keys: "Enter", "Escape", "ArrowUp", "Backspace", "Space"
//   - With modifiers: "Mod-Enter", "Shift-ArrowUp", "Ctrl+S"
//   - Bracketed: "<C-s>", "<CR>", "<Esc>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		spec = spec[1 : len(spec)-1]
	}

	// The key is whatever follows the last separator, so "Ctrl--" binds "-".
	sep := strings.LastIndexAny(spec[:len(spec)-1], "-+")
	if sep < 0 {
		return parseKey(spec, ModNone)
	}

	var mods Modifier
	for _, p := range strings.FieldsFunc(spec[:sep], func(r rune) bool { return r == '-' || r == '+' }) {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	return parseKey(spec[sep+1:], mods)
}

// parseKey parses a key part with already-known modifiers
func parseKey(name string, mods Modifier) (Event, error) {
	if name == "" {
		return Event{}, ErrInvalidSpec
	}
	if strings.EqualFold(name, "space") {
		return NewRuneEvent(' ', mods), nil
	}
	if k := KeyFromName(name); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	runes := []rune(name)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
	}
	r := runes[0]
	switch {
	case mods.Has(ModCtrl):
		r = unicode.ToLower(r)
	case unicode.IsUpper(r):
		mods = mods.With(ModShift)
	}
	return NewRuneEvent(r, mods), nil
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

// NormalizeSpec parses and re-formats a key specification to its canonical form.
func NormalizeSpec(spec string) (string, error) {
	event, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return event.String(), nil
}
