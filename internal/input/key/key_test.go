package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"ArrowUp", KeyUp},
		{"up", KeyUp},
		{"ArrowDown", KeyDown},
		{"Enter", KeyEnter},
		{"cr", KeyEnter},
		{"Backspace", KeyBackspace},
		{"DEL", KeyDelete},
		{"Esc", KeyEscape},
		{"nope", KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyFromName(tt.name))
		})
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "ArrowUp", KeyUp.String())
	assert.Equal(t, "Escape", KeyEscape.String())
	assert.Equal(t, "Key(999)", Key(999).String())
	assert.True(t, KeyLeft.IsArrowKey())
	assert.False(t, KeyRune.IsSpecial())
}

func TestModifierFromName(t *testing.T) {
	assert.Equal(t, ModCtrl, ModifierFromName("Ctrl"))
	assert.Equal(t, ModMeta, ModifierFromName("cmd"))
	assert.Equal(t, ModPrimary, ModifierFromName("Mod"))
	assert.Equal(t, ModNone, ModifierFromName("hyper"))

	assert.Equal(t, ModMeta, primaryModifier("darwin"))
	assert.Equal(t, ModCtrl, primaryModifier("linux"))
}

func TestModifierString(t *testing.T) {
	assert.Equal(t, "", ModNone.String())
	assert.Equal(t, "Ctrl-Shift", ModShift.With(ModCtrl).String())
	assert.Equal(t, "Alt", ModAlt.With(ModShift).Without(ModShift).String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Combo
	}{
		{"a", Combo{Key: KeyRune, Rune: 'a'}},
		{"A", Combo{Key: KeyRune, Rune: 'A'}},
		{"-", Combo{Key: KeyRune, Rune: '-'}},
		{"Space", Combo{Key: KeyRune, Rune: ' '}},
		{"Enter", Combo{Key: KeyEnter}},
		{"ArrowDown", Combo{Key: KeyDown}},
		{"Mod-Enter", Combo{Key: KeyEnter, Modifiers: ModPrimary}},
		{"Shift-ArrowUp", Combo{Key: KeyUp, Modifiers: ModShift}},
		{"Ctrl+S", Combo{Key: KeyRune, Rune: 's', Modifiers: ModCtrl}},
		{"Ctrl+Shift+P", Combo{Key: KeyRune, Rune: 'p', Modifiers: ModCtrl}},
		{"Ctrl--", Combo{Key: KeyRune, Rune: '-', Modifiers: ModCtrl}},
		{"<C-s>", Combo{Key: KeyRune, Rune: 's', Modifiers: ModCtrl}},
		{"<CR>", Combo{Key: KeyEnter}},
		{"<Esc>", Combo{Key: KeyEscape}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			ev, err := Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ev.Combo())
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrEmptySpec)

	for _, spec := range []string{"Hyper-Enter", "Ctrl-Nope", "<>"} {
		_, err := Parse(spec)
		assert.ErrorIs(t, err, ErrInvalidSpec, spec)
	}

	assert.Panics(t, func() { MustParse("Ctrl-Nope") })
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{NewSpecialEvent(KeyEnter, ModCtrl), "Ctrl-Enter"},
		{NewSpecialEvent(KeyUp, ModShift), "Shift-ArrowUp"},
		{NewRuneEvent('A', ModShift), "A"},
		{NewRuneEvent(' ', ModNone), "Space"},
		{NewSpecialEvent(KeyBackspace, ModNone), "Backspace"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ev.String())
		})
	}
}

func TestEventMatches(t *testing.T) {
	ev := NewSpecialEvent(KeyEnter, ModPrimary)

	assert.True(t, ev.Matches("Mod-Enter"))
	assert.False(t, ev.Matches("Enter"))
	assert.False(t, ev.Matches("Hyper-Enter"))
	assert.True(t, NewRuneEvent('x', ModNone).IsChar())
	assert.False(t, NewRuneEvent('x', ModCtrl).IsChar())
}

func TestNormalizeSpec(t *testing.T) {
	got, err := NormalizeSpec("ctrl+enter")
	require.NoError(t, err)
	assert.Equal(t, "Ctrl-Enter", got)

	_, err = NormalizeSpec("")
	assert.Error(t, err)
}
