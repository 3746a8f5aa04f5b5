package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/blockstorm/internal/input/key"
)

func TestKeymapValidate(t *testing.T) {
	tests := []struct {
		name    string
		keymap  *Keymap
		wantErr bool
	}{
		{"valid", NewKeymap("k").Add("Enter", "a").Add("Mod-Enter", "b"), false},
		{"empty keys", NewKeymap("k").Add("", "a"), true},
		{"empty action", NewKeymap("k").Add("Enter", ""), true},
		{"bad spec", NewKeymap("k").Add("Hyper-Enter", "a"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.keymap.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBlockKeymap(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, LoadDefaults(r, nil))

	tests := []struct {
		ev   key.Event
		want string
	}{
		{key.NewSpecialEvent(key.KeyUp, key.ModNone), ActionArrowUp},
		{key.NewSpecialEvent(key.KeyDown, key.ModNone), ActionArrowDown},
		{key.NewSpecialEvent(key.KeyEnter, key.ModNone), ActionEnter},
		{key.NewSpecialEvent(key.KeyEnter, key.ModPrimary), ActionSplitBlock},
		{key.NewSpecialEvent(key.KeyBackspace, key.ModNone), ActionBackspace},
		{key.NewSpecialEvent(key.KeyDelete, key.ModNone), ActionDelete},
		{key.NewSpecialEvent(key.KeyEscape, key.ModNone), ActionEscape},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			m := r.Lookup(tt.ev)
			require.NotNil(t, m)
			assert.Equal(t, tt.want, m.Action)
			assert.Equal(t, PriorityHigh, m.Score)
		})
	}

	assert.Nil(t, r.Lookup(key.NewRuneEvent('x', key.ModNone)))
	assert.Nil(t, r.Lookup(key.NewSpecialEvent(key.KeyUp, key.ModShift)))
}

func TestRegistryPriority(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(NewKeymap("low").Add("Enter", "low.enter")))
	require.NoError(t, LoadDefaults(r, nil))
	require.NoError(t, r.Register(NewKeymap("later").Add("Enter", "later.enter")))

	enter := key.NewSpecialEvent(key.KeyEnter, key.ModNone)
	assert.Equal(t, ActionEnter, r.Lookup(enter).Action)

	all := r.LookupAll(enter)
	require.Len(t, all, 3)
	assert.Equal(t, "later.enter", all[1].Action)
	assert.Equal(t, "low.enter", all[2].Action)

	r.Unregister(BlockKeymapName)
	assert.Equal(t, "later.enter", r.Lookup(enter).Action)
	assert.Equal(t, []string{"later", "low"}, r.Names())
}

func TestRegistryReplacesByName(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(NewKeymap("k").Add("Enter", "one")))
	require.NoError(t, r.Register(NewKeymap("k").Add("Escape", "two")))

	assert.Nil(t, r.Lookup(key.NewSpecialEvent(key.KeyEnter, key.ModNone)))
	assert.Equal(t, "two", r.Lookup(key.NewSpecialEvent(key.KeyEscape, key.ModNone)).Action)

	km, ok := r.Get("k")
	require.True(t, ok)
	assert.Len(t, km.Bindings, 1)

	assert.ErrorIs(t, r.Register(nil), ErrNilKeymap)
}

func TestOverride(t *testing.T) {
	r := NewRegistry()
	err := LoadDefaults(r, map[string]string{
		"Alt+Enter": ActionSplitBlock,
		"Mod-Enter": "",
		"Escape":    "",
	})
	require.NoError(t, err)

	km, ok := r.Get(BlockKeymapName)
	require.True(t, ok)
	assert.Equal(t, "config", km.Source)
	assert.Nil(t, r.Lookup(key.NewSpecialEvent(key.KeyEscape, key.ModNone)))
	assert.Nil(t, r.Lookup(key.NewSpecialEvent(key.KeyEnter, key.ModPrimary)))
	assert.Equal(t, ActionSplitBlock, r.Lookup(key.NewSpecialEvent(key.KeyEnter, key.ModAlt)).Action)
	assert.Len(t, BlockKeymap().Bindings, 7)

	_, err = BlockKeymap().Override(map[string]string{"Hyper-x": "a"})
	assert.Error(t, err)
}
