package app

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/blockstorm/internal/input/key"
)

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.Escape,
	tcell.KeyEnter:      key.Enter,
	tcell.KeyTab:        key.Tab,
	tcell.KeyBackspace:  key.Backspace,
	tcell.KeyBackspace2: key.Backspace,
	tcell.KeyDelete:     key.Delete,
	tcell.KeyHome:       key.Home,
	tcell.KeyEnd:        key.End,
	tcell.KeyPgUp:       key.PageUp,
	tcell.KeyPgDn:       key.PageDown,
	tcell.KeyUp:         key.Up,
	tcell.KeyDown:       key.Down,
	tcell.KeyLeft:       key.Left,
	tcell.KeyRight:      key.Right,
}

// KeyEvent translates a terminal key event. Control characters other than
// the named keys arrive as Ctrl plus a lower-case letter. Keys with no
// counterpart, such as function keys, report false.
func KeyEvent(ev *tcell.EventKey) (key.Event, bool) {
	mods := convertMods(ev.Modifiers())

	if k, ok := specialKeys[ev.Key()]; ok {
		out := key.NewSpecialEvent(k, mods)
		out.Timestamp = ev.When()
		return out, true
	}

	var r rune
	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		r = ev.Rune()
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		r = rune('a' + (k - tcell.KeyCtrlA))
		mods = mods.With(key.ModCtrl)
	default:
		return key.Event{}, false
	}
	if mods.Has(key.ModCtrl) {
		r = unicode.ToLower(r)
	}
	out := key.NewRuneEvent(r, mods)
	out.Timestamp = ev.When()
	return out, true
}

func convertMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}
