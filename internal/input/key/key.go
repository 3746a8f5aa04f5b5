package key

import (
	"fmt"
	"strings"
)

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyRune is used for character keys (letters, numbers, punctuation).
	// The actual character is stored in Event.Rune.
	KeyRune
)

// String returns the canonical name of the key, as used in key specs.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyUp:
		return "ArrowUp"
	case KeyDown:
		return "ArrowDown"
	case KeyLeft:
		return "ArrowLeft"
	case KeyRight:
		return "ArrowRight"
	case KeyRune:
		return "Rune"
	default:
		return fmt.Sprintf("Key(%d)", k)
	}
}

// IsSpecial returns true if this is a special (non-character) key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// keyNameMap maps key names (lowercase) to Key values.
var keyNameMap = map[string]Key{
	"escape":     KeyEscape,
	"esc":        KeyEscape,
	"enter":      KeyEnter,
	"return":     KeyEnter,
	"cr":         KeyEnter,
	"tab":        KeyTab,
	"backspace":  KeyBackspace,
	"bs":         KeyBackspace,
	"delete":     KeyDelete,
	"del":        KeyDelete,
	"home":       KeyHome,
	"end":        KeyEnd,
	"pageup":     KeyPageUp,
	"pgup":       KeyPageUp,
	"pagedown":   KeyPageDown,
	"pgdn":       KeyPageDown,
	"arrowup":    KeyUp,
	"up":         KeyUp,
	"arrowdown":  KeyDown,
	"down":       KeyDown,
	"arrowleft":  KeyLeft,
	"left":       KeyLeft,
	"arrowright": KeyRight,
	"right":      KeyRight,
}

// KeyFromName returns the Key for a given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	return KeyNone
}
