package key

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// Combo identifies a key press independent of when it happened.
// It is comparable and used as a lookup key.
type Combo struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character without
// command modifiers.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) && !e.Modifiers.Has(ModCtrl|ModAlt|ModMeta)
}

// Combo returns the event's lookup key. Shift is dropped for characters
// because it is already reflected in the rune.
func (e Event) Combo() Combo {
	mods := e.Modifiers
	if e.IsRune() {
		mods = mods.Without(ModShift)
	}
	return Combo{Key: e.Key, Rune: e.Rune, Modifiers: mods}
}

// String returns the canonical spec for the event, e.g. "Ctrl-Enter",
// "Shift-ArrowUp" or "a".
func (e Event) String() string {
	return e.Combo().String()
}

// String returns the canonical spec for the combination.
func (c Combo) String() string {
	name := c.Key.String()
	if c.Key == KeyRune {
		name = string(c.Rune)
		if c.Rune == ' ' {
			name = "Space"
		}
	}
	if c.Modifiers == ModNone {
		return name
	}
	return c.Modifiers.String() + "-" + name
}

// Equals returns true if two events represent the same key press.
// Timestamps are not compared.
func (e Event) Equals(other Event) bool {
	return e.Combo() == other.Combo()
}

// Matches checks if this event matches a key specification string.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e.Equals(parsed)
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key, e.Rune, strings.ToLower(e.Modifiers.String()))
}
