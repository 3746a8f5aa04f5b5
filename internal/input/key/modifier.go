package key

import (
	"runtime"
	"strings"
)

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// ModPrimary is the modifier that "Mod" resolves to.
var ModPrimary = primaryModifier(runtime.GOOS)

func primaryModifier(goos string) Modifier {
	if goos == "darwin" {
		return ModMeta
	}
	return ModCtrl
}

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// String returns a representation like "Ctrl-Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "-")
}

// modifierNameMap maps modifier names (lowercase) to Modifier values.
var modifierNameMap = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"c":       ModCtrl,
	"alt":     ModAlt,
	"a":       ModAlt,
	"option":  ModAlt,
	"shift":   ModShift,
	"s":       ModShift,
	"meta":    ModMeta,
	"m":       ModMeta,
	"cmd":     ModMeta,
	"d":       ModMeta,
}

// ModifierFromName returns the Modifier for a given name (case-insensitive).
// "Mod" resolves to ModPrimary. Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "mod" {
		return ModPrimary
	}
	return modifierNameMap[name]
}
