package keymap

import "github.com/dshills/blockstorm/internal/input/key"

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key spec that triggers this binding.
	// Formats: "Enter", "Mod-Enter", "Shift-ArrowUp", "<C-s>"
	Keys string

	// Action is the command to execute.
	// Examples: "block.enter", "block.escape"
	Action string

	// Description provides documentation for the binding.
	Description string

	// Priority is added to the keymap priority when bindings compete.
	Priority int
}

// NewBinding creates a new binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{
		Keys:   keys,
		Action: action,
	}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithPriority sets the priority for this binding.
func (b Binding) WithPriority(priority int) Binding {
	b.Priority = priority
	return b
}

// ParsedBinding is a binding with its key spec resolved.
type ParsedBinding struct {
	Binding
	Combo key.Combo
}

// Match is the result of a lookup.
type Match struct {
	*ParsedBinding

	// Keymap is the keymap containing the binding.
	Keymap *Keymap

	// Score is the combined keymap and binding priority.
	Score int

	// seq orders keymaps by registration.
	seq int
}

// less reports whether m wins over other.
func (m Match) less(other Match) bool {
	if m.Score != other.Score {
		return m.Score > other.Score
	}
	return m.seq > other.seq
}
