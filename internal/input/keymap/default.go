package keymap

// Block editing actions.
const (
	ActionArrowUp    = "block.arrowUp"
	ActionArrowDown  = "block.arrowDown"
	ActionEnter      = "block.enter"
	ActionSplitBlock = "block.splitBlock"
	ActionBackspace  = "block.backspace"
	ActionDelete     = "block.delete"
	ActionEscape     = "block.escape"
)

// BlockKeymapName is the name the block keymap is registered under.
const BlockKeymapName = "block"

// BlockKeymap returns the block editing bindings.
func BlockKeymap() *Keymap {
	return &Keymap{
		Name:     BlockKeymapName,
		Priority: PriorityHigh,
		Source:   "default",
		Bindings: []Binding{
			{Keys: "ArrowUp", Action: ActionArrowUp, Description: "Move to the previous block at a block edge"},
			{Keys: "ArrowDown", Action: ActionArrowDown, Description: "Move to the next block at a block edge"},
			{Keys: "Enter", Action: ActionEnter, Description: "Open a paragraph after an atomic block"},
			{Keys: "Mod-Enter", Action: ActionSplitBlock, Description: "Create a block after the current one"},
			{Keys: "Backspace", Action: ActionBackspace, Description: "Remove an empty paragraph, moving back"},
			{Keys: "Delete", Action: ActionDelete, Description: "Remove an empty paragraph, moving forward"},
			{Keys: "Escape", Action: ActionEscape, Description: "Leave a node or range selection"},
		},
	}
}

// LoadDefaults registers the default keymaps, applying overrides to the
// block keymap.
func LoadDefaults(r *Registry, overrides map[string]string) error {
	km := BlockKeymap()
	if len(overrides) > 0 {
		var err error
		if km, err = km.Override(overrides); err != nil {
			return err
		}
		km.Source = "config"
	}
	return r.Register(km)
}
