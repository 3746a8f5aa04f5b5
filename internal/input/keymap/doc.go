// Package keymap maps key presses to editor actions.
//
// A Keymap is a named collection of bindings with a priority. The Registry
// holds every registered keymap and resolves a key event to the binding
// that wins: the highest combined keymap and binding priority, then the
// most recently registered keymap.
//
// The block keymap binds the block editing keys at PriorityHigh so they
// take precedence over any default editing behavior:
//
//	ArrowUp    block.arrowUp
//	ArrowDown  block.arrowDown
//	Enter      block.enter
//	Mod-Enter  block.splitBlock
//	Backspace  block.backspace
//	Delete     block.delete
//	Escape     block.escape
//
// # Usage
//
//	registry := keymap.NewRegistry()
//	if err := registry.Register(keymap.BlockKeymap()); err != nil {
//	    return err
//	}
//	if match := registry.Lookup(ev); match != nil {
//	    // dispatch match.Action
//	}
package keymap
