// Package key provides key event types and parsing for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (named keys or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with modifiers and timestamp
//
// # Key Specifications
//
// Key specifications use the notation of browser editor keymaps, with a
// few aliases:
//
//   - Simple keys: "a", "Enter", "ArrowUp", "Escape"
//   - With modifiers: "Mod-Enter", "Shift-ArrowDown", "Ctrl+S"
//   - Bracketed: "<C-s>", "<CR>", "<Esc>"
//
// "Mod" is the platform's primary modifier: Meta (Cmd) on macOS, Ctrl
// everywhere else.
package key
