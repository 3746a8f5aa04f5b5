// Package config provides the configuration system for blockstorm.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← BLOCKSTORM_EDITOR_ENABLE_ESCAPE_HANDLING
//	├─────────────────────────────┤
//	│  2. Config File             │  ← blockstorm.toml or blockstorm.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: Configuration file loading (TOML, YAML, environment variables)
//   - watcher: Change notification for live reload
//
// # Settings
//
//	[editor]
//	enableArrowNavigation = true
//	enableEnterHandling = true
//	enableEscapeHandling = true
//	enableBlockShortcuts = true
//
//	[log]
//	level = "info"
//	file = "/tmp/blockstorm.log"
//
//	[keymap]
//	"Mod-Enter" = "block.splitBlock"
//	"Escape" = ""
//
// Each editor flag gates one command family. Keymap entries override the
// block bindings; an empty action removes a binding.
package config
