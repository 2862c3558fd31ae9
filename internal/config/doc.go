// Package config locates and parses the keybind menu configuration.
//
// # Configuration Discovery
//
// Load tries the following files in order and returns the first one that
// parses and lists at least one keybind:
//
//  1. The explicit path, when one is given (--config)
//  2. $XDG_CONFIG_HOME/nebula-keybind-menu/config.{toml,yaml,yml}
//  3. ~/.config/nebula-keybind-menu/config.{toml,yaml,yml}
//  4. /usr/share/nebula-keybind-menu/config.{toml,yaml,yml}
//  5. The defaults embedded in the binary
//
// Missing files, unreadable files, parse errors and empty keybind lists all
// fall through to the next candidate. They are recorded in Result.Attempts
// and logged at debug level; Load itself never fails.
//
// # File Format
//
// TOML:
//
//	theme = "Nightfox"
//
//	[[keybinds]]
//	keys = "SUPER + SPACE"
//	name = "Launcher"
//	desc = "Open app launcher"
//
// YAML (selected by the .yaml or .yml extension):
//
//	theme: Nightfox
//	keybinds:
//	  - keys: SUPER + SPACE
//	    name: Launcher
//	    desc: Open app launcher
//
// The theme key is optional. Unknown keys are ignored.
//
// # Path Expansion
//
// A leading tilde is expanded to the home directory and relative paths are
// made absolute, both for the explicit path and for $XDG_CONFIG_HOME.
package config
