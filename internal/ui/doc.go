// Package ui implements the keybind menu as a Bubble Tea program.
//
// # Screen Layout
//
//	  Keybinds                                  Esc to close
//
//	╭──────────────────────────────────────────────────────╮
//	│ Type to search keybinds                              │
//	╰──────────────────────────────────────────────────────╯
//
//	▌ SUPER + SPACE                                 Launcher
//	▌ ------------------ Open app launcher -----------------
//
//	  SUPER + B                                  Web Browser
//	  ---------------- Open default browser ----------------
//
//	↑ up • ↓ down • pgdn page down • ctrl+t theme • esc close
//
// Every frame is laid out from the latest terminal size and clipped to it,
// so resizing never overflows the alternate screen.
//
// # Input
//
// Navigation and quit keys are matched first (see DefaultKeyMap). Everything
// else goes to the query's textinput.Model, and the menu is refiltered
// whenever the query text changes. Keys nobody handles are dropped.
//
// # State
//
// Query filtering, selection and scrolling live in state.Menu. The model
// only translates messages into Menu transitions and renders the result.
//
// # Terminal Lifecycle
//
// Run refuses to start unless both ends are terminals. Bubble Tea owns raw
// mode and the alternate screen and restores them when the program exits,
// whether by quit, context cancellation or a recovered panic.
package ui
