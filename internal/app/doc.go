// Package app is the composition root of the keybind menu.
//
// Run builds the logger, loads the keybind list and hands both to the UI:
//
//	Run()
//	  ├─> logging.New()     file logger, or discard
//	  ├─> config.Load()     first usable config, else built-in defaults
//	  ├─> resolveTheme()    --theme, then config theme, then default
//	  └─> ui.Run()          blocks until quit or cancel
//
// Config problems never stop the menu; they are logged and the next candidate
// is tried. Terminal problems, including a panic inside the UI, are returned
// after the terminal has been restored.
//
// With Options.Profile set, the time to load the config, acquire the terminal
// and draw the first frame is logged, or printed to stderr after exit when no
// log file is configured.
package app
