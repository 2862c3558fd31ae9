package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/nebula-linux/nebula-keybind-menu/internal/config"
	"github.com/nebula-linux/nebula-keybind-menu/internal/logging"
	"github.com/nebula-linux/nebula-keybind-menu/internal/ui"
)

// Options configure the keybind menu.
type Options struct {
	ConfigPath string // empty searches the default locations
	ThemeName  string // empty uses the config theme, then the default
	LogFile    string // empty disables logging
	LogLevel   string
	Profile    bool // record startup timings

	// Input and Output default to os.Stdin and os.Stdout.
	Input  *os.File
	Output *os.File
	// Stderr receives profile timings when there is no log file.
	// Defaults to os.Stderr.
	Stderr io.Writer
}

// Run shows the menu until the user closes it or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	logger, err := logging.New(logging.Options{Path: opts.LogFile, Level: opts.LogLevel})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Close() }()

	log := logger.WithName("app")
	ctx = logging.WithLogger(ctx, logger.Logger)

	prof := newProfile(opts.Profile, time.Now())

	cfg := config.Load(ctx, opts.ConfigPath)
	prof.mark("config loaded")

	uiOpts := ui.Options{
		Entries:      cfg.Keybinds,
		ThemeName:    resolveTheme(log, opts.ThemeName, cfg.Theme),
		Input:        opts.Input,
		Output:       opts.Output,
		OnReady:      func() { prof.mark("terminal ready") },
		OnFirstFrame: func() { prof.mark("first frame") },
	}
	err = runUI(ctx, uiOpts)

	// The terminal is back in cooked mode here, so stderr is safe to use.
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	prof.report(log, logger.Active(), stderr)

	if err != nil {
		log.Error(err, "menu exited")
		return err
	}
	log.V(1).Info("menu closed")
	return nil
}

// runUI runs the menu, turning a panic into an error. Bubble Tea restores the
// terminal before the panic reaches this frame.
func runUI(ctx context.Context, opts ui.Options) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("menu panicked: %v", r)
		}
	}()
	return ui.Run(ctx, opts)
}

// resolveTheme picks the flag theme, then the config theme, then the default.
// Unknown names fall back to the default.
func resolveTheme(log logr.Logger, flag, fromConfig string) string {
	for _, name := range []string{flag, fromConfig} {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if slices.Contains(ui.ThemeNames(), name) {
			return name
		}
		log.Info("unknown theme, using default", "theme", name)
		break
	}
	return ui.ThemeNames()[0]
}
