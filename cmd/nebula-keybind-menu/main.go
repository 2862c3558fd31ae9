package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nebula-linux/nebula-keybind-menu/internal/app"
	"github.com/nebula-linux/nebula-keybind-menu/internal/ui"
)

const (
	profileEnv = "NEBULA_KEYBIND_MENU_PROFILE"
	logFileEnv = "NEBULA_KEYBIND_MENU_LOG"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "nebula-keybind-menu: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "nebula-keybind-menu",
		Short: "Search the desktop keybinds",
		Long: "Shows the configured desktop keybinds in a full-screen menu.\n" +
			"Type to filter by keys, name or description; Esc closes the menu.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Profile = os.Getenv(profileEnv) != ""
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "keybind config file (default: search the usual locations)")
	flags.StringVar(&opts.ThemeName, "theme", "", "initial theme: "+strings.Join(ui.ThemeNames(), "|"))
	flags.StringVar(&opts.LogFile, "log-file", os.Getenv(logFileEnv), "write JSON logs to this file (env "+logFileEnv+")")
	flags.StringVar(&opts.LogLevel, "log-level", "info", "log level: debug|info|warn|error")

	return cmd
}
