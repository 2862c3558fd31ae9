package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebula-linux/nebula-keybind-menu/internal/ui"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	return dir
}

func notTerminal(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "tty"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestRunRefusesNonTerminal(t *testing.T) {
	isolate(t)
	f := notTerminal(t)

	err := Run(context.Background(), Options{Input: f, Output: f, Stderr: &bytes.Buffer{}})
	assert.ErrorIs(t, err, ui.ErrNotTerminal)
}

func TestRunProfilePrintsToStderrWithoutLogFile(t *testing.T) {
	isolate(t)
	f := notTerminal(t)
	var stderr bytes.Buffer

	err := Run(context.Background(), Options{Input: f, Output: f, Profile: true, Stderr: &stderr})
	require.ErrorIs(t, err, ui.ErrNotTerminal)
	assert.Contains(t, stderr.String(), "nebula-keybind-menu: config loaded after ")
	assert.NotContains(t, stderr.String(), "terminal ready")
}

func TestRunWritesLogFile(t *testing.T) {
	dir := isolate(t)
	f := notTerminal(t)
	logPath := filepath.Join(dir, "logs", "menu.log")
	var stderr bytes.Buffer

	err := Run(context.Background(), Options{
		Input:    f,
		Output:   f,
		LogFile:  logPath,
		LogLevel: "debug",
		Profile:  true,
		Stderr:   &stderr,
	})
	require.ErrorIs(t, err, ui.ErrNotTerminal)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "startup timing")
	assert.Contains(t, string(data), "menu exited")
	assert.Empty(t, stderr.String())
}

func TestRunRejectsBadLogLevel(t *testing.T) {
	dir := isolate(t)
	err := Run(context.Background(), Options{LogFile: filepath.Join(dir, "menu.log"), LogLevel: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init logging")
}

func TestResolveTheme(t *testing.T) {
	tests := []struct {
		name       string
		flag       string
		fromConfig string
		want       string
	}{
		{name: "default", want: "Nebula"},
		{name: "config", fromConfig: "Kanagawa", want: "Kanagawa"},
		{name: "flag wins", flag: "Slate", fromConfig: "Kanagawa", want: "Slate"},
		{name: "trimmed", flag: "  Nightfox ", want: "Nightfox"},
		{name: "unknown flag", flag: "Dracula", fromConfig: "Slate", want: "Nebula"},
		{name: "unknown config", fromConfig: "Dracula", want: "Nebula"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveTheme(logr.Discard(), tt.flag, tt.fromConfig))
		})
	}
}

func TestProfileMarksOnce(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	p := newProfile(true, start)
	tick := start
	p.now = func() time.Time {
		tick = tick.Add(5 * time.Millisecond)
		return tick
	}

	p.mark("config loaded")
	p.mark("first frame")
	p.mark("first frame")

	var out bytes.Buffer
	p.report(logr.Discard(), false, &out)
	assert.Equal(t,
		"nebula-keybind-menu: config loaded after 5ms\nnebula-keybind-menu: first frame after 10ms\n",
		out.String())
}

func TestProfileDisabled(t *testing.T) {
	p := newProfile(false, time.Now())
	p.mark("config loaded")

	var out bytes.Buffer
	p.report(logr.Discard(), false, &out)
	assert.Empty(t, out.String())
	assert.Empty(t, p.snapshot())
}
