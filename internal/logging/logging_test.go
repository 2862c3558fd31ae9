package logging

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_NoPathDiscards(t *testing.T) {
	l, err := New(Options{})
	require.NoError(t, err)
	assert.False(t, l.Active())
	l.Info("dropped")
	assert.NoError(t, l.Close())
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "menu.log")
	l, err := New(Options{Path: path, Level: "debug"})
	require.NoError(t, err)
	require.True(t, l.Active())

	l.Info("loaded keybinds", "count", 4)
	l.V(1).Info("debug detail")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "loaded keybinds", rec[MessageKey])
	assert.EqualValues(t, 4, rec["count"])
	assert.Contains(t, rec, TimeStampKey)
}

func TestNew_InfoLevelDropsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.log")
	l, err := New(Options{Path: path})
	require.NoError(t, err)

	l.V(1).Info("hidden")
	l.Info("shown")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(Options{Path: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"INFO":    zapcore.InfoLevel,
		"debug":   zapcore.DebugLevel,
		" warn ":  zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestContextRoundTrip(t *testing.T) {
	assert.Equal(t, logr.Discard(), FromContext(context.Background()))

	path := filepath.Join(t.TempDir(), "menu.log")
	l, err := New(Options{Path: path})
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	ctx := WithLogger(context.Background(), l.Logger)
	assert.Equal(t, l.GetSink(), FromContext(ctx).GetSink())
}

func TestCloseNil(t *testing.T) {
	var l *Logger
	assert.NoError(t, l.Close())
	assert.False(t, l.Active())
}
