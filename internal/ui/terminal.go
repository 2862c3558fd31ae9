package ui

import (
	"os"

	"golang.org/x/term"
)

func isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// terminalSize returns the size of f, or the fallback size when it cannot be
// queried.
func terminalSize(f *os.File) (int, int) {
	if f == nil {
		return DefaultWidth, DefaultHeight
	}
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return normalizeSize(w, h)
}
