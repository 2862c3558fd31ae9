package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncate shortens a string to the given cell width, adding an ellipsis if
// there is room for one.
func truncate(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}

// padRight pads a string with spaces to the given cell width.
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// entryLine places keys on the left and name flush right within width.
// The name gives way first when both do not fit.
func entryLine(keys, name string, width int) string {
	if width <= 0 {
		return ""
	}
	kw := runewidth.StringWidth(keys)
	if kw >= width {
		return truncate(keys, width)
	}
	name = truncate(name, width-kw-1)
	gap := width - kw - runewidth.StringWidth(name)
	return keys + strings.Repeat(" ", gap) + name
}

// descLine centers a description between dashes, or returns it bare when
// the line is too narrow for decoration.
func descLine(desc string, width int) string {
	trimmed := strings.TrimSpace(desc)
	if width <= 0 {
		return ""
	}
	dw := runewidth.StringWidth(trimmed)
	if width < dw+4 {
		return truncate(trimmed, width)
	}
	dashes := width - dw - 2
	left := dashes / 2
	right := dashes - left
	return strings.Repeat("-", left) + " " + trimmed + " " + strings.Repeat("-", right)
}

// spread puts left and right at opposite ends of width, dropping right when
// both do not fit.
func spread(left, right string, width int) (string, string, int) {
	lw := runewidth.StringWidth(left)
	rw := runewidth.StringWidth(right)
	if lw+1+rw > width {
		return truncate(left, width), "", 0
	}
	return left, right, width - lw - rw
}
