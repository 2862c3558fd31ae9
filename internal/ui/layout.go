package ui

// Fallback terminal size, used when the real size cannot be queried.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Vertical layout. Everything that is not content is chrome.
const (
	titleHeight  = 1
	searchHeight = 3 // rounded border around a single input line
	footerHeight = 1
	// chromeHeight counts the title, a gap, the search box, a gap and the footer.
	chromeHeight = titleHeight + 1 + searchHeight + 1 + footerHeight
)

// gutterWidth is the column reserved left of each entry for the selection marker.
const gutterWidth = 2

const (
	titleText       = "  Keybinds"
	closeHint       = "Esc to close"
	placeholderText = "Type to search keybinds"
	emptyText       = "No matches. Try a different query."
	selectedMarker  = "▌ "
)

// contentHeight returns the number of lines left for entries.
func contentHeight(height int) int {
	if h := height - chromeHeight; h > 0 {
		return h
	}
	return 0
}

// normalizeSize replaces unusable dimensions with the fallback size.
func normalizeSize(width, height int) (int, int) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return width, height
}
