package state

import "github.com/nebula-linux/nebula-keybind-menu/internal/keybind"

// Menu holds the query, the filtered view derived from it and the selection
// within that view. The zero value is an empty menu.
type Menu struct {
	entries  []keybind.Entry
	query    string
	view     []keybind.Entry
	selected int
	offset   int
}

// NewMenu returns a menu showing every entry with the first one highlighted.
func NewMenu(entries []keybind.Entry) Menu {
	return Menu{
		entries: entries,
		view:    keybind.Filter(entries, ""),
	}
}

// SetQuery refilters the view when q differs from the current query and
// resets the selection and scroll position. It reports whether the query changed.
func (m *Menu) SetQuery(q string) bool {
	if q == m.query {
		return false
	}
	m.query = q
	m.view = keybind.Filter(m.entries, q)
	m.selected = 0
	m.offset = 0
	return true
}

// Query returns the text the view was last filtered with.
func (m Menu) Query() string { return m.query }

// Entries returns the full, unfiltered entry list.
func (m Menu) Entries() []keybind.Entry { return m.entries }

// View returns the entries matching the current query.
func (m Menu) View() []keybind.Entry { return m.view }

// Selected returns the index of the highlighted entry within View.
func (m Menu) Selected() int { return m.selected }

// Offset returns the first visible content line.
func (m Menu) Offset() int { return m.offset }

// Move shifts the selection by delta, clamped to the view.
func (m *Menu) Move(delta int) {
	m.selected = clamp(m.selected+delta, 0, len(m.view)-1)
}

// Top selects the first entry.
func (m *Menu) Top() {
	m.selected = 0
}

// Bottom selects the last entry.
func (m *Menu) Bottom() {
	m.selected = clamp(len(m.view)-1, 0, len(m.view)-1)
}

// Scroll adjusts the line offset so that the selected entry's block is
// visible. heights holds the rendered line count of every entry in View and
// visible is the number of content lines on screen. A block taller than the
// window is pinned at its first line.
func (m *Menu) Scroll(heights []int, visible int) {
	if visible <= 0 || len(heights) == 0 {
		m.offset = 0
		return
	}

	total := 0
	start := 0
	for i, h := range heights {
		if i == m.selected {
			start = total
		}
		total += h
	}
	end := start
	if m.selected < len(heights) {
		end = start + heights[m.selected]
	}

	if start < m.offset {
		m.offset = start
	}
	if end > m.offset+visible {
		m.offset = end - visible
		if m.offset > start {
			m.offset = start
		}
	}
	m.offset = clamp(m.offset, 0, max(0, total-visible))
}

// PageSize returns how many entries, counted from the selection, fit in
// visible lines. It is never less than one.
func (m Menu) PageSize(heights []int, visible int) int {
	n, used := 0, 0
	for i := m.selected; i < len(heights); i++ {
		if used+heights[i] > visible {
			break
		}
		used += heights[i]
		n++
	}
	if n < 1 {
		return 1
	}
	return n
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
