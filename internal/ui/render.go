package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nebula-linux/nebula-keybind-menu/internal/keybind"
)

// renderMain renders the whole screen for the current size.
func (m Model) renderMain() string {
	ch := contentHeight(m.height)

	lines := make([]string, 0, m.height)
	lines = append(lines, m.renderTitle(), "")
	lines = append(lines, strings.Split(m.renderSearch(), "\n")...)
	lines = append(lines, "")

	content := m.renderContent(ch)
	lines = append(lines, content...)
	for i := len(content); i < ch; i++ {
		lines = append(lines, "")
	}
	lines = append(lines, m.renderFooter())

	// Clip to the terminal so a tiny window never scrolls the alt screen.
	return lipgloss.NewStyle().
		MaxWidth(m.width).
		MaxHeight(m.height).
		Render(strings.Join(lines, "\n"))
}

// renderTitle renders the title with the close hint flush right.
func (m Model) renderTitle() string {
	left, right, gap := spread(titleText, closeHint, m.width)
	if right == "" {
		return m.styles.Title.Render(left)
	}
	return m.styles.Title.Render(left) + strings.Repeat(" ", gap) + m.styles.Hint.Render(right)
}

// renderSearch renders the query input inside its border.
func (m Model) renderSearch() string {
	inner := m.width - 2
	if inner < 1 {
		inner = 1
	}
	return m.styles.InputBox.Width(inner).Render(m.input.View())
}

// renderContent renders at most height lines of the filtered list, starting
// at the menu's scroll offset.
func (m Model) renderContent(height int) []string {
	if height <= 0 {
		return nil
	}

	view := m.menu.View()
	if len(view) == 0 {
		return []string{m.styles.Empty.Render(truncate(emptyText, m.width))}
	}

	lines := make([]string, 0, height)
	skip := m.menu.Offset()
	for i, e := range view {
		for _, line := range m.renderEntry(e, i == m.menu.Selected()) {
			if skip > 0 {
				skip--
				continue
			}
			if len(lines) == height {
				return lines
			}
			lines = append(lines, line)
		}
	}
	return lines
}

// renderEntry renders one entry block: keys and name, the description when
// present, and a blank separator.
func (m Model) renderEntry(e keybind.Entry, selected bool) []string {
	gutter, marker := "", ""
	inner := m.width
	if m.width > gutterWidth {
		inner = m.width - gutterWidth
		gutter = strings.Repeat(" ", gutterWidth)
		marker = m.styles.Title.Render(selectedMarker)
	}

	head := entryLine(e.Keys, e.Name, inner)
	desc := ""
	hasDesc := strings.TrimSpace(e.Desc) != ""
	if hasDesc {
		desc = descLine(e.Desc, inner)
	}

	var out []string
	if selected {
		out = append(out, marker+m.styles.Selected.Render(padRight(head, inner)))
		if hasDesc {
			out = append(out, marker+m.styles.Selected.Render(padRight(desc, inner)))
		}
	} else {
		out = append(out, gutter+m.styleHead(e, head))
		if hasDesc {
			out = append(out, gutter+m.styles.Desc.Render(desc))
		}
	}
	return append(out, "")
}

// styleHead colors the keys and name parts of an already laid out head line.
func (m Model) styleHead(e keybind.Entry, head string) string {
	keys := e.Keys
	if !strings.HasPrefix(head, keys) {
		return m.styles.Keys.Render(head)
	}
	rest := strings.TrimPrefix(head, keys)
	name := strings.TrimLeft(rest, " ")
	gap := rest[:len(rest)-len(name)]
	return m.styles.Keys.Render(keys) + gap + m.styles.Name.Render(name)
}

// blockHeight returns the number of lines renderEntry produces for e.
func blockHeight(e keybind.Entry) int {
	if strings.TrimSpace(e.Desc) == "" {
		return 2
	}
	return 3
}

func blockHeights(entries []keybind.Entry) []int {
	heights := make([]int, len(entries))
	for i, e := range entries {
		heights[i] = blockHeight(e)
	}
	return heights
}
