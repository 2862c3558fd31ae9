package ui

import (
	"github.com/charmbracelet/bubbles/help"
)

// newHelp returns the footer help model styled for theme.
func newHelp(styles Styles) help.Model {
	h := help.New()
	h.ShortSeparator = " • "
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.ShortSeparator = styles.HelpDesc
	h.Styles.Ellipsis = styles.HelpDesc
	h.Styles.FullKey = styles.HelpKey
	h.Styles.FullDesc = styles.HelpDesc
	h.Styles.FullSeparator = styles.HelpDesc
	return h
}

// renderFooter renders the one-line key hints, cut to the terminal width.
func (m Model) renderFooter() string {
	return m.help.ShortHelpView(m.keys.ShortHelp())
}
