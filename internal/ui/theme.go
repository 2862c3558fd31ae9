package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used by the menu.
type Theme struct {
	Name string

	// Text colors
	Text   string
	Muted  string
	Faint  string
	Accent string
	Keys   string

	// Selection colors
	SelectionBg   string
	SelectionText string

	// Border colors
	Border      string
	BorderFocus string
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Title       lipgloss.Style
	Hint        lipgloss.Style
	InputBox    lipgloss.Style
	InputText   lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style
	Keys        lipgloss.Style
	Name        lipgloss.Style
	Desc        lipgloss.Style
	Selected    lipgloss.Style
	Empty       lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)),

		InputText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Placeholder: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BorderFocus)),

		Keys: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Keys)).
			Bold(true),

		Name: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Desc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),

		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),
	}
}

// Theme definitions

var themes = map[string]Theme{
	"Nebula":   nebulaTheme(),
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nebula", "Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name, falling back to the default theme.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nebulaTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nebulaTheme() Theme {
	// ANSI-leaning palette so the menu blends with the desktop's terminal colors.
	return Theme{
		Name: "Nebula",

		Text:   "#e5e5e5",
		Muted:  "#8a8a8a",
		Faint:  "#5c5c5c",
		Accent: "#5fd75f", // green title
		Keys:   "#ffffff",

		SelectionBg:   "#303030",
		SelectionText: "#ffffff",

		Border:      "#5c5c5c",
		BorderFocus: "#5fd75f",
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Text:   "#cdcecf", // fg1
		Muted:  "#738091", // comment
		Faint:  "#71839b", // fg3
		Accent: "#719cd6", // blue
		Keys:   "#dbc074", // yellow

		SelectionBg:   "#2b3b51", // sel0
		SelectionText: "#cdcecf", // fg1

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Text:   "#DCD7BA", // fujiWhite
		Muted:  "#C8C093", // oldWhite
		Faint:  "#727169", // fujiGray
		Accent: "#98BB6C", // springGreen
		Keys:   "#E6C384", // carpYellow

		SelectionBg:   "#2D4F67", // waveBlue1
		SelectionText: "#DCD7BA", // fujiWhite

		Border:      "#54546D", // sumiInk6
		BorderFocus: "#7E9CD8", // crystalBlue
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Text:   "#f1f5f9", // slate-100
		Muted:  "#94a3b8", // slate-400
		Faint:  "#64748b", // slate-500
		Accent: "#38bdf8", // sky-400
		Keys:   "#f59e0b", // amber-500

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400
	}
}
