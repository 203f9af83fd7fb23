package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string

	Text   string
	Muted  string
	Faint  string
	Accent string

	Success string
	Warning string
	Danger  string

	SelectionBg   string
	SelectionText string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Faint)).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Faint)).
			Padding(1, 3),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(1, 2),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Selected lipgloss.Style
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Logo     lipgloss.Style
	Chip     lipgloss.Style
	Card     lipgloss.Style
	Modal    lipgloss.Style
}

var themes = []Theme{
	{
		Name:          "Dracula",
		Background:    "#282a36",
		Surface:       "#44475a",
		Text:          "#f8f8f2",
		Muted:         "#bfc7d5",
		Faint:         "#6272a4",
		Accent:        "#bd93f9",
		Success:       "#50fa7b",
		Warning:       "#f1fa8c",
		Danger:        "#ff5555",
		SelectionBg:   "#44475a",
		SelectionText: "#f8f8f2",
	},
	{
		Name:          "Nightfox",
		Background:    "#192330",
		Surface:       "#29394f",
		Text:          "#cdcecf",
		Muted:         "#aeafb0",
		Faint:         "#71839b",
		Accent:        "#719cd6",
		Success:       "#81b29a",
		Warning:       "#dbc074",
		Danger:        "#c94f6d",
		SelectionBg:   "#2b3b51",
		SelectionText: "#cdcecf",
	},
	{
		Name:          "Slate",
		Background:    "#1e293b",
		Surface:       "#334155",
		Text:          "#e2e8f0",
		Muted:         "#94a3b8",
		Faint:         "#64748b",
		Accent:        "#8b5cf6",
		Success:       "#10b981",
		Warning:       "#f59e0b",
		Danger:        "#ef4444",
		SelectionBg:   "#334155",
		SelectionText: "#f8fafc",
	},
}

// GetTheme returns the theme with the given name, defaulting to the first
// theme when unknown.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name of the theme after the current one, wrapping
// around at the end of the list.
func NextTheme(current string) string {
	for i, t := range themes {
		if t.Name == current {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}
