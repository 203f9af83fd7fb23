package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Navigation",
			items: []helpItem{
				{"tab", "Switch views"},
				{"1/2", "Overview/Tasks"},
				{"j/k", "Move up/down"},
				{"g/G", "Go to top/bottom"},
				{"n/p", "Next/prev page"},
			},
		},
		{
			title: "Tasks",
			items: []helpItem{
				{"a", "Add task"},
				{"e/enter", "Edit task"},
				{"space", "Toggle done"},
				{"x", "Delete task"},
				{"r", "Fetch from API"},
			},
		},
		{
			title: "Filter & Sort",
			items: []helpItem{
				{"/", "Search"},
				{"d", "Date filter"},
				{"t", "Time filter"},
				{"c", "Clear filters"},
				{"s", "Sort"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"h/?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	title := styles.Text.Bold(true).Render("Keyboard Shortcuts")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(12)
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	return m.overlay(styles.Modal.Width(40).Render(b.String()))
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
