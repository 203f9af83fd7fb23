package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/internal/todo"
)

// sortChoices lists the sheet entries in display order.
var sortChoices = []todo.SortOption{
	todo.SortNone,
	todo.SortNameAsc,
	todo.SortNameDesc,
	todo.SortDateAsc,
	todo.SortDateDesc,
	todo.SortTimeAsc,
	todo.SortTimeDesc,
}

// sortLabel returns the human-readable label for a sort option.
func sortLabel(opt todo.SortOption) string {
	switch opt {
	case todo.SortNameAsc:
		return "Name (A-Z)"
	case todo.SortNameDesc:
		return "Name (Z-A)"
	case todo.SortDateAsc:
		return "Date (Ascending)"
	case todo.SortDateDesc:
		return "Date (Descending)"
	case todo.SortTimeAsc:
		return "Time (Ascending)"
	case todo.SortTimeDesc:
		return "Time (Descending)"
	default:
		return "None"
	}
}

// openSortSheet opens the sort selection sheet with the current option
// highlighted.
func (m *Model) openSortSheet() {
	m.sortIndex = 0
	for i, opt := range sortChoices {
		if opt == m.snapshot.Sort {
			m.sortIndex = i
			break
		}
	}
	m.mode = modeSort
}

// handleSortKey handles keyboard input for the sort sheet.
func (m Model) handleSortKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = modeNormal
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.sortIndex > 0 {
			m.sortIndex--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.sortIndex < len(sortChoices)-1 {
			m.sortIndex++
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.store.SetSort(sortChoices[m.sortIndex])
		m.refreshSnapshot()
		m.savePrefs()
		m.mode = modeNormal
		return m, nil
	}

	return m, nil
}

// renderSortSheet renders the sort selection modal.
func (m Model) renderSortSheet() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Sort By"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, opt := range sortChoices {
		label := sortLabel(opt)
		switch {
		case i == m.sortIndex && opt == m.snapshot.Sort:
			b.WriteString(styles.Selected.Render("▸ " + label + " ✓"))
		case i == m.sortIndex:
			b.WriteString(styles.Selected.Render("▸ " + label))
		case opt == m.snapshot.Sort:
			b.WriteString(styles.AccentText.Render("  " + label + " ✓"))
		default:
			b.WriteString(styles.Text.Render("  " + label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Enter: Apply  •  Esc: Cancel"))

	return m.overlay(styles.Modal.Width(40).Render(b.String()))
}
