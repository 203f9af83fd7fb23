package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/internal/todo"
)

// filterState holds the shared input used by the search, date, and time
// filter prompts.
type filterState struct {
	input textinput.Model
}

// initFilterInput initializes the filter prompt input.
func (m *Model) initFilterInput() {
	in := textinput.New()
	in.CharLimit = 80
	in.Width = 44
	m.filter.input = in
}

// openFilterPrompt opens the prompt for one of the filter modes, pre-filled
// with the value currently applied.
func (m *Model) openFilterPrompt(mode inputMode) {
	switch mode {
	case modeSearch:
		m.filter.input.Placeholder = "match name or description"
		m.filter.input.SetValue(m.snapshot.Filter.Name)
	case modeDate:
		m.filter.input.Placeholder = "2024-06-01 or 2024-06-01 to 2024-06-05"
		if tf := m.snapshot.Filter.Temporal; tf != nil && tf.Kind == todo.TemporalDate {
			m.filter.input.SetValue(tf.Value)
		} else {
			m.filter.input.SetValue("")
		}
	case modeTime:
		m.filter.input.Placeholder = "e.g. 09: or 14:30"
		if tf := m.snapshot.Filter.Temporal; tf != nil && tf.Kind == todo.TemporalTime {
			m.filter.input.SetValue(tf.Value)
		} else {
			m.filter.input.SetValue("")
		}
	}
	m.filter.input.CursorEnd()
	m.filter.input.Focus()
	m.mode = mode
}

// handleFilterKey handles keyboard input for the filter prompts. The search
// prompt applies on every keystroke so the list narrows live; the temporal
// prompts apply on confirm.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		if m.mode == modeSearch {
			// Discard the live-applied text along with the prompt.
			m.store.SetNameFilter("")
			m.refreshSnapshot()
		}
		m.filter.input.Blur()
		m.mode = modeNormal
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		value := strings.TrimSpace(m.filter.input.Value())
		switch m.mode {
		case modeSearch:
			m.store.SetNameFilter(value)
		case modeDate:
			m.store.SetTemporalFilter(todo.TemporalDate, value)
		case modeTime:
			m.store.SetTemporalFilter(todo.TemporalTime, value)
		}
		m.refreshSnapshot()
		m.filter.input.Blur()
		m.mode = modeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.filter.input, cmd = m.filter.input.Update(msg)
	if m.mode == modeSearch {
		m.store.SetNameFilter(strings.TrimSpace(m.filter.input.Value()))
		m.refreshSnapshot()
	}
	return m, cmd
}

// renderFilterPrompt renders the filter input modal.
func (m Model) renderFilterPrompt() string {
	styles := m.theme.Styles()

	var title, hint string
	switch m.mode {
	case modeSearch:
		title = "Search Tasks"
		hint = "Matches against name and description, case-insensitive."
	case modeDate:
		title = "Filter by Date"
		hint = "Exact date, or an inclusive range joined with \"to\"."
	case modeTime:
		title = "Filter by Time"
		hint = "Matches any due time containing the text."
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 48)))
	b.WriteString("\n\n")
	b.WriteString(m.filter.input.View())
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render(hint))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("Enter: Apply  •  Esc: Cancel"))

	return m.overlay(styles.Modal.Width(58).Render(b.String()))
}
