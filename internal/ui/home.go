package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/todo"
)

// analytics are the counts shown on the overview cards, computed from the
// raw (unfiltered) task list.
type analytics struct {
	Today     int
	Fetched   int
	Completed int
	Total     int
}

func computeAnalytics(tasks []todo.Task, today string) analytics {
	a := analytics{Total: len(tasks)}
	for _, t := range tasks {
		if t.DueDate == today {
			a.Today++
		}
		if todo.IsRemote(t.ID) {
			a.Fetched++
		}
		if t.Completed {
			a.Completed++
		}
	}
	return a
}

// renderHome renders the overview with analytics cards.
func (m Model) renderHome() string {
	styles := m.theme.Styles()
	contentHeight := m.contentHeight()

	a := computeAnalytics(m.snapshot.Tasks, time.Now().Format(todo.DateLayout))

	if a.Total == 0 {
		empty := lipgloss.JoinVertical(lipgloss.Center,
			styles.Text.Bold(true).Render("Nothing to do yet"),
			"",
			styles.MutedText.Render("Press 2 for the task list, a to add a task,"),
			styles.MutedText.Render("or r to import todos from the API."),
		)
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, empty)
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderCard("Due today", a.Today, styles.WarningText),
		" ",
		m.renderCard("Completed", a.Completed, styles.SuccessText),
		" ",
		m.renderCard("From API", a.Fetched, styles.AccentText),
	)

	summary := styles.MutedText.Render(
		fmt.Sprintf("%d %s in total", a.Total, plural(a.Total, "task", "tasks")))

	content := lipgloss.JoinVertical(lipgloss.Center, cards, "", summary)
	return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderCard(label string, value int, valueStyle lipgloss.Style) string {
	styles := m.theme.Styles()
	body := lipgloss.JoinVertical(lipgloss.Center,
		valueStyle.Render(fmt.Sprintf("%d", value)),
		styles.MutedText.Render(label),
	)
	return styles.Card.Render(body)
}
