package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/todo"
)

// visibleTasks returns the filtered, sorted projection the tasks view shows.
func (m Model) visibleTasks() []todo.Task {
	return m.snapshot.Projection()
}

// pageCount returns the number of pages for n items. An empty list still has
// one (empty) page.
func pageCount(n, pageSize int) int {
	if n <= 0 {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

// pageBounds returns the half-open [start, end) slice bounds for a page.
func pageBounds(page, pageSize, n int) (int, int) {
	start := page * pageSize
	if start > n {
		start = n
	}
	end := start + pageSize
	if end > n {
		end = n
	}
	return start, end
}

// clampSelection keeps the cursor and page inside the current projection.
// The page always follows the cursor.
func (m *Model) clampSelection() {
	n := len(m.visibleTasks())
	if n == 0 {
		m.selected = 0
		m.page = 0
		return
	}
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.page = m.selected / m.pageSize
}

// selectedTask returns the task under the cursor, or nil when the projection
// is empty.
func (m Model) selectedTask() *todo.Task {
	tasks := m.visibleTasks()
	if len(tasks) == 0 || m.selected >= len(tasks) {
		return nil
	}
	t := tasks[m.selected]
	return &t
}

// handleTasksKey processes keyboard input for the tasks view.
func (m Model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.visibleTasks())-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		if n := len(m.visibleTasks()); n > 0 {
			m.selected = n - 1
		}
	case key.Matches(msg, m.keys.NextPage):
		if m.page < pageCount(len(m.visibleTasks()), m.pageSize)-1 {
			m.selected = (m.page + 1) * m.pageSize
		}
	case key.Matches(msg, m.keys.PrevPage):
		if m.page > 0 {
			m.selected = (m.page - 1) * m.pageSize
		}

	case key.Matches(msg, m.keys.Add):
		m.openAddForm()
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		if t := m.selectedTask(); t != nil {
			m.openEditForm(*t)
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if t := m.selectedTask(); t != nil {
			m.store.Remove(t.ID)
			m.refreshSnapshot()
			m.showStatus("Task deleted", false)
		}
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		if t := m.selectedTask(); t != nil {
			m.store.Toggle(t.ID)
			m.refreshSnapshot()
		}
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		m.openSortSheet()
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.openFilterPrompt(modeSearch)
		return m, nil
	case key.Matches(msg, m.keys.DateFilter):
		m.openFilterPrompt(modeDate)
		return m, nil
	case key.Matches(msg, m.keys.TimeFilter):
		m.openFilterPrompt(modeTime)
		return m, nil
	case key.Matches(msg, m.keys.ClearFilters):
		m.store.ClearFilter()
		m.refreshSnapshot()
		return m, nil
	}

	m.clampSelection()
	return m, nil
}

// renderTasks renders the paginated task list with filter chips.
func (m Model) renderTasks() string {
	styles := m.theme.Styles()
	contentHeight := m.contentHeight()

	var b strings.Builder

	if chips := m.renderFilterChips(); chips != "" {
		b.WriteString(chips)
		b.WriteString("\n")
		contentHeight -= lipgloss.Height(chips) + 1
	}

	tasks := m.visibleTasks()
	if len(tasks) == 0 {
		msg := "No tasks yet. Press a to add one, or r to import from the API."
		if len(m.snapshot.Tasks) > 0 {
			msg = "No tasks match the active filters. Press c to clear them."
		}
		empty := styles.MutedText.Render(msg)
		b.WriteString(lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, empty))
		return b.String()
	}

	start, end := pageBounds(m.page, m.pageSize, len(tasks))
	for i := start; i < end; i++ {
		b.WriteString(m.renderTaskLine(tasks[i], i == m.selected))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(fmt.Sprintf(
		"Page %d/%d  •  %s",
		m.page+1, pageCount(len(tasks), m.pageSize),
		m.countSummary(len(tasks)),
	)))

	return lipgloss.NewStyle().Height(contentHeight).Render(b.String())
}

// renderTaskLine renders a single task row.
func (m Model) renderTaskLine(t todo.Task, selected bool) string {
	styles := m.theme.Styles()

	marker := "[ ]"
	if t.Completed {
		marker = "[x]"
	}

	cursor := "  "
	if selected {
		cursor = styles.AccentText.Render("▸ ")
	}

	name := truncate(t.Name, 40)
	if name == "" {
		name = "(untitled)"
	}
	nameStyle := styles.Text
	if t.Completed {
		nameStyle = styles.MutedText.Strikethrough(true)
	}

	due := styles.FaintText.Render(fmt.Sprintf("%s %s", t.DueDate, t.DueTime))

	badge := ""
	if todo.IsRemote(t.ID) {
		badge = "  " + styles.WarningText.Render("api")
	}

	line := fmt.Sprintf("%s%s %s  %s%s",
		cursor,
		styles.FaintText.Render(marker),
		nameStyle.Render(fmt.Sprintf("%-40s", name)),
		due,
		badge,
	)
	if selected {
		return styles.Selected.Width(m.width).Render(line)
	}
	return line
}

// renderFilterChips shows the active filters the way the mobile app showed
// its chip row.
func (m Model) renderFilterChips() string {
	styles := m.theme.Styles()

	var chips []string
	if m.snapshot.Filter.Name != "" {
		chips = append(chips, styles.Chip.Render("search: "+truncate(m.snapshot.Filter.Name, 20)))
	}
	if tf := m.snapshot.Filter.Temporal; tf != nil {
		chips = append(chips, styles.Chip.Render(string(tf.Kind)+": "+truncate(tf.Value, 30)))
	}
	if m.snapshot.Sort != todo.SortNone && m.snapshot.Sort != "" {
		chips = append(chips, styles.Chip.Render("sort: "+sortLabel(m.snapshot.Sort)))
	}
	if len(chips) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, chips...)
}

// countSummary describes how much of the collection is visible.
func (m Model) countSummary(visible int) string {
	total := len(m.snapshot.Tasks)
	if visible == total {
		return fmt.Sprintf("%d %s", total, plural(total, "task", "tasks"))
	}
	return fmt.Sprintf("%d of %d %s", visible, total, plural(total, "task", "tasks"))
}
