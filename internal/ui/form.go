package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/internal/todo"
)

// Form field indices.
const (
	fieldName = iota
	fieldDescription
	fieldDueDate
	fieldDueTime
	formFieldCount
)

// formState holds the add/edit modal state. When editing, editID and
// createdAt identify the existing record; both are empty for a new task.
type formState struct {
	inputs    [formFieldCount]textinput.Model
	focus     int
	editID    string
	createdAt string
	completed bool
	errMsg    string
}

// initFormInputs initializes the text inputs for the task form.
func (m *Model) initFormInputs() {
	nameInput := textinput.New()
	nameInput.Placeholder = "e.g. Buy milk"
	nameInput.CharLimit = 120
	nameInput.Width = 40

	descInput := textinput.New()
	descInput.Placeholder = "optional details"
	descInput.CharLimit = 500
	descInput.Width = 40

	dateInput := textinput.New()
	dateInput.Placeholder = "YYYY-MM-DD"
	dateInput.CharLimit = 10
	dateInput.Width = 40

	timeInput := textinput.New()
	timeInput.Placeholder = "HH:MM"
	timeInput.CharLimit = 5
	timeInput.Width = 40

	m.form.inputs[fieldName] = nameInput
	m.form.inputs[fieldDescription] = descInput
	m.form.inputs[fieldDueDate] = dateInput
	m.form.inputs[fieldDueTime] = timeInput
}

// openAddForm opens the form for a new task, pre-filled with the current
// date and time the way the mobile form defaulted its pickers.
func (m *Model) openAddForm() {
	now := time.Now()
	m.form.editID = ""
	m.form.createdAt = ""
	m.form.completed = false
	m.form.errMsg = ""
	m.form.inputs[fieldName].SetValue("")
	m.form.inputs[fieldDescription].SetValue("")
	m.form.inputs[fieldDueDate].SetValue(now.Format(todo.DateLayout))
	m.form.inputs[fieldDueTime].SetValue(now.Format(todo.TimeLayout))
	m.focusFormField(fieldName)
	m.mode = modeForm
}

// openEditForm opens the form pre-filled from an existing task.
func (m *Model) openEditForm(t todo.Task) {
	m.form.editID = t.ID
	m.form.createdAt = t.CreatedAt
	m.form.completed = t.Completed
	m.form.errMsg = ""
	m.form.inputs[fieldName].SetValue(t.Name)
	m.form.inputs[fieldDescription].SetValue(t.Description)
	m.form.inputs[fieldDueDate].SetValue(t.DueDate)
	m.form.inputs[fieldDueTime].SetValue(t.DueTime)
	m.focusFormField(fieldName)
	m.mode = modeForm
}

func (m *Model) focusFormField(idx int) {
	m.form.focus = idx
	for i := range m.form.inputs {
		if i == idx {
			m.form.inputs[i].Focus()
		} else {
			m.form.inputs[i].Blur()
		}
	}
}

// handleFormKey handles keyboard input for the task form modal.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = modeNormal
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.submitForm()

	case msg.String() == "tab", msg.String() == "down":
		m.focusFormField((m.form.focus + 1) % formFieldCount)
		return m, nil

	case msg.String() == "shift+tab", msg.String() == "up":
		m.focusFormField((m.form.focus - 1 + formFieldCount) % formFieldCount)
		return m, nil
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

// submitForm validates the draft and hands it to the store. Validation
// failures keep the modal open with the message shown.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	draft := todo.Draft{
		Name:        strings.TrimSpace(m.form.inputs[fieldName].Value()),
		Description: strings.TrimSpace(m.form.inputs[fieldDescription].Value()),
		DueDate:     strings.TrimSpace(m.form.inputs[fieldDueDate].Value()),
		DueTime:     strings.TrimSpace(m.form.inputs[fieldDueTime].Value()),
		Completed:   m.form.completed,
	}

	if err := draft.Validate(); err != nil {
		m.form.errMsg = err.Error()
		return m, nil
	}

	if m.form.editID == "" {
		m.store.Add(draft)
		m.showStatus("Task added", false)
	} else {
		m.store.Update(todo.Task{
			ID:          m.form.editID,
			Name:        draft.Name,
			Description: draft.Description,
			DueDate:     draft.DueDate,
			DueTime:     draft.DueTime,
			Completed:   draft.Completed,
			CreatedAt:   m.form.createdAt,
		})
		m.showStatus("Task updated", false)
	}

	m.refreshSnapshot()
	m.mode = modeNormal
	return m, nil
}

// renderForm renders the add/edit modal.
func (m Model) renderForm() string {
	styles := m.theme.Styles()

	title := "New Task"
	if m.form.editID != "" {
		title = "Edit Task"
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 46)))
	b.WriteString("\n\n")

	labels := [formFieldCount]string{"Name:        ", "Description: ", "Due date:    ", "Due time:    "}
	for i, label := range labels {
		if m.form.focus == i {
			b.WriteString(styles.AccentText.Render(label))
		} else {
			b.WriteString(styles.MutedText.Render(label))
		}
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n\n")
	}

	if m.form.errMsg != "" {
		b.WriteString(styles.DangerText.Render(m.form.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.FaintText.Render("Enter: Save  •  Tab: Next field  •  Esc: Cancel"))

	return m.overlay(styles.Modal.Width(64).Render(b.String()))
}
