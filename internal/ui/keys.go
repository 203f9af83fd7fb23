package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	Escape     key.Binding

	// View switching
	ViewHome  key.Binding
	ViewTasks key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	NextPage key.Binding
	PrevPage key.Binding

	// Task actions
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Toggle key.Binding
	Import key.Binding

	// Filtering and sorting
	Sort         key.Binding
	Search       key.Binding
	DateFilter   key.Binding
	TimeFilter   key.Binding
	ClearFilters key.Binding

	// Modal input
	Confirm key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Switch view"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),

		ViewHome: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Overview"),
		),
		ViewTasks: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Tasks"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("j/k", "Move down/up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g/G", "Go to top/bottom"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n/p", "Next/previous page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "left"),
		),

		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add task"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "Edit task"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Delete task"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Toggle done"),
		),
		Import: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Import from API"),
		),

		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Sort by"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		DateFilter: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Filter by date"),
		),
		TimeFilter: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Filter by time"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Clear filters"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}
