package ui

import (
	"testing"

	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/todo"
)

func TestClampSelection(t *testing.T) {
	tasks := make([]todo.Task, 23)
	for i := range tasks {
		tasks[i] = todo.Task{ID: todo.RemoteID(i), Name: "task"}
	}

	m := Model{pageSize: 10, snapshot: store.Snapshot{Tasks: tasks}}

	m.selected = 22
	m.clampSelection()
	if m.page != 2 {
		t.Fatalf("page = %d, want 2", m.page)
	}

	// Cursor past the end of the list snaps back to the last item.
	m.selected = 40
	m.clampSelection()
	if m.selected != 22 || m.page != 2 {
		t.Fatalf("selected=%d page=%d, want 22/2", m.selected, m.page)
	}

	m.snapshot.Tasks = nil
	m.clampSelection()
	if m.selected != 0 || m.page != 0 {
		t.Fatalf("empty list: selected=%d page=%d, want 0/0", m.selected, m.page)
	}
}

func TestClampSelectionFollowsProjection(t *testing.T) {
	m := Model{pageSize: 10, snapshot: store.Snapshot{
		Tasks: []todo.Task{
			{ID: "todo-1", Name: "Buy milk"},
			{ID: "todo-2", Name: "Call bank"},
		},
		Filter: todo.Filter{Name: "bank"},
	}}
	m.selected = 1
	m.clampSelection()
	if m.selected != 0 {
		t.Fatalf("selected = %d, want 0 (projection has one task)", m.selected)
	}
}

func TestSelectedTask(t *testing.T) {
	m := Model{pageSize: 10, snapshot: store.Snapshot{
		Tasks: []todo.Task{
			{ID: "todo-1", Name: "first"},
			{ID: "todo-2", Name: "second"},
		},
	}}
	m.selected = 1
	got := m.selectedTask()
	if got == nil || got.ID != "todo-2" {
		t.Fatalf("selectedTask = %+v, want todo-2", got)
	}

	m.snapshot.Tasks = nil
	if got := m.selectedTask(); got != nil {
		t.Fatalf("selectedTask on empty = %+v, want nil", got)
	}
}

func TestComputeAnalytics(t *testing.T) {
	tasks := []todo.Task{
		{ID: "todo-1", DueDate: "2024-06-01"},
		{ID: "todo-2", DueDate: "2024-06-01", Completed: true},
		{ID: "api-3", DueDate: "2024-06-02", Completed: true},
		{ID: "api-4", DueDate: "2024-06-03"},
	}

	a := computeAnalytics(tasks, "2024-06-01")
	if a.Today != 2 {
		t.Fatalf("Today = %d, want 2", a.Today)
	}
	if a.Fetched != 2 {
		t.Fatalf("Fetched = %d, want 2", a.Fetched)
	}
	if a.Completed != 2 {
		t.Fatalf("Completed = %d, want 2", a.Completed)
	}
	if a.Total != 4 {
		t.Fatalf("Total = %d, want 4", a.Total)
	}

	zero := computeAnalytics(nil, "2024-06-01")
	if zero != (analytics{}) {
		t.Fatalf("empty analytics = %+v, want zero", zero)
	}
}

func TestSortLabel(t *testing.T) {
	if got := sortLabel(todo.SortNameAsc); got != "Name (A-Z)" {
		t.Fatalf("sortLabel = %q", got)
	}
	if got := sortLabel(todo.SortNone); got != "None" {
		t.Fatalf("sortLabel none = %q", got)
	}
	if got := sortLabel(todo.SortTimeDesc); got != "Time (Descending)" {
		t.Fatalf("sortLabel = %q", got)
	}
}
