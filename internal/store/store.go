package store

import (
	"sync"
	"time"

	"github.com/taskdeck/taskdeck/internal/todo"
)

// Snapshot is an immutable view of the store at a point in time.
type Snapshot struct {
	Tasks   []todo.Task
	Loading bool
	Err     string
	Sort    todo.SortOption
	Filter  todo.Filter
}

// Projection returns the filtered, sorted view of the snapshot's tasks.
func (s Snapshot) Projection() []todo.Task {
	return todo.Project(s.Tasks, s.Filter, s.Sort)
}

// Store owns the canonical task collection plus the active sort and filter
// selection and the status of the in-flight import. All mutations are
// synchronous and atomic; the UI reads through Snapshot.
type Store struct {
	mu      sync.RWMutex
	tasks   []todo.Task
	loading bool
	err     string
	sort    todo.SortOption
	filter  todo.Filter

	// Overridable for deterministic tests.
	now   func() time.Time
	newID func(time.Time) string
}

// New returns an empty store with no sort and no filters active.
func New() *Store {
	return &Store{
		sort:  todo.SortNone,
		now:   time.Now,
		newID: todo.NewLocalID,
	}
}

// Restore returns a store seeded from a previously captured snapshot.
// Loading and error status are not carried over; they describe a request
// that no longer exists.
func Restore(snap Snapshot) *Store {
	s := New()
	s.tasks = cloneTasks(snap.Tasks)
	if snap.Sort != "" {
		s.sort = snap.Sort
	}
	s.filter = cloneFilter(snap.Filter)
	return s
}

// Add creates a task from the draft, stamping a fresh local id and the
// creation time, and appends it to the tail. The store performs no
// validation; any draft is accepted.
func (s *Store) Add(d todo.Draft) todo.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	t := todo.Task{
		ID:          s.newID(now),
		Name:        d.Name,
		Description: d.Description,
		DueDate:     d.DueDate,
		DueTime:     d.DueTime,
		Completed:   d.Completed,
		CreatedAt:   todo.Timestamp(now),
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Update replaces the task with a matching id in place, preserving its
// position. Unknown ids are a silent no-op.
func (s *Store) Update(t todo.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			s.tasks[i] = t
			return
		}
	}
}

// Remove deletes the task with the matching id. Unknown ids are a silent
// no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// Toggle flips the completion flag on the matching task. Unknown ids are a
// silent no-op.
func (s *Store) Toggle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return
		}
	}
}

// SetSort replaces the active sort selection.
func (s *Store) SetSort(opt todo.SortOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = opt
}

// SetTemporalFilter installs a date or time filter. An empty value clears
// the temporal filter; the name filter is untouched either way.
func (s *Store) SetTemporalFilter(kind todo.TemporalKind, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value == "" {
		s.filter.Temporal = nil
		return
	}
	s.filter.Temporal = &todo.TemporalFilter{Kind: kind, Value: value}
}

// SetNameFilter installs the name/description substring filter. An empty
// value clears it; the temporal filter is untouched either way.
func (s *Store) SetNameFilter(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Name = value
}

// ClearFilter clears both the name and the temporal filter.
func (s *Store) ClearFilter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = todo.Filter{}
}

// Snapshot returns a defensive copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Tasks:   cloneTasks(s.tasks),
		Loading: s.loading,
		Err:     s.err,
		Sort:    s.sort,
		Filter:  cloneFilter(s.filter),
	}
}

func cloneTasks(tasks []todo.Task) []todo.Task {
	if len(tasks) == 0 {
		return nil
	}
	dup := make([]todo.Task, len(tasks))
	copy(dup, tasks)
	return dup
}

func cloneFilter(f todo.Filter) todo.Filter {
	if f.Temporal != nil {
		temporal := *f.Temporal
		f.Temporal = &temporal
	}
	return f
}
