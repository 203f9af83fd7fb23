package store

import (
	"context"
	"errors"

	"github.com/taskdeck/taskdeck/internal/placeholder"
	"github.com/taskdeck/taskdeck/internal/todo"
)

// genericImportError is the last-resort message recorded when an import
// fails without any usable detail.
const genericImportError = "failed to fetch todos from API"

// Import runs the three-phase fetch-and-merge workflow: mark the store
// loading, fetch the remote collection, then merge the records that are not
// already present. It returns the newly appended tasks; the count is shown
// to the user. On failure the task list is untouched and the error message
// is recorded on the store.
//
// There is no cancellation of an already started import beyond ctx. Two
// concurrent imports both apply their merge; that is safe because the merge
// deduplicates by remote id, so the second one appends nothing new.
func (s *Store) Import(ctx context.Context, fetcher placeholder.TodoFetcher) ([]todo.Task, error) {
	s.beginImport()

	records, err := fetcher.FetchTodos(ctx)
	if err != nil {
		s.failImport(err)
		return nil, err
	}
	return s.mergeImport(records), nil
}

func (s *Store) beginImport() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = ""
}

func (s *Store) failImport(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = importErrorMessage(err)
}

func (s *Store) mergeImport(records []placeholder.Todo) []todo.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false

	existing := make(map[string]struct{})
	for _, t := range s.tasks {
		if todo.IsRemote(t.ID) {
			existing[todo.RemoteKey(t.ID)] = struct{}{}
		}
	}

	now := s.now()
	var added []todo.Task
	for i, rec := range records {
		t := todo.FromRemote(rec.ID, rec.Title, rec.Completed, i, now)
		key := todo.RemoteKey(t.ID)
		if _, dup := existing[key]; dup {
			continue
		}
		existing[key] = struct{}{}
		s.tasks = append(s.tasks, t)
		added = append(added, t)
	}
	return added
}

// importErrorMessage prefers the structured API error message, then the
// plain error text, then a generic fallback.
func importErrorMessage(err error) string {
	var apiErr *placeholder.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return genericImportError
}
