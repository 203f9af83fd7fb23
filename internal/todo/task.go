package todo

import "time"

// Layouts for the date and time strings carried on a Task.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Task is a single todo item. DueDate and DueTime are stored as strings in
// the DateLayout/TimeLayout formats; CreatedAt is an RFC 3339 timestamp set
// once when the task enters the store.
type Task struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	DueTime     string `json:"dueTime"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
}

// Draft carries the user-editable fields of a task. The store accepts any
// draft as-is; validation happens at the form boundary via Validate.
type Draft struct {
	Name        string `validate:"required"`
	Description string
	DueDate     string `validate:"omitempty,datetime=2006-01-02"`
	DueTime     string `validate:"omitempty,datetime=15:04"`
	Completed   bool
}

// Timestamp formats a creation time the way tasks store it.
func Timestamp(now time.Time) string {
	return now.UTC().Format(time.RFC3339)
}
