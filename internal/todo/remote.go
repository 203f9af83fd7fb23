package todo

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"
)

// FromRemote transforms the remote record at response index i into a Task.
// The derivation is a pure function of the record and its arrival index:
// due dates spread over a rolling 30-day window starting today, due times
// spread deterministically between 09:00 and 20:55. Repeated imports of the
// same payload therefore produce identical tasks modulo the wall clock.
func FromRemote(remoteID int, title string, completed bool, index int, now time.Time) Task {
	desc := fmt.Sprintf("Task from API (ID: %d)", remoteID)
	if completed {
		desc = fmt.Sprintf("Completed task from API (ID: %d)", remoteID)
	}

	hour := 9 + index%12
	minute := (index * 5) % 60

	return Task{
		ID:          RemoteID(remoteID),
		Name:        capitalize(title),
		Description: desc,
		DueDate:     now.AddDate(0, 0, index%30).Format(DateLayout),
		DueTime:     fmt.Sprintf("%02d:%02d", hour, minute),
		Completed:   completed,
		CreatedAt:   Timestamp(now),
	}
}

// capitalize upper-cases the first rune, leaving the rest unchanged.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
