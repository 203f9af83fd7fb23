package todo

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOption selects the ordering applied to the projected task list.
// Exactly one is active at a time; SortNone keeps insertion order.
type SortOption string

const (
	SortNone     SortOption = "none"
	SortNameAsc  SortOption = "name-asc"
	SortNameDesc SortOption = "name-desc"
	SortDateAsc  SortOption = "date-asc"
	SortDateDesc SortOption = "date-desc"
	SortTimeAsc  SortOption = "time-asc"
	SortTimeDesc SortOption = "time-desc"
)

// ParseSortOption maps a stored preference string back to a SortOption.
func ParseSortOption(s string) (SortOption, bool) {
	switch opt := SortOption(strings.TrimSpace(s)); opt {
	case SortNone, SortNameAsc, SortNameDesc, SortDateAsc, SortDateDesc, SortTimeAsc, SortTimeDesc:
		return opt, true
	}
	return SortNone, false
}

// TemporalKind tags a temporal filter as matching due dates or due times.
type TemporalKind string

const (
	TemporalDate TemporalKind = "date"
	TemporalTime TemporalKind = "time"
)

// TemporalFilter matches tasks by due date (exact or inclusive range,
// written "<start> to <end>") or by due time substring.
type TemporalFilter struct {
	Kind  TemporalKind
	Value string
}

// Filter holds at most one name filter and at most one temporal filter.
// Both compose with logical AND. The zero value matches everything.
type Filter struct {
	Name     string
	Temporal *TemporalFilter
}

// IsZero reports whether no filter is active.
func (f Filter) IsZero() bool {
	return f.Name == "" && f.Temporal == nil
}

// FilterType identifies the most specific active filter for display.
type FilterType string

const (
	FilterNone FilterType = "none"
	FilterName FilterType = "name"
	FilterDate FilterType = "date"
	FilterTime FilterType = "time"
)

// Active reports the single most specific filter as a (type, value) pair:
// a name filter wins over a temporal one, mirroring how the combined
// filter field used to be reconciled.
func (f Filter) Active() (FilterType, string) {
	if f.Name != "" {
		return FilterName, f.Name
	}
	if f.Temporal != nil {
		return FilterType(f.Temporal.Kind), f.Temporal.Value
	}
	return FilterNone, ""
}

// Project computes the filtered, sorted view of tasks that the UI renders.
// The temporal stage runs before the name stage so that a search narrows the
// date- or time-filtered set. The input slice is never mutated; sorting is
// stable, so equal keys keep their insertion order.
func Project(tasks []Task, f Filter, opt SortOption) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !matchesTemporal(t, f.Temporal) {
			continue
		}
		if !matchesName(t, f.Name) {
			continue
		}
		out = append(out, t)
	}

	if opt == SortNone || opt == "" {
		return out
	}

	var less func(a, b Task) bool
	switch opt {
	case SortNameAsc, SortNameDesc:
		c := collate.New(language.English)
		less = func(a, b Task) bool { return c.CompareString(a.Name, b.Name) < 0 }
		if opt == SortNameDesc {
			asc := less
			less = func(a, b Task) bool { return asc(b, a) }
		}
	case SortDateAsc:
		less = func(a, b Task) bool { return parseDate(a.DueDate).Before(parseDate(b.DueDate)) }
	case SortDateDesc:
		less = func(a, b Task) bool { return parseDate(b.DueDate).Before(parseDate(a.DueDate)) }
	case SortTimeAsc:
		less = func(a, b Task) bool { return a.DueTime < b.DueTime }
	case SortTimeDesc:
		less = func(a, b Task) bool { return b.DueTime < a.DueTime }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func matchesTemporal(t Task, f *TemporalFilter) bool {
	if f == nil || f.Value == "" {
		return true
	}
	switch f.Kind {
	case TemporalDate:
		if start, end, ok := parseDateRange(f.Value); ok {
			due := parseDate(t.DueDate)
			return !due.Before(start) && !due.After(end)
		}
		return t.DueDate == f.Value
	case TemporalTime:
		return strings.Contains(t.DueTime, f.Value)
	}
	return true
}

func matchesName(t Task, value string) bool {
	if value == "" {
		return true
	}
	needle := strings.ToLower(value)
	return strings.Contains(strings.ToLower(t.Name), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle)
}

// rangeSeparator joins the two halves of a date-range filter value.
// ISO dates cannot contain it, so splitting on the first occurrence is safe.
const rangeSeparator = " to "

// parseDateRange interprets a value like "2024-06-01 to 2024-06-05".
// Both halves must parse as ISO dates; anything else falls back to the
// exact-match path.
func parseDateRange(value string) (start, end time.Time, ok bool) {
	before, after, found := strings.Cut(value, rangeSeparator)
	if !found {
		return time.Time{}, time.Time{}, false
	}
	start, err := time.Parse(DateLayout, strings.TrimSpace(before))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = time.Parse(DateLayout, strings.TrimSpace(after))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func parseDate(value string) time.Time {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
