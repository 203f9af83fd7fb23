package todo

import (
	"strings"
	"testing"
)

func task(id, name, desc, dueDate, dueTime string) Task {
	return Task{ID: id, Name: name, Description: desc, DueDate: dueDate, DueTime: dueTime}
}

func ids(tasks []Task) string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return strings.Join(out, ",")
}

func TestProject_NoFilterNoSortKeepsInsertionOrder(t *testing.T) {
	in := []Task{
		task("a", "Zeta", "", "2024-06-03", "10:00"),
		task("b", "Alpha", "", "2024-06-01", "09:00"),
	}
	got := Project(in, Filter{}, SortNone)
	if ids(got) != "a,b" {
		t.Fatalf("Project order = %q, want a,b", ids(got))
	}
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	in := []Task{
		task("a", "Zeta", "", "2024-06-03", "10:00"),
		task("b", "Alpha", "", "2024-06-01", "09:00"),
	}
	_ = Project(in, Filter{}, SortNameAsc)
	if in[0].ID != "a" || in[1].ID != "b" {
		t.Fatalf("input reordered: %q", ids(in))
	}
}

func TestProject_DateFilter(t *testing.T) {
	in := []Task{
		task("a", "A", "", "2024-05-31", "09:00"),
		task("b", "B", "", "2024-06-01", "09:00"),
		task("c", "C", "", "2024-06-03", "09:00"),
		task("d", "D", "", "2024-06-05", "09:00"),
		task("e", "E", "", "2024-06-06", "09:00"),
	}

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"exact match", "2024-06-03", "c"},
		{"inclusive range", "2024-06-01 to 2024-06-05", "b,c,d"},
		{"range preserves relative order", "2024-05-31 to 2024-06-06", "a,b,c,d,e"},
		{"malformed range falls back to exact", "junk to 2024-06-05", ""},
		{"no match", "2030-01-01", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Filter{Temporal: &TemporalFilter{Kind: TemporalDate, Value: tt.value}}
			got := Project(in, f, SortNone)
			if ids(got) != tt.want {
				t.Errorf("Project(date %q) = %q, want %q", tt.value, ids(got), tt.want)
			}
		})
	}
}

func TestProject_TimeFilterMatchesSubstring(t *testing.T) {
	in := []Task{
		task("a", "A", "", "2024-06-01", "09:00"),
		task("b", "B", "", "2024-06-01", "09:30"),
		task("c", "C", "", "2024-06-01", "14:09"),
	}
	f := Filter{Temporal: &TemporalFilter{Kind: TemporalTime, Value: "09:"}}
	if got := Project(in, f, SortNone); ids(got) != "a,b" {
		t.Fatalf("Project(time 09:) = %q, want a,b", ids(got))
	}
	f.Temporal.Value = "09"
	if got := Project(in, f, SortNone); ids(got) != "a,b,c" {
		t.Fatalf("Project(time 09) = %q, want a,b,c", ids(got))
	}
}

func TestProject_NameFilterSearchesNameAndDescription(t *testing.T) {
	in := []Task{
		task("a", "Buy milk", "from the corner shop", "2024-06-01", "09:00"),
		task("b", "Call bank", "about the mortgage", "2024-06-03", "09:00"),
		task("c", "Laundry", "CALL the dry cleaner", "2024-06-04", "09:00"),
	}
	got := Project(in, Filter{Name: "ca"}, SortNone)
	if ids(got) != "b,c" {
		t.Fatalf("Project(name ca) = %q, want b,c", ids(got))
	}
}

func TestProject_FiltersComposeWithAND(t *testing.T) {
	in := []Task{
		task("a", "Buy milk", "", "2024-06-01", "09:00"),
		task("b", "Call bank", "", "2024-06-03", "09:00"),
	}

	got := Project(in, Filter{Name: "ca"}, SortNone)
	if ids(got) != "b" {
		t.Fatalf("name filter alone = %q, want b", ids(got))
	}

	f := Filter{
		Name:     "ca",
		Temporal: &TemporalFilter{Kind: TemporalDate, Value: "2024-06-01"},
	}
	if got := Project(in, f, SortNone); len(got) != 0 {
		t.Fatalf("composed filters = %q, want empty", ids(got))
	}
}

func TestProject_Sorting(t *testing.T) {
	in := []Task{
		task("a", "banana", "", "2024-06-03", "12:00"),
		task("b", "Apple", "", "2024-06-01", "15:30"),
		task("c", "cherry", "", "2024-06-02", "08:05"),
	}

	tests := []struct {
		opt  SortOption
		want string
	}{
		{SortNameAsc, "b,a,c"},
		{SortNameDesc, "c,a,b"},
		{SortDateAsc, "b,c,a"},
		{SortDateDesc, "a,c,b"},
		{SortTimeAsc, "c,a,b"},
		{SortTimeDesc, "b,a,c"},
	}
	for _, tt := range tests {
		t.Run(string(tt.opt), func(t *testing.T) {
			got := Project(in, Filter{}, tt.opt)
			if ids(got) != tt.want {
				t.Errorf("Project(%s) = %q, want %q", tt.opt, ids(got), tt.want)
			}
		})
	}
}

func TestProject_SortIsStableForEqualKeys(t *testing.T) {
	in := []Task{
		task("a", "Same", "", "2024-06-01", "09:00"),
		task("b", "Same", "", "2024-06-01", "09:00"),
		task("c", "Same", "", "2024-06-01", "09:00"),
	}
	for _, opt := range []SortOption{SortNameAsc, SortDateAsc, SortTimeDesc} {
		if got := Project(in, Filter{}, opt); ids(got) != "a,b,c" {
			t.Fatalf("Project(%s) reordered ties: %q", opt, ids(got))
		}
	}
}

func TestFilter_Active(t *testing.T) {
	tests := []struct {
		name      string
		filter    Filter
		wantType  FilterType
		wantValue string
	}{
		{"empty", Filter{}, FilterNone, ""},
		{"name only", Filter{Name: "milk"}, FilterName, "milk"},
		{
			"temporal only",
			Filter{Temporal: &TemporalFilter{Kind: TemporalDate, Value: "2024-06-01"}},
			FilterDate, "2024-06-01",
		},
		{
			"name wins over temporal",
			Filter{Name: "milk", Temporal: &TemporalFilter{Kind: TemporalTime, Value: "09"}},
			FilterName, "milk",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotValue := tt.filter.Active()
			if gotType != tt.wantType || gotValue != tt.wantValue {
				t.Errorf("Active() = (%s, %q), want (%s, %q)", gotType, gotValue, tt.wantType, tt.wantValue)
			}
		})
	}
}

func TestParseSortOption(t *testing.T) {
	if opt, ok := ParseSortOption(" name-asc "); !ok || opt != SortNameAsc {
		t.Fatalf("ParseSortOption(name-asc) = (%s, %v)", opt, ok)
	}
	if opt, ok := ParseSortOption("bogus"); ok || opt != SortNone {
		t.Fatalf("ParseSortOption(bogus) = (%s, %v), want (none, false)", opt, ok)
	}
}
