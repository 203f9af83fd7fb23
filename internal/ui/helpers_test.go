package ui

import "testing"

func TestTruncate(t *testing.T) {
	if got := truncate("  ", 10); got != "" {
		t.Fatalf("truncate blank = %q, want empty", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate under limit = %q, want unchanged", got)
	}
	if got := truncate("abcdef", 4); got != "abc…" {
		t.Fatalf("truncate = %q, want abc…", got)
	}
	if got := truncate("abcdef", 1); got != "a" {
		t.Fatalf("truncate limit 1 = %q, want a", got)
	}
	got := truncate("über long täsk näme", 8)
	if n := len([]rune(got)); n > 8 {
		t.Fatalf("got %q (%d runes), want <=8", got, n)
	}
}

func TestPlural(t *testing.T) {
	if got := plural(1, "task", "tasks"); got != "task" {
		t.Fatalf("plural(1) = %q", got)
	}
	if got := plural(0, "task", "tasks"); got != "tasks" {
		t.Fatalf("plural(0) = %q", got)
	}
	if got := plural(7, "task", "tasks"); got != "tasks" {
		t.Fatalf("plural(7) = %q", got)
	}
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		name     string
		n, size  int
		expected int
	}{
		{"empty", 0, 10, 1},
		{"partial", 3, 10, 1},
		{"exact", 10, 10, 1},
		{"overflow", 11, 10, 2},
		{"many", 95, 10, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := pageCount(tc.n, tc.size); got != tc.expected {
				t.Fatalf("pageCount(%d, %d) = %d, want %d", tc.n, tc.size, got, tc.expected)
			}
		})
	}
}

func TestPageBounds(t *testing.T) {
	start, end := pageBounds(0, 10, 25)
	if start != 0 || end != 10 {
		t.Fatalf("page 0 = [%d, %d), want [0, 10)", start, end)
	}
	start, end = pageBounds(2, 10, 25)
	if start != 20 || end != 25 {
		t.Fatalf("page 2 = [%d, %d), want [20, 25)", start, end)
	}
	start, end = pageBounds(5, 10, 25)
	if start != 25 || end != 25 {
		t.Fatalf("out-of-range page = [%d, %d), want [25, 25)", start, end)
	}
}
