package todo

import (
	"strings"
	"testing"
	"time"
)

func TestNewLocalID_UniqueAndLocal(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewLocalID(now)
		if !strings.HasPrefix(id, localIDPrefix) {
			t.Fatalf("id %q missing local prefix", id)
		}
		if IsRemote(id) {
			t.Fatalf("local id %q classified as remote", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestRemoteIDRoundTrip(t *testing.T) {
	id := RemoteID(7)
	if id != "api-7" {
		t.Fatalf("RemoteID(7) = %q, want api-7", id)
	}
	if !IsRemote(id) {
		t.Fatalf("IsRemote(%q) = false", id)
	}
	if key := RemoteKey(id); key != "7" {
		t.Fatalf("RemoteKey(%q) = %q, want 7", id, key)
	}
}

func TestFromRemote_DeterministicDerivation(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	got := FromRemote(7, "wash car", false, 0, now)
	if got.ID != "api-7" {
		t.Errorf("ID = %q, want api-7", got.ID)
	}
	if got.Name != "Wash car" {
		t.Errorf("Name = %q, want Wash car", got.Name)
	}
	if got.Description != "Task from API (ID: 7)" {
		t.Errorf("Description = %q", got.Description)
	}
	if got.DueDate != "2024-06-01" {
		t.Errorf("DueDate = %q, want 2024-06-01", got.DueDate)
	}
	if got.DueTime != "09:00" {
		t.Errorf("DueTime = %q, want 09:00", got.DueTime)
	}
	if got.Completed {
		t.Errorf("Completed = true, want false")
	}
	if got.CreatedAt != "2024-06-01T12:00:00Z" {
		t.Errorf("CreatedAt = %q", got.CreatedAt)
	}
}

func TestFromRemote_IndexSpreadsDateAndTime(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		index    int
		wantDate string
		wantTime string
	}{
		{0, "2024-06-01", "09:00"},
		{1, "2024-06-02", "10:05"},
		{11, "2024-06-12", "20:55"},
		{12, "2024-06-13", "09:00"},
		{13, "2024-06-14", "10:05"},
		{30, "2024-06-01", "15:30"},
	}
	for _, tt := range tests {
		got := FromRemote(1, "x", false, tt.index, now)
		if got.DueDate != tt.wantDate {
			t.Errorf("index %d: DueDate = %q, want %q", tt.index, got.DueDate, tt.wantDate)
		}
		if got.DueTime != tt.wantTime {
			t.Errorf("index %d: DueTime = %q, want %q", tt.index, got.DueTime, tt.wantTime)
		}
	}
}

func TestFromRemote_CompletedDescription(t *testing.T) {
	got := FromRemote(3, "done thing", true, 0, time.Now())
	if got.Description != "Completed task from API (ID: 3)" {
		t.Fatalf("Description = %q", got.Description)
	}
	if !got.Completed {
		t.Fatalf("Completed = false, want true")
	}
}

func TestDraft_Validate(t *testing.T) {
	tests := []struct {
		name    string
		draft   Draft
		wantErr string
	}{
		{"valid", Draft{Name: "Buy milk", DueDate: "2024-06-01", DueTime: "09:30"}, ""},
		{"minimal", Draft{Name: "x"}, ""},
		{"empty name", Draft{DueDate: "2024-06-01"}, "name is required"},
		{"bad date", Draft{Name: "x", DueDate: "06/01/2024"}, "due date"},
		{"bad time", Draft{Name: "x", DueTime: "9am"}, "due time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate returned error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate returned nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate error = %q, want it to mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"wash car", "Wash car"},
		{"Wash car", "Wash car"},
		{"über alles", "Über alles"},
		{"a", "A"},
	}
	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
