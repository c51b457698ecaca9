package model

import (
	"regexp"
	"testing"
)

// Version-4 UUID: 13th hex digit is 4, 17th is one of 8, 9, a, b.
var uuidV4Pattern = regexp.MustCompile(
	`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestNewIDFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if !uuidV4Pattern.MatchString(id) {
			t.Fatalf("NewID() = %q, not a v4 UUID", id)
		}
		if seen[id] {
			t.Fatalf("NewID() returned duplicate %q", id)
		}
		seen[id] = true
	}
}

func TestCategoryCatalog(t *testing.T) {
	cats := Categories()
	if len(cats) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(cats))
	}
	for i, c := range cats {
		if c.Order != i+1 {
			t.Errorf("category %s: order %d, want %d", c.ID, c.Order, i+1)
		}
		if c.Name == "" || c.Icon == "" || c.Color == "" {
			t.Errorf("category %s has empty display fields", c.ID)
		}
	}
}

func TestLookupCategoryFallback(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		wantID string
	}{
		{name: "known id", id: "food", wantID: "food"},
		{name: "unknown id falls back", id: "crypto", wantID: DefaultCategoryID},
		{name: "empty id falls back", id: "", wantID: DefaultCategoryID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LookupCategory(tt.id); got.ID != tt.wantID {
				t.Errorf("LookupCategory(%q).ID = %q, want %q", tt.id, got.ID, tt.wantID)
			}
		})
	}
}

func TestDefaultState(t *testing.T) {
	state := DefaultState()
	if state.SchemaVersion != "1.0" {
		t.Errorf("schema version = %q, want 1.0", state.SchemaVersion)
	}
	if state.Expenses == nil || state.Backup == nil {
		t.Error("default state must have non-nil collections")
	}
	if got := state.Settings.Filters.Category; got != CategoryFilterAll {
		t.Errorf("default category filter = %q, want %q", got, CategoryFilterAll)
	}
	if got := state.Settings.Filters.Period; got != PeriodAll {
		t.Errorf("default period = %q, want %q", got, PeriodAll)
	}
}

func TestNormalizeRepairsHoles(t *testing.T) {
	state := &AppState{}
	state.Normalize()
	if state.Expenses == nil || state.Backup == nil {
		t.Error("Normalize must replace nil collections")
	}
	if state.SchemaVersion != SchemaVersion {
		t.Errorf("schema version = %q, want %q", state.SchemaVersion, SchemaVersion)
	}
	if state.Settings.Sort.Key == "" || state.Settings.Filters.Period == "" {
		t.Error("Normalize must fill empty settings")
	}
}

func TestCloneExpensesIsIndependent(t *testing.T) {
	original := []Expense{{ID: "a", Amount: 100}}
	cloned := CloneExpenses(original)
	cloned[0].Amount = 999
	if original[0].Amount != 100 {
		t.Error("mutating the clone changed the original")
	}
}
