package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/ayumu-h/kakeibo/internal/model"
	"github.com/ayumu-h/kakeibo/internal/notify"
)

func newTestStore(t *testing.T) (*BlobStore, *notify.Recorder, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	recorder := notify.NewRecorder()

	store, err := NewBlobStore(dbPath, recorder)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	return store, recorder, dbPath
}

func TestLoadWithoutBlobReturnsDefaults(t *testing.T) {
	store, recorder, _ := newTestStore(t)

	state := store.Load(context.Background())
	if state.SchemaVersion != model.SchemaVersion {
		t.Errorf("schema version = %q, want %q", state.SchemaVersion, model.SchemaVersion)
	}
	if len(state.Expenses) != 0 || len(state.Backup) != 0 {
		t.Error("first load must return empty collections")
	}
	if all := recorder.All(); len(all) != 0 {
		t.Errorf("a missing blob is not an error, got notifications %v", all)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, recorder, _ := newTestStore(t)
	ctx := context.Background()

	state := model.DefaultState()
	created := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	state.Expenses = []model.Expense{{
		ID:        model.NewID(),
		Amount:    1200,
		Category:  "food",
		Date:      "2024-06-01",
		Memo:      "ランチ",
		CreatedAt: created,
		UpdatedAt: created,
	}}
	state.Settings.Filters.Category = "food"
	state.Backup = []model.Expense{}

	store.Save(ctx, state)
	if all := recorder.All(); len(all) != 0 {
		t.Fatalf("save should succeed silently, got %v", all)
	}

	loaded := store.Load(ctx)
	if len(loaded.Expenses) != 1 {
		t.Fatalf("loaded %d expenses, want 1", len(loaded.Expenses))
	}
	got := loaded.Expenses[0]
	want := state.Expenses[0]
	if got.ID != want.ID || got.Amount != want.Amount || got.Memo != want.Memo {
		t.Errorf("loaded expense %+v, want %+v", got, want)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, want.CreatedAt)
	}
	if loaded.Settings.Filters.Category != "food" {
		t.Errorf("settings did not round-trip: %+v", loaded.Settings)
	}
}

func TestSaveOverwritesSingleNamespaceRow(t *testing.T) {
	store, _, dbPath := newTestStore(t)
	ctx := context.Background()

	store.Save(ctx, model.DefaultState())
	store.Save(ctx, model.DefaultState())

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("failed to open db directly: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM app_state`).Scan(&count); err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("app_state has %d rows, want exactly 1", count)
	}
}

func TestLoadCorruptBlobFallsBackAndNotifies(t *testing.T) {
	store, recorder, dbPath := newTestStore(t)
	ctx := context.Background()

	store.Save(ctx, model.DefaultState())

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("failed to open db directly: %v", err)
	}
	if _, err := db.Exec(`UPDATE app_state SET payload = '{not json' WHERE namespace = ?`, Namespace); err != nil {
		t.Fatalf("failed to corrupt blob: %v", err)
	}
	_ = db.Close()

	state := store.Load(ctx)
	if state == nil || len(state.Expenses) != 0 {
		t.Error("corrupt blob must fall back to the default state")
	}

	last, ok := recorder.Last()
	if !ok {
		t.Fatal("corrupt blob must surface a notification")
	}
	if last.Severity != notify.SeverityError {
		t.Errorf("notification severity = %q, want error", last.Severity)
	}
}

func TestStatePersistsAcrossReopen(t *testing.T) {
	recorder := notify.NewRecorder()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := NewBlobStore(dbPath, recorder)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	state := model.DefaultState()
	state.Expenses = []model.Expense{{ID: "persisted", Amount: 500, Category: "other", Date: "2024-06-01"}}
	store.Save(ctx, state)
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	reopened, err := NewBlobStore(dbPath, recorder)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer reopened.Close()

	loaded := reopened.Load(ctx)
	if len(loaded.Expenses) != 1 || loaded.Expenses[0].ID != "persisted" {
		t.Errorf("state did not survive reopen: %+v", loaded.Expenses)
	}
}

func TestNewBlobStoreRejectsBadArguments(t *testing.T) {
	if _, err := NewBlobStore("", notify.NewRecorder()); err == nil {
		t.Error("empty path must be rejected")
	}
	if _, err := NewBlobStore(filepath.Join(t.TempDir(), "x.db"), nil); err == nil {
		t.Error("nil notifier must be rejected")
	}
}
