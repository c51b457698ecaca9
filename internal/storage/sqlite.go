// Package storage persists the application state as a single serialized
// blob in a local SQLite database.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ayumu-h/kakeibo/internal/model"
	"github.com/ayumu-h/kakeibo/internal/notify"

	"github.com/mattn/go-sqlite3"
)

// Namespace is the fixed key the state blob is stored under.
const Namespace = "kakeibo"

// User-visible persistence failure messages.
const (
	msgLoadFailed  = "保存データを読み込めませんでした。初期状態で起動します"
	msgQuotaFailed = "保存容量が上限に達しました。CSVエクスポートでデータを退避してください"
	msgSaveFailed  = "データの保存に失敗しました"
)

// BlobStore reads and writes the whole AppState under a fixed namespace
// key. Persistence failures never escape this boundary: they are logged,
// surfaced through the notifier, and the caller only ever observes a
// possibly-default return value.
type BlobStore struct {
	db       *sql.DB
	notifier notify.Notifier
}

// NewBlobStore opens (creating if needed) the database at dbPath.
func NewBlobStore(dbPath string, notifier notify.Notifier) (*BlobStore, error) {
	if dbPath == "" {
		return nil, errors.New("dbPath must not be empty")
	}
	if notifier == nil {
		return nil, errors.New("notifier must not be nil")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS app_state (
		namespace TEXT PRIMARY KEY,
		payload   TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create app_state table: %w", err)
	}

	return &BlobStore{db: db, notifier: notifier}, nil
}

// Close closes the database connection.
func (s *BlobStore) Close() error {
	return s.db.Close()
}

// Load returns the persisted state, or the default state when no blob
// exists yet. An unreadable or corrupt blob is logged and surfaced as an
// error notification, and the default state is returned; Load never fails.
func (s *BlobStore) Load(ctx context.Context) *model.AppState {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM app_state WHERE namespace = ?`, Namespace,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultState()
	}
	if err != nil {
		slog.Error("failed to read state blob", "namespace", Namespace, "error", err)
		s.notifier.Notify(notify.Error(msgLoadFailed))
		return model.DefaultState()
	}

	state := &model.AppState{}
	if err := json.Unmarshal([]byte(payload), state); err != nil {
		slog.Error("failed to decode state blob", "namespace", Namespace, "error", err)
		s.notifier.Notify(notify.Error(msgLoadFailed))
		return model.DefaultState()
	}

	state.Normalize()
	return state
}

// Save serializes and persists the full state. Failures are converted into
// notifications: a capacity failure suggests exporting, everything else
// gets the generic save-failure message. Save never returns an error.
func (s *BlobStore) Save(ctx context.Context, state *model.AppState) {
	payload, err := json.Marshal(state)
	if err != nil {
		slog.Error("failed to encode state blob", "error", err)
		s.notifier.Notify(notify.Error(msgSaveFailed))
		return
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO app_state (namespace, payload) VALUES (?, ?)
		 ON CONFLICT(namespace) DO UPDATE SET payload = excluded.payload`,
		Namespace, string(payload),
	)
	if err == nil {
		return
	}

	if isQuotaExceeded(err) {
		slog.Error("state write hit storage capacity", "error", err)
		s.notifier.Notify(notify.Error(msgQuotaFailed))
		return
	}
	slog.Error("failed to write state blob", "error", err)
	s.notifier.Notify(notify.Error(msgSaveFailed))
}

// isQuotaExceeded reports whether the write failed because the underlying
// storage is out of space.
func isQuotaExceeded(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrFull
	}
	return false
}
