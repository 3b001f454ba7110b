// Package localstore is the on-device persistence adapter: a durable
// key-value store over an embedded SQLite file, holding the JSON-coded
// aggregates ("projects", "profile") and the optional remote
// connection config.
//
// Values can be well beyond a few kilobytes since media fields may
// embed full data URLs. Opening the same file twice is idempotent and
// never resets existing data. Read/write failures are returned to the
// caller, who logs and degrades to memory-only operation; nothing here
// is allowed to take the site down.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Well-known keys.
const (
	KeyProjects     = "projects"
	KeyProfile      = "profile"
	KeyRemoteConfig = "remoteConfig"
)

// Store is an opened local store. Safe for concurrent use; database/sql
// serializes access to the underlying connection pool.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the store at path and ensures the
// kv table exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	stmts := []string{
		`PRAGMA journal_mode=WAL;`,
		`CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("init local store: %w", err)
		}
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the file path the store was opened with.
func (s *Store) Path() string { return s.path }

// Get decodes the value stored under key into dest. The boolean is
// false when the key is absent; dest is left untouched in that case.
func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

// Put stores value under key, JSON-encoded, replacing any previous
// value whole.
func (s *Store) Put(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, raw)
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Absent keys are a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Ping verifies the underlying database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
