// Package sqlite keeps medium keys in a SQLite table.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/dtroode/emr-server/database"
	"github.com/dtroode/emr-server/internal/model"
)

var _ model.Medium = (*Medium)(nil)

type Medium struct {
	db        *sql.DB
	namespace string
}

// Open opens the database at path, applies migrations and scopes keys to namespace.
func Open(ctx context.Context, path, namespace string) (*Medium, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := database.MigrateSQLite(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return New(db, namespace), nil
}

// New wraps an already migrated database.
func New(db *sql.DB, namespace string) *Medium {
	return &Medium{db: db, namespace: namespace}
}

func (m *Medium) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM kv_entries WHERE namespace = ? AND key = ?`

	var value string
	err := m.db.QueryRowContext(ctx, query, m.namespace, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", model.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

func (m *Medium) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO kv_entries (namespace, key, value, updated_at)
		VALUES (?, ?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	if _, err := m.db.ExecContext(ctx, query, m.namespace, key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (m *Medium) Remove(ctx context.Context, key string) error {
	query := `DELETE FROM kv_entries WHERE namespace = ? AND key = ?`

	if _, err := m.db.ExecContext(ctx, query, m.namespace, key); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

func (m *Medium) Close() error {
	return m.db.Close()
}
