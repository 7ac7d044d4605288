package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/emr-server/internal/model"
)

var _ model.Medium = (*Medium)(nil)

// dbtx is the subset of *pgxpool.Pool the medium uses.
type dbtx interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Medium keeps medium keys in the kv_entries table, one row per key.
type Medium struct {
	db        dbtx
	namespace string
}

func NewMedium(db *Connection, namespace string) *Medium {
	return &Medium{db: db, namespace: namespace}
}

func (m *Medium) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM kv_entries WHERE namespace = $1 AND key = $2`

	var value string
	err := m.db.QueryRow(ctx, query, m.namespace, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}

	return value, nil
}

func (m *Medium) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO kv_entries (namespace, key, value, updated_at)
			  VALUES ($1, $2, $3, now())
			  ON CONFLICT (namespace, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	if _, err := m.db.Exec(ctx, query, m.namespace, key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (m *Medium) Remove(ctx context.Context, key string) error {
	query := `DELETE FROM kv_entries WHERE namespace = $1 AND key = $2`

	if _, err := m.db.Exec(ctx, query, m.namespace, key); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}
