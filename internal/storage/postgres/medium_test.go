package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/emr-server/internal/model"
)

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.value
	return nil
}

type fakeDB struct {
	row     fakeRow
	execErr error

	lastSQL  string
	lastArgs []any
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.lastSQL, f.lastArgs = sql, args
	return f.row
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.lastSQL, f.lastArgs = sql, args
	return pgconn.CommandTag{}, f.execErr
}

func TestNewMedium(t *testing.T) {
	db := &Connection{}
	m := NewMedium(db, "clinic")

	assert.NotNil(t, m)
	assert.Equal(t, db, m.db)
	assert.Equal(t, "clinic", m.namespace)
}

func TestMedium_Get(t *testing.T) {
	tests := []struct {
		name    string
		row     fakeRow
		want    string
		wantErr error
	}{
		{name: "found", row: fakeRow{value: `[]`}, want: `[]`},
		{name: "missing", row: fakeRow{err: pgx.ErrNoRows}, wantErr: model.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &fakeDB{row: tt.row}
			m := &Medium{db: db, namespace: "ns"}

			got, err := m.Get(context.Background(), model.KeyPatients)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []any{"ns", model.KeyPatients}, db.lastArgs)
		})
	}

	t.Run("driver error", func(t *testing.T) {
		boom := errors.New("conn reset")
		m := &Medium{db: &fakeDB{row: fakeRow{err: boom}}, namespace: "ns"}

		_, err := m.Get(context.Background(), model.KeyPatients)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, model.ErrNotFound)
	})
}

func TestMedium_SetRemove(t *testing.T) {
	db := &fakeDB{}
	m := &Medium{db: db, namespace: "ns"}

	require.NoError(t, m.Set(context.Background(), model.KeyUsers, `[]`))
	assert.Contains(t, db.lastSQL, "ON CONFLICT")
	assert.Equal(t, []any{"ns", model.KeyUsers, `[]`}, db.lastArgs)

	require.NoError(t, m.Remove(context.Background(), model.KeyUsers))
	assert.Contains(t, db.lastSQL, "DELETE FROM kv_entries")

	db.execErr = errors.New("read only")
	assert.ErrorContains(t, m.Set(context.Background(), model.KeyUsers, `[]`), "failed to set users")
	assert.ErrorContains(t, m.Remove(context.Background(), model.KeyUsers), "failed to remove users")
}
