package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/emr-server/internal/model"
)

func openTemp(t *testing.T, namespace string) (*Medium, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "emr.db")
	m, err := Open(context.Background(), path, namespace)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m, path
}

func TestMedium_RoundTrip(t *testing.T) {
	ctx := context.Background()
	m, _ := openTemp(t, "clinic")

	_, err := m.Get(ctx, model.KeyMessages)
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, m.Set(ctx, model.KeyMessages, `[]`))
	require.NoError(t, m.Set(ctx, model.KeyMessages, `[{"id":"m1"}]`))

	v, err := m.Get(ctx, model.KeyMessages)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"m1"}]`, v)

	require.NoError(t, m.Remove(ctx, model.KeyMessages))
	_, err = m.Get(ctx, model.KeyMessages)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.NoError(t, m.Remove(ctx, model.KeyMessages))
}

func TestMedium_Namespaces(t *testing.T) {
	ctx := context.Background()
	a, path := openTemp(t, "a")

	require.NoError(t, a.Set(ctx, model.KeyUsers, `[{"id":"u1"}]`))

	b := New(a.db, "b")
	_, err := b.Get(ctx, model.KeyUsers)
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, a.Close())
	reopened, err := Open(ctx, path, "a")
	require.NoError(t, err)
	defer reopened.Close()

	v, err := reopened.Get(ctx, model.KeyUsers)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"u1"}]`, v)
}

func TestMedium_Errors(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := New(db, "ns")
	boom := errors.New("disk I/O error")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_entries`)).
		WithArgs("ns", "patients").
		WillReturnError(boom)
	_, err = m.Get(ctx, "patients")
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to get patients")

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv_entries`)).
		WithArgs("ns", "patients", "[]").
		WillReturnError(boom)
	err = m.Set(ctx, "patients", "[]")
	assert.ErrorIs(t, err, boom)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv_entries`)).
		WithArgs("ns", "patients").
		WillReturnError(boom)
	err = m.Remove(ctx, "patients")
	assert.ErrorIs(t, err, boom)

	assert.NoError(t, mock.ExpectationsWereMet())
}
