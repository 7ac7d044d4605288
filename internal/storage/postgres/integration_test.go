//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/emr-server/internal/model"
	"github.com/dtroode/emr-server/internal/storage/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "emr_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/emr_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestMedium_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, conn.Ping(ctx))

	a := postgres.NewMedium(conn, "clinic-a")
	b := postgres.NewMedium(conn, "clinic-b")

	_, err = a.Get(ctx, model.KeyPatients)
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, a.Set(ctx, model.KeyPatients, `[{"id":"p1"}]`))
	require.NoError(t, a.Set(ctx, model.KeyPatients, `[{"id":"p1"},{"id":"p2"}]`))

	v, err := a.Get(ctx, model.KeyPatients)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"p1"},{"id":"p2"}]`, v)

	_, err = b.Get(ctx, model.KeyPatients)
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, a.Remove(ctx, model.KeyPatients))
	_, err = a.Get(ctx, model.KeyPatients)
	assert.ErrorIs(t, err, model.ErrNotFound)
	require.NoError(t, a.Remove(ctx, model.KeyPatients))

	// migrations are idempotent
	again, err := postgres.NewConnection(ctx, dsn)
	require.NoError(t, err)
	_ = again.Close()
}
