//go:build integration
// +build integration

package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	dbConfig "github.com/clubhq/membership/internal/database/config"
	"github.com/clubhq/membership/internal/database/migrate"
)

func TestConnectAndMigrate(t *testing.T) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("membership_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		_ = pgContainer.Terminate(ctx)
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg, err := dbConfig.ParseConnectionString(connStr)
	require.NoError(t, err)

	db, err := NewWithConfig(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = Close(db)
	})

	require.NoError(t, HealthCheck(ctx, db))

	t.Setenv("MIGRATIONS_PATH", "../../migrations")
	require.NoError(t, migrate.Up(db))
	// Idempotent: a second run is a no-change.
	require.NoError(t, migrate.Up(db))

	for _, table := range []string{"members", "teams", "team_members"} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s", table)
	}
}
