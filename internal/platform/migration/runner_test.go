package migration_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gallery/internal/platform/migration"
	"github.com/taibuivan/gallery/internal/testutil"
)

/*
TestToPgx5DSN verifies the scheme rewrite golang-migrate needs.
*/
func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"postgres_scheme", "postgres://u:p@localhost:5432/gallery", "pgx5://u:p@localhost:5432/gallery"},
		{"postgresql_scheme", "postgresql://localhost/gallery?sslmode=disable", "pgx5://localhost/gallery?sslmode=disable"},
		{"already_pgx5", "pgx5://localhost/gallery", "pgx5://localhost/gallery"},
		{"keyword_dsn", "host=localhost dbname=gallery", "host=localhost dbname=gallery"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, migration.ToPgx5DSN(tt.dsn))
		})
	}
}

/*
TestRunDown_RunUp verifies that a reverted schema can be migrated again.
*/
func TestRunDown_RunUp(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	dsn := os.Getenv(testutil.TestDatabaseEnv)
	logger := testutil.Logger()

	// 1. Down removes the gallery tables
	require.NoError(t, migration.RunDown(dsn, testutil.MigrationsPath(), logger))
	var table *string
	require.NoError(t, pool.QueryRow(ctx, "SELECT to_regclass('paintings')::text").Scan(&table))
	assert.Nil(t, table)

	// 2. Up restores them and a second Up is a no-op
	require.NoError(t, migration.RunUp(dsn, testutil.MigrationsPath(), logger))
	require.NoError(t, migration.RunUp(dsn, testutil.MigrationsPath(), logger))
	require.NoError(t, pool.QueryRow(ctx, "SELECT to_regclass('paintings')::text").Scan(&table))
	assert.Equal(t, "paintings", *table)
}
