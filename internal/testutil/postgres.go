// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package testutil

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gallery/internal/platform/migration"
	"github.com/taibuivan/gallery/internal/platform/postgres"
)

// TestDatabaseEnv names the variable holding the integration database URL.
const TestDatabaseEnv = "TEST_DATABASE_URL"

// Logger returns a logger that drops everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MigrationsPath resolves data/migrations relative to this source file so
// tests work from any package directory.
func MigrationsPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "data", "migrations")
}

// SetupTestDB rebuilds the schema of the database named by TEST_DATABASE_URL
// from the migrations and returns a pool closed on cleanup. The test is
// skipped when the variable is unset.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv(TestDatabaseEnv)
	if dsn == "" {
		t.Skipf("%s not set; skipping integration test", TestDatabaseEnv)
	}

	logger := Logger()

	// 1. Drop everything a previous test left behind
	require.NoError(t, migration.RunDown(dsn, MigrationsPath(), logger))

	// 2. Recreate the schema with fresh id sequences
	require.NoError(t, migration.RunUp(dsn, MigrationsPath(), logger))

	pool, err := postgres.NewPool(context.Background(), dsn, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}
