package history

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestUpSection(t *testing.T) {
	require.Equal(t, "\nCREATE TABLE a (x);\n", upSection("-- +migrate Up\nCREATE TABLE a (x);\n-- +migrate Down\nDROP TABLE a;\n"))
	require.Equal(t, "\nCREATE TABLE a (x);\n", upSection("-- +migrate Up\nCREATE TABLE a (x);\n"))
	require.Equal(t, "CREATE TABLE a (x);", upSection("CREATE TABLE a (x);"))
}

func TestApplyMigrationsRunsOnce(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	defer db.Close()

	mfs := fstest.MapFS{
		"0001_a.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE a (x INTEGER);\n-- +migrate Down\nDROP TABLE a;\n")},
		"0002_b.sql": {Data: []byte("CREATE TABLE b (y INTEGER);")},
		"README.md":  {Data: []byte("not a migration")},
	}
	ctx := context.Background()
	require.NoError(t, applyMigrations(ctx, db, mfs))
	// a second pass would fail on CREATE TABLE if files were re-run
	require.NoError(t, applyMigrations(ctx, db, mfs))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+migrationTable).Scan(&n))
	require.Equal(t, 2, n)

	require.Error(t, applyMigrations(ctx, nil, mfs))
}

func TestOpenAppliesConnectionPragmas(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	var journal string
	require.NoError(t, store.sqlDB.QueryRow(`PRAGMA journal_mode`).Scan(&journal))
	require.Equal(t, "wal", journal)

	var timeout, foreignKeys, synchronous int
	require.NoError(t, store.sqlDB.QueryRow(`PRAGMA busy_timeout`).Scan(&timeout))
	require.Equal(t, 5000, timeout)
	require.NoError(t, store.sqlDB.QueryRow(`PRAGMA foreign_keys`).Scan(&foreignKeys))
	require.Equal(t, 1, foreignKeys)
	require.NoError(t, store.sqlDB.QueryRow(`PRAGMA synchronous`).Scan(&synchronous))
	require.Equal(t, 1, synchronous)
}
