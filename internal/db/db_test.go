package db

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/launchpad/internal/config"
	"github.com/dmitrijs2005/launchpad/internal/repositories/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitDatabase_CreatesKVTable(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	db, err := InitDatabase(ctx, config.DriverSQLite, dsn)
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, tableExists(t, db, "goose_db_version"))
	assert.True(t, tableExists(t, db, "kv"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db, "sqlite3"))
	require.NoError(t, RunMigrations(ctx, db, "sqlite3"))
}

func TestRunMigrations_BadDialect(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.Error(t, RunMigrations(context.Background(), db, "oracle"))
}

func TestOpen_Memory(t *testing.T) {
	cfg := &config.Config{StorageDriver: config.DriverMemory}

	s, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &kv.MemoryStore{}, s)
	require.NoError(t, s.Close())
}

func TestOpen_SQLiteCreatesDataDir(t *testing.T) {
	ctx := context.Background()
	dataDir := filepath.Join(t.TempDir(), "data")
	cfg := &config.Config{StorageDriver: config.DriverSQLite, DataDir: dataDir}

	s, err := Open(ctx, cfg)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(filepath.Join(dataDir, "launchpad.db"))
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}

func TestOpen_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, &config.Config{StorageDriver: "mysql"})
	assert.ErrorContains(t, err, "unknown storage driver")

	_, err = Open(ctx, &config.Config{StorageDriver: config.DriverRedis, StorageDSN: "not a url"})
	assert.ErrorContains(t, err, "parse redis URL")
}
