package db

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/dmitrijs2005/launchpad/internal/config"
	"github.com/dmitrijs2005/launchpad/internal/db/migrations"
	"github.com/dmitrijs2005/launchpad/internal/dbx"
	"github.com/dmitrijs2005/launchpad/internal/filex"
	"github.com/dmitrijs2005/launchpad/internal/repositories/kv"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

const sqliteFile = "launchpad.db"

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// RunMigrations applies the embedded migrations for dialect ("sqlite3" or
// "postgres"). Applying them twice is a no-op.
func RunMigrations(ctx context.Context, db *sql.DB, dialect string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	dir := "sqlite"
	if dialect == "postgres" {
		dir = "postgres"
	}
	return goose.UpContext(ctx, db, dir)
}

// InitDatabase opens the SQL database for driver and brings its schema up to
// date.
func InitDatabase(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	sqlDriver, dialect := "sqlite", "sqlite3"
	if driver == config.DriverPostgres {
		sqlDriver, dialect = "pgx", "postgres"
	}

	db, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := RunMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return db, nil
}

// Open builds the kv.Store selected by cfg.
func Open(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return kv.NewMemoryStore(), nil

	case config.DriverRedis:
		opt, err := redis.ParseURL(cfg.StorageDSN)
		if err != nil {
			return nil, fmt.Errorf("parse redis URL: %w", err)
		}
		rdb := redis.NewClient(opt)
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		return kv.NewRedisStore(rdb, kv.DefaultRedisPrefix), nil

	case config.DriverPostgres:
		conn, err := InitDatabase(ctx, cfg.StorageDriver, cfg.StorageDSN)
		if err != nil {
			return nil, err
		}
		return kv.NewSQLStore(conn, dbx.Dollar), nil

	case config.DriverSQLite:
		dsn := cfg.StorageDSN
		if dsn == "" {
			dir, err := filex.EnsureDir(cfg.DataDir)
			if err != nil {
				return nil, err
			}
			dsn = filepath.Join(dir, sqliteFile)
		}
		conn, err := InitDatabase(ctx, cfg.StorageDriver, dsn)
		if err != nil {
			return nil, err
		}
		// one connection: code inside Update must only use the Repository it is handed
		conn.SetMaxOpenConns(1)
		return kv.NewSQLStore(conn, dbx.Question), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
