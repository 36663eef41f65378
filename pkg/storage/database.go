package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-trails/pkg/config"
	"github.com/goliatone/go-trails/pkg/interfaces/logger"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open connects to the configured database and ensures the module schema.
func Open(ctx context.Context, cfg config.PersistenceConfig, lgr logger.Logger) (*bun.DB, error) {
	lgr = logger.Ensure(lgr)
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		dsn = config.Defaults().Persistence.DSN
	}

	var db *bun.DB
	switch driver := strings.ToLower(strings.TrimSpace(cfg.Driver)); driver {
	case "", DriverSQLite:
		if err := ensureSQLiteDir(dsn); err != nil {
			return nil, err
		}
		sqldb, err := sql.Open(sqliteshim.DriverName(), dsn)
		if err != nil {
			return nil, fmt.Errorf("persistence: open sqlite: %w", err)
		}
		db = bun.NewDB(sqldb, sqlitedialect.New())
	case DriverPostgres, "pg":
		sqldb, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("persistence: open postgres: %w", err)
		}
		db = bun.NewDB(sqldb, pgdialect.New())
	default:
		return nil, fmt.Errorf("persistence: unsupported driver %s", cfg.Driver)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("persistence: ping: %w", err)
	}
	if cfg.AutoMigrate {
		if err := EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		lgr.Debug("persistence: schema ensured", "driver", cfg.Driver)
	}
	return db, nil
}

// EnsureSchema creates the module tables when missing.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	for _, model := range Models() {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("persistence: create table for %T: %w", model, err)
		}
	}
	return nil
}

func ensureSQLiteDir(dsn string) error {
	if !strings.HasPrefix(dsn, "file:") {
		return nil
	}
	path := strings.TrimPrefix(dsn, "file:")
	if idx := strings.Index(path, "?"); idx >= 0 {
		path = path[:idx]
	}
	if path == "" || path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
