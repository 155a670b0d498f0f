package db

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"agora-exchange/internal/pkg/config"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

//go:embed sqlite_schema.sql
var sqliteSchema string

// ConnectSQLite opens the database and applies the schema. The pool is pinned to a
// single connection: SQLite serializes writers anyway and ":memory:" databases are per connection.
func ConnectSQLite(cfg config.DBConfig) (*sqlx.DB, func(), error) {
	dsn := cfg.SQLitePath
	if dsn != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", cfg.SQLitePath)
	}

	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)
	conn.SetConnMaxIdleTime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if _, err := conn.ExecContext(ctx, sqliteSchema); err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("failed to apply sqlite schema: %w", err)
	}

	cleanup := func() {
		_ = conn.Close()
	}

	return conn, cleanup, nil
}
