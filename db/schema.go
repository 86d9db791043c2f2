// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/region-timer/cliparse"
)

// Open connects to the configured database, verifies the connection and
// creates the schema.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	driver := "sqlite"
	if cfg.DatabaseType == cliparse.DatabasePostgres {
		driver = "postgres"
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DatabaseType, err)
	}

	if driver == "sqlite" {
		// SQLite allows a single writer; serialize instead of failing with SQLITE_BUSY
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Times are unix seconds so the same schema works on SQLite and PostgreSQL.
const schema = `
-- Timer runs
CREATE TABLE IF NOT EXISTS region_history (
    id TEXT PRIMARY KEY,
    region TEXT NOT NULL CHECK (region IN ('aa1', 'aa2', 'aa3', 'ac1', 'ac2', 'ac3')),
    start_time BIGINT NOT NULL,
    stop_time BIGINT,
    duration BIGINT
);

CREATE INDEX IF NOT EXISTS idx_region_history_region ON region_history(region, start_time);
CREATE INDEX IF NOT EXISTS idx_region_history_running ON region_history(stop_time);
`
