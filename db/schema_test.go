// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"path/filepath"
	"testing"

	"github.com/danielhkuo/region-timer/cliparse"
)

func TestOpenSQLite(t *testing.T) {
	cfg := cliparse.Config{
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  filepath.Join(t.TempDir(), "timer.db"),
	}

	conn, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer conn.Close()

	// Schema creation is idempotent
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("second CreateSchema() error = %v", err)
	}

	if _, err := conn.Exec(`
		INSERT INTO region_history (id, region, start_time) VALUES ($1, $2, $3)
	`, "run-1", "aa1", 100); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM region_history WHERE stop_time IS NULL`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected 1 running entry, got %d", count)
	}
}

func TestSchemaRejectsUnknownRegion(t *testing.T) {
	cfg := cliparse.Config{
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  filepath.Join(t.TempDir(), "timer.db"),
	}

	conn, err := Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	_, err = conn.Exec(`
		INSERT INTO region_history (id, region, start_time) VALUES ($1, $2, $3)
	`, "run-1", "north", 100)
	if err == nil {
		t.Error("expected CHECK constraint to reject unknown region")
	}
}
