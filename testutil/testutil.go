// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/region-timer/cliparse"
	"github.com/danielhkuo/region-timer/db"
	"github.com/danielhkuo/region-timer/regions"
)

// SetupTestDB creates a fresh SQLite database file with the full schema.
// The file lives in t.TempDir and is closed automatically.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(GetTestConfig(t))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()

	return cliparse.Config{
		Port:         3000,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  filepath.Join(t.TempDir(), "region_timer_test.db"),
	}
}

// CreateTestRun inserts a timer run and returns its ID.
// A zero stop time leaves the run running.
func CreateTestRun(t *testing.T, conn *sql.DB, region regions.Region, start, stop time.Time) string {
	t.Helper()

	var stopTime, duration sql.NullInt64
	if !stop.IsZero() {
		stopTime = sql.NullInt64{Int64: stop.Unix(), Valid: true}
		duration = sql.NullInt64{Int64: stop.Unix() - start.Unix(), Valid: true}
	}

	runID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO region_history (id, region, start_time, stop_time, duration)
		VALUES ($1, $2, $3, $4, $5)
	`, runID, region, start.Unix(), stopTime, duration)
	if err != nil {
		t.Fatalf("Failed to create test run: %v", err)
	}

	return runID
}

// CountRunning returns the number of runs without a stop time
func CountRunning(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM region_history WHERE stop_time IS NULL`).Scan(&n); err != nil {
		t.Fatalf("Failed to count running timers: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request with a region path value set
func MakeRequest(method, path string, region string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Content-Type", "application/json")
	if region != "" {
		req.SetPathValue("region", region)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
