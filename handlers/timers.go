// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/region-timer/cliparse"
	"github.com/danielhkuo/region-timer/middleware"
	"github.com/danielhkuo/region-timer/models"
	"github.com/danielhkuo/region-timer/regions"
)

var ErrTimerNotRunning = errors.New("no timer is running for the region")

type TimerHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	now func() time.Time
}

func NewTimerHandler(db *sql.DB, cfg cliparse.Config) *TimerHandler {
	return &TimerHandler{db: db, cfg: cfg, now: time.Now}
}

// StartTimer handles POST /api/{region}/start
// Stops whatever timer is running (any region) and starts one for region.
func (h *TimerHandler) StartTimer(w http.ResponseWriter, r *http.Request) {
	region, ok := regionFromPath(w, r)
	if !ok {
		return
	}

	runID, err := StartRun(h.db, region, h.now())
	if err != nil {
		slog.Error("failed to start timer", "region", region, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("timer started", "region", region, "run_id", runID)
	w.WriteHeader(http.StatusOK)
}

// StopTimer handles POST /api/{region}/stop
// Returns the elapsed seconds, or 422 if region has no running timer.
func (h *TimerHandler) StopTimer(w http.ResponseWriter, r *http.Request) {
	region, ok := regionFromPath(w, r)
	if !ok {
		return
	}

	duration, err := StopRun(h.db, region, h.now())
	if errors.Is(err, ErrTimerNotRunning) {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "No timer is running for the region")
		return
	}
	if err != nil {
		slog.Error("failed to stop timer", "region", region, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("timer stopped", "region", region, "duration", duration)
	middleware.JSONResponse(w, http.StatusOK, models.StopTimerResponse{
		Duration: duration,
	})
}

// CurrentlyActive handles GET /api/currently_active
func (h *TimerHandler) CurrentlyActive(w http.ResponseWriter, r *http.Request) {
	var region regions.Region
	var startTime int64
	err := h.db.QueryRow(`
		SELECT region, start_time
		FROM region_history
		WHERE stop_time IS NULL
		ORDER BY start_time DESC
		LIMIT 1
	`).Scan(&region, &startTime)

	if err == sql.ErrNoRows {
		middleware.JSONResponse(w, http.StatusOK, models.CurrentlyActiveResponse{})
		return
	}
	if err != nil {
		slog.Error("failed to query running timer", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	duration := h.now().Unix() - startTime
	middleware.JSONResponse(w, http.StatusOK, models.CurrentlyActiveResponse{
		Region:   &region,
		Duration: &duration,
	})
}

// History handles GET /api/{region}/history
// Returns all runs for region, newest first.
func (h *TimerHandler) History(w http.ResponseWriter, r *http.Request) {
	region, ok := regionFromPath(w, r)
	if !ok {
		return
	}

	rows, err := h.db.Query(`
		SELECT id, region, start_time, stop_time, duration
		FROM region_history
		WHERE region = $1
		ORDER BY start_time DESC
	`, region)
	if err != nil {
		slog.Error("failed to query history", "region", region, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	history := []models.RegionHistory{}
	for rows.Next() {
		var entry models.RegionHistory
		var startTime int64
		var stopTime, duration sql.NullInt64

		if err := rows.Scan(&entry.ID, &entry.Region, &startTime, &stopTime, &duration); err != nil {
			slog.Error("failed to scan history", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		entry.StartTime = time.Unix(startTime, 0).UTC()
		if stopTime.Valid {
			t := time.Unix(stopTime.Int64, 0).UTC()
			entry.StopTime = &t
		}
		if duration.Valid {
			d := duration.Int64
			entry.Duration = &d
		}

		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate history", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, history)
}

// StartRun closes any running run and inserts a new one for region.
// Returns the new run's ID.
func StartRun(db *sql.DB, region regions.Region, now time.Time) (string, error) {
	tx, err := db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	ts := now.Unix()

	// Only one timer runs at a time
	_, err = tx.Exec(`
		UPDATE region_history
		SET stop_time = $1, duration = $1 - start_time
		WHERE stop_time IS NULL
	`, ts)
	if err != nil {
		return "", err
	}

	runID := uuid.NewString()
	_, err = tx.Exec(`
		INSERT INTO region_history (id, region, start_time)
		VALUES ($1, $2, $3)
	`, runID, region, ts)
	if err != nil {
		return "", err
	}

	return runID, tx.Commit()
}

// StopRun closes the running run of region and returns its duration in seconds.
// Returns ErrTimerNotRunning if region has none.
func StopRun(db *sql.DB, region regions.Region, now time.Time) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var runID string
	var startTime int64
	err = tx.QueryRow(`
		SELECT id, start_time
		FROM region_history
		WHERE region = $1 AND stop_time IS NULL
		ORDER BY start_time DESC
		LIMIT 1
	`, region).Scan(&runID, &startTime)
	if err == sql.ErrNoRows {
		return 0, ErrTimerNotRunning
	}
	if err != nil {
		return 0, err
	}

	ts := now.Unix()
	duration := ts - startTime
	_, err = tx.Exec(`
		UPDATE region_history SET stop_time = $1, duration = $2 WHERE id = $3
	`, ts, duration, runID)
	if err != nil {
		return 0, err
	}

	return duration, tx.Commit()
}

// regionFromPath parses the {region} path value, writing a 400 on failure
func regionFromPath(w http.ResponseWriter, r *http.Request) (regions.Region, bool) {
	region, err := regions.Parse(r.PathValue("region"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "region must be one of: aa1, aa2, aa3, ac1, ac2, ac3")
		return 0, false
	}
	return region, true
}
