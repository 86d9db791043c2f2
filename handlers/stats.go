// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"sort"

	"github.com/danielhkuo/region-timer/middleware"
	"github.com/danielhkuo/region-timer/models"
	"github.com/danielhkuo/region-timer/regions"
)

// Stats handles GET /api/{region}/stats
// Summarizes completed runs; a running timer is not counted.
func (h *TimerHandler) Stats(w http.ResponseWriter, r *http.Request) {
	region, ok := regionFromPath(w, r)
	if !ok {
		return
	}

	stats, err := ComputeRegionStats(h.db, region)
	if err != nil {
		slog.Error("failed to compute stats", "region", region, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}

// ComputeRegionStats loads all completed durations of region and
// summarizes them. Zero runs yield all-zero statistics.
func ComputeRegionStats(db *sql.DB, region regions.Region) (models.RegionStats, error) {
	stats := models.RegionStats{Region: region}

	durations, err := getCompletedDurations(db, region)
	if err != nil {
		return stats, err
	}
	if len(durations) == 0 {
		return stats, nil
	}

	// Sort for percentile calculations
	sort.Float64s(durations)

	var total float64
	for _, d := range durations {
		total += d
	}

	stats.Runs = len(durations)
	stats.TotalSeconds = int64(total)
	stats.Mean = total / float64(len(durations))
	stats.Median = percentile(durations, 0.5)
	stats.P10 = percentile(durations, 0.1)
	stats.P90 = percentile(durations, 0.9)
	return stats, nil
}

func getCompletedDurations(db *sql.DB, region regions.Region) ([]float64, error) {
	rows, err := db.Query(`
		SELECT duration
		FROM region_history
		WHERE region = $1 AND duration IS NOT NULL
	`, region)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var durations []float64
	for rows.Next() {
		var d int64
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		durations = append(durations, float64(d))
	}
	return durations, rows.Err()
}

// percentile calculates the p-th percentile of sorted data
// using linear interpolation between closest ranks
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0.0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := p * float64(len(sorted)-1)
	lower := int(rank)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := rank - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
