// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/region-timer/models"
	"github.com/danielhkuo/region-timer/regions"
	"github.com/danielhkuo/region-timer/testutil"
)

func TestPercentileCalculation(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		p        float64
		expected float64
	}{
		{"empty", []float64{}, 0.5, 0.0},
		{"single value", []float64{5.0}, 0.5, 5.0},
		{"median of odd count", []float64{1.0, 2.0, 3.0}, 0.5, 2.0},
		{"median of even count", []float64{1.0, 2.0, 3.0, 4.0}, 0.5, 2.5},
		{"10th percentile", []float64{1.0, 2.0, 3.0, 4.0, 5.0}, 0.1, 1.4},
		{"90th percentile", []float64{1.0, 2.0, 3.0, 4.0, 5.0}, 0.9, 4.6},
		{"min (p=0)", []float64{1.0, 2.0, 3.0}, 0.0, 1.0},
		{"max (p=1)", []float64{1.0, 2.0, 3.0}, 1.0, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := percentile(tt.data, tt.p)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("percentile(%v, %f) = %f, want %f", tt.data, tt.p, result, tt.expected)
			}
		})
	}
}

func TestComputeRegionStats(t *testing.T) {
	db := testutil.SetupTestDB(t)

	base := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	for i, secs := range []int{10, 20, 30, 40, 50} {
		start := base.Add(time.Duration(i) * time.Hour)
		testutil.CreateTestRun(t, db, regions.Ac1, start, start.Add(time.Duration(secs)*time.Second))
	}
	// Running and other-region runs are excluded
	testutil.CreateTestRun(t, db, regions.Ac1, base.Add(10*time.Hour), time.Time{})
	testutil.CreateTestRun(t, db, regions.Aa1, base, base.Add(time.Hour))

	stats, err := ComputeRegionStats(db, regions.Ac1)
	if err != nil {
		t.Fatalf("ComputeRegionStats() error = %v", err)
	}

	if stats.Runs != 5 {
		t.Errorf("Expected 5 runs, got %d", stats.Runs)
	}
	if stats.TotalSeconds != 150 {
		t.Errorf("Expected total 150, got %d", stats.TotalSeconds)
	}
	if stats.Mean != 30 || stats.Median != 30 {
		t.Errorf("Expected mean and median 30, got %f and %f", stats.Mean, stats.Median)
	}
	if math.Abs(stats.P10-14) > 1e-9 || math.Abs(stats.P90-46) > 1e-9 {
		t.Errorf("Unexpected percentiles p10=%f p90=%f", stats.P10, stats.P90)
	}
}

func TestStatsHandler(t *testing.T) {
	h, _, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	h.Stats(w, testutil.MakeRequest("GET", "/api/aa2/stats", "aa2"))
	testutil.AssertStatus(t, w, http.StatusOK)

	var stats models.RegionStats
	testutil.AssertJSON(t, w, &stats)
	if stats.Region != regions.Aa2 || stats.Runs != 0 {
		t.Errorf("Expected empty stats for aa2, got %+v", stats)
	}

	w = httptest.NewRecorder()
	h.Stats(w, testutil.MakeRequest("GET", "/api/bogus/stats", "bogus"))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
