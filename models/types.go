package models

import (
	"time"

	"github.com/danielhkuo/region-timer/regions"
)

// Response types

// Both fields are nil when no timer is running
type CurrentlyActiveResponse struct {
	Region   *regions.Region `json:"region"`
	Duration *int64          `json:"duration"`
}

// Duration is elapsed whole seconds
type StopTimerResponse struct {
	Duration int64 `json:"duration"`
}

// Domain types

// RegionHistory is one persisted timer run.
// StopTime and Duration stay nil while the run is active.
type RegionHistory struct {
	ID        string         `json:"id"`
	Region    regions.Region `json:"region"`
	StartTime time.Time      `json:"start_time"`
	StopTime  *time.Time     `json:"stop_time"`
	Duration  *int64         `json:"duration"`
}

// RegionStats summarizes completed runs of one region (seconds)
type RegionStats struct {
	Region       regions.Region `json:"region"`
	Runs         int            `json:"runs"`
	TotalSeconds int64          `json:"total_seconds"`
	Mean         float64        `json:"mean"`
	Median       float64        `json:"median"`
	P10          float64        `json:"p10"`
	P90          float64        `json:"p90"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
