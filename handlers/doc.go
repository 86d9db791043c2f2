// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the region timer API.

# Handler Types

TimerHandler is a struct with database and config dependencies:

	timerHandler := handlers.NewTimerHandler(db, cfg)

# Timer Lifecycle

At most one timer runs at a time:

	POST /api/{region}/start  → StartTimer (stops any running timer first)
	POST /api/{region}/stop   → StopTimer (returns {"duration": seconds})
	GET  /api/currently_active → CurrentlyActive ({"region", "duration"} or nulls)
	GET  /api/{region}/history → History (newest first)
	GET  /api/{region}/stats   → Stats (runs, total, mean, median, p10, p90)

{region} must be one of aa1, aa2, aa3, ac1, ac2, ac3; anything else is a
400. Stopping a region without a running timer is a 422.

# Storage Helpers

StartRun and StopRun perform the transactional updates and are usable
outside HTTP:

	duration, err := handlers.StopRun(db, regions.Aa1, time.Now())
	if errors.Is(err, handlers.ErrTimerNotRunning) {
		// nothing to stop
	}
*/
package handlers
