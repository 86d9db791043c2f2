// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the JSON types shared by the server and the client.

# Response Types

  - CurrentlyActiveResponse: region, duration (both null when idle)
  - StopTimerResponse: duration
  - ErrorResponse: error, message

# Domain Types

  - RegionHistory: one timer run (start_time, stop_time, duration)
  - RegionStats: runs, total_seconds, mean, median, p10, p90

Durations are whole seconds. Region fields use regions.Region, so
decoding a response with an unknown region string fails.
*/
package models
