// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client wraps the region timer HTTP API.

# Usage

	c := client.New("http://127.0.0.1:3000")

	if err := c.StartTimer(regions.Ac2); err != nil {
		return err
	}
	stopped, err := c.StopTimer(regions.Ac2)

# Operations

Each call is exactly one request:

	FetchCurrentlyActive → GET  /api/currently_active
	StartTimer(region)   → POST /api/{region}/start
	StopTimer(region)    → POST /api/{region}/stop
	FetchHistory(region) → GET  /api/{region}/history
	FetchStats(region)   → GET  /api/{region}/stats

All requests carry Content-Type: application/json. There is no retry,
no caching and no client-side check of which region is running; the
server owns that policy.

# Errors

A non-2xx status of any kind becomes an error wrapping ErrRequestFailed
with a message naming the operation and, where relevant, the region:

	failed to start timer for ac2: request failed

Transport errors from http.Client and JSON decode errors are returned
unwrapped.
*/
package client
