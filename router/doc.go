// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the region timer API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Timers:

	POST /api/{region}/start   - Start a timer (stops any other)
	POST /api/{region}/stop    - Stop the region's timer
	GET  /api/{region}/history - Past and running timers
	GET  /api/{region}/stats   - Duration statistics of completed runs
	GET  /api/currently_active - Running timer, if any

Root:

	GET / - Frontend from cfg.StaticDir (index.html fallback),
	        or a plain-text banner when no directory is configured
*/
package router
