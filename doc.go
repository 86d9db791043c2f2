// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the region timer API server.

The region timer tracks how long work runs in each of six regions
(aa1, aa2, aa3, ac1, ac2, ac3). At most one timer runs at a time.

# Starting the Server

With defaults (SQLite file region_timer.db, port 3000):

	go run .

Or with flags:

	go run . -p 3000 -t postgres -d "postgres://..." -static ./static

# Configuration

Settings come from flags, then the environment, then a .env file:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_URL (-d): Database file or connection string
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - STATIC_DIR (-static): Frontend build to serve at /

# Architecture

Server:

  - handlers: Timer start/stop/history/currently-active handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - db: Connection and schema creation
  - cliparse: Configuration parsing

Client:

  - regions: The closed set of regions
  - client: HTTP client for the API
  - state: Reactive application state snapshots
  - tracker: Applies API results to the state
  - cmd/timerctl: Command-line client

See package documentation for each component.
*/
package main
