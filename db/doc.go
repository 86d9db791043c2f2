// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open picks the driver from the configuration, pings and creates the schema:

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}

Supported database types:

  - sqlite: modernc.org/sqlite (pure Go, default)
  - postgres: github.com/lib/pq

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - region_history: one row per timer run

A run with a NULL stop_time is running. At most one run is running at
any time; the start handler stops the previous one in the same
transaction.

Timestamps are stored as unix seconds and duration as whole seconds.
*/
package db
