// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: SQLite file/DSN or PostgreSQL connection string
    (default: region_timer.db; required for postgres)
  - DatabaseType: sqlite (default) or postgres
  - StaticDir: Frontend build served at / (optional)

# CLI Flags

	-p       Server port
	-d       Database URL
	-t       Database type
	-static  Frontend directory
	-env     .env file to load

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	STATIC_DIR    → -static

Before the fallback, a .env file is loaded with godotenv: the file named
by -env (which must exist) or ./.env (optional). Variables already present
in the process environment are not overwritten.

CLI flags take precedence over environment variables.
*/
package cliparse
