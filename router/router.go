// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/danielhkuo/region-timer/cliparse"
	"github.com/danielhkuo/region-timer/handlers"
	"github.com/danielhkuo/region-timer/middleware"
)

const Banner = "region-timer API v1"

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	timerHandler := handlers.NewTimerHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Timer operations
	mux.HandleFunc("POST /api/{region}/start", middleware.WithLogging(timerHandler.StartTimer))
	mux.HandleFunc("POST /api/{region}/stop", middleware.WithLogging(timerHandler.StopTimer))
	mux.HandleFunc("GET /api/{region}/history", middleware.WithLogging(timerHandler.History))
	mux.HandleFunc("GET /api/{region}/stats", middleware.WithLogging(timerHandler.Stats))
	mux.HandleFunc("GET /api/currently_active", middleware.WithLogging(timerHandler.CurrentlyActive))

	// Root endpoint: frontend build if configured
	if cfg.StaticDir != "" {
		mux.Handle("GET /", staticHandler(cfg.StaticDir))
	} else {
		mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(Banner))
		})
	}

	return mux
}

// staticHandler serves files from dir and falls back to index.html for
// unknown paths so client-side routes resolve.
func staticHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
		if _, err := os.Stat(name); errors.Is(err, fs.ErrNotExist) {
			http.ServeFile(w, r, index)
			return
		}
		files.ServeHTTP(w, r)
	})
}
