// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tracker

import (
	"log/slog"

	"github.com/danielhkuo/region-timer/models"
	"github.com/danielhkuo/region-timer/regions"
	"github.com/danielhkuo/region-timer/state"
)

// API is the subset of *client.Client the tracker needs
type API interface {
	FetchCurrentlyActive() (models.CurrentlyActiveResponse, error)
	StartTimer(region regions.Region) error
	StopTimer(region regions.Region) (models.StopTimerResponse, error)
}

// Tracker turns UI actions into API calls and publishes the results to a
// state.Store. On error the store is left untouched.
type Tracker struct {
	api   API
	store *state.Store
}

func New(api API, store *state.Store) *Tracker {
	return &Tracker{api: api, store: store}
}

// Store returns the store the tracker publishes to
func (t *Tracker) Store() *state.Store {
	return t.store
}

// Refresh mirrors the server's currently active timer into the store
func (t *Tracker) Refresh() (state.ApplicationState, error) {
	resp, err := t.api.FetchCurrentlyActive()
	if err != nil {
		return t.store.Load(), err
	}

	return t.store.Update(func(s state.ApplicationState) state.ApplicationState {
		return s.WithCurrentlyActive(resp)
	}), nil
}

// Start starts the timer for region
func (t *Tracker) Start(region regions.Region) error {
	if err := t.api.StartTimer(region); err != nil {
		return err
	}

	t.store.Update(func(s state.ApplicationState) state.ApplicationState {
		return s.WithStarted(region)
	})
	slog.Debug("timer started", "region", region)
	return nil
}

// Stop stops the timer for region and records it as last stopped
func (t *Tracker) Stop(region regions.Region) (regions.LastStopped, error) {
	resp, err := t.api.StopTimer(region)
	if err != nil {
		return regions.LastStopped{}, err
	}

	t.store.Update(func(s state.ApplicationState) state.ApplicationState {
		return s.WithStopped(region, resp.Duration)
	})
	slog.Debug("timer stopped", "region", region, "duration", resp.Duration)
	return regions.LastStopped{Region: region, Duration: resp.Duration}, nil
}
