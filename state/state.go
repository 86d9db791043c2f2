// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package state

import (
	"sync"
	"sync/atomic"

	"github.com/danielhkuo/region-timer/models"
	"github.com/danielhkuo/region-timer/regions"
)

// ApplicationState is one immutable snapshot of what the UI shows.
// A nil field means "nothing". Values reached through the pointers are
// never modified after the snapshot is published.
type ApplicationState struct {
	ActiveRegion    *regions.Region
	CurrentDuration *int64
	LastStopped     *regions.LastStopped
}

// WithCurrentlyActive mirrors a currently_active response.
// A response with either field missing is treated as idle.
func (s ApplicationState) WithCurrentlyActive(resp models.CurrentlyActiveResponse) ApplicationState {
	if resp.Region == nil || resp.Duration == nil {
		s.ActiveRegion = nil
		s.CurrentDuration = nil
		return s
	}
	region, duration := *resp.Region, *resp.Duration
	s.ActiveRegion = &region
	s.CurrentDuration = &duration
	return s
}

// WithStarted marks region as running from zero
func (s ApplicationState) WithStarted(region regions.Region) ApplicationState {
	var zero int64
	s.ActiveRegion = &region
	s.CurrentDuration = &zero
	return s
}

// WithStopped clears the active timer and records it as LastStopped
func (s ApplicationState) WithStopped(region regions.Region, duration int64) ApplicationState {
	s.ActiveRegion = nil
	s.CurrentDuration = nil
	s.LastStopped = &regions.LastStopped{Region: region, Duration: duration}
	return s
}

// Store holds the session-wide snapshot. Replacements are atomic, so a
// reader never sees fields from two different snapshots.
type Store struct {
	current atomic.Pointer[ApplicationState]

	mu     sync.Mutex
	nextID int
	subs   map[int]func(ApplicationState)
}

// NewStore returns a store holding the all-nil initial state
func NewStore() *Store {
	s := &Store{subs: make(map[int]func(ApplicationState))}
	s.current.Store(&ApplicationState{})
	return s
}

// Load returns the current snapshot
func (s *Store) Load() ApplicationState {
	return *s.current.Load()
}

// Set replaces the snapshot wholesale and notifies subscribers
func (s *Store) Set(next ApplicationState) {
	s.current.Store(&next)
	s.notify(next)
}

// Update applies fn to the current snapshot and publishes the result.
// fn may run more than once under contention and must not have side effects.
func (s *Store) Update(fn func(ApplicationState) ApplicationState) ApplicationState {
	for {
		old := s.current.Load()
		next := fn(*old)
		if s.current.CompareAndSwap(old, &next) {
			s.notify(next)
			return next
		}
	}
}

// Subscribe registers fn to receive every new snapshot.
// The returned func removes the subscription.
func (s *Store) Subscribe(fn func(ApplicationState)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify(next ApplicationState) {
	s.mu.Lock()
	fns := make([]func(ApplicationState), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}
