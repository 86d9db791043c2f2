// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package state holds the UI-visible application state.

# Snapshots

ApplicationState has three nullable fields:

  - ActiveRegion: region of the running timer
  - CurrentDuration: its elapsed seconds
  - LastStopped: region and duration of the last stopped timer

A Store starts with all three nil. State never changes field by field;
each transition builds a new snapshot and swaps it in:

	store.Update(func(s state.ApplicationState) state.ApplicationState {
		return s.WithStopped(regions.Aa1, 42)
	})

# Observers

Subscribe registers a callback that receives each new snapshot:

	cancel := store.Subscribe(func(s state.ApplicationState) {
		render(s)
	})
	defer cancel()

Callbacks run synchronously on the goroutine that replaced the snapshot.
When several goroutines write at once, callbacks may observe snapshots
out of order; Load always returns the latest one.
*/
package state
