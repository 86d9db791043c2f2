// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tracker connects the API client to the application state.

	store := state.NewStore()
	t := tracker.New(client.New(serverURL), store)

	if err := t.Start(regions.Aa1); err != nil {
		// store unchanged
	}

Refresh, Start and Stop each make one client call and, only if it
succeeds, replace the store's snapshot. Which region may be started or
stopped is decided by the server.
*/
package tracker
