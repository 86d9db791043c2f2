// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tracker_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/region-timer/client"
	"github.com/danielhkuo/region-timer/regions"
	"github.com/danielhkuo/region-timer/router"
	"github.com/danielhkuo/region-timer/state"
	"github.com/danielhkuo/region-timer/testutil"
	"github.com/danielhkuo/region-timer/tracker"
)

// TestTrackerAgainstServer drives the full stack:
// tracker → client → HTTP → router → handlers → SQLite
func TestTrackerAgainstServer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	srv := httptest.NewServer(router.NewRouter(db, testutil.GetTestConfig(t)))
	t.Cleanup(srv.Close)

	c := client.New(srv.URL)
	tr := tracker.New(c, state.NewStore())

	// Idle at start
	s, err := tr.Refresh()
	require.NoError(t, err)
	assert.Nil(t, s.ActiveRegion)
	assert.Nil(t, s.CurrentDuration)

	require.NoError(t, tr.Start(regions.Ac2))

	s, err = tr.Refresh()
	require.NoError(t, err)
	require.NotNil(t, s.ActiveRegion)
	assert.Equal(t, regions.Ac2, *s.ActiveRegion)
	assert.GreaterOrEqual(t, *s.CurrentDuration, int64(0))

	last, err := tr.Stop(regions.Ac2)
	require.NoError(t, err)
	assert.Equal(t, regions.Ac2, last.Region)
	assert.GreaterOrEqual(t, last.Duration, int64(0))

	s = tr.Store().Load()
	assert.Nil(t, s.ActiveRegion)
	assert.Equal(t, last, *s.LastStopped)

	history, err := c.FetchHistory(regions.Ac2)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.NotNil(t, history[0].Duration)
	assert.Equal(t, last.Duration, *history[0].Duration)
}

func TestStopWithoutRunningTimerFails(t *testing.T) {
	db := testutil.SetupTestDB(t)
	srv := httptest.NewServer(router.NewRouter(db, testutil.GetTestConfig(t)))
	t.Cleanup(srv.Close)

	tr := tracker.New(client.New(srv.URL), state.NewStore())

	_, err := tr.Stop(regions.Aa1)
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrRequestFailed)
	assert.Contains(t, err.Error(), "stop")
	assert.Contains(t, err.Error(), "aa1")
	assert.Nil(t, tr.Store().Load().LastStopped)
}
