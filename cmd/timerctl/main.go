// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command timerctl starts, stops and inspects region timers from the shell.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/region-timer/client"
	"github.com/danielhkuo/region-timer/regions"
	"github.com/danielhkuo/region-timer/state"
	"github.com/danielhkuo/region-timer/tracker"
)

const defaultServerURL = "http://127.0.0.1:3000"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("timerctl failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("timerctl", flag.ContinueOnError)
	serverURL := fs.String("server", "", "Timer server URL (default: $TIMER_SERVER_URL or "+defaultServerURL+")")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *serverURL == "" {
		*serverURL = os.Getenv("TIMER_SERVER_URL")
	}
	if *serverURL == "" {
		*serverURL = defaultServerURL
	}

	if fs.NArg() == 0 {
		return errors.New("usage: timerctl [-server URL] <status|start|stop|history|stats> [region]")
	}

	c := client.New(*serverURL)
	tr := tracker.New(c, state.NewStore())

	cmd := fs.Arg(0)
	if cmd == "status" {
		s, err := tr.Refresh()
		if err != nil {
			return err
		}
		printState(out, s)
		return nil
	}

	if fs.NArg() != 2 {
		return fmt.Errorf("%s requires a region (one of %v)", cmd, regions.All())
	}
	region, err := regions.Parse(fs.Arg(1))
	if err != nil {
		return err
	}

	switch cmd {
	case "start":
		if err := tr.Start(region); err != nil {
			return err
		}
		fmt.Fprintf(out, "started %s\n", region)

	case "stop":
		last, err := tr.Stop(region)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "stopped %s after %s\n", last.Region, formatSeconds(last.Duration))

	case "history":
		history, err := c.FetchHistory(region)
		if err != nil {
			return err
		}
		if len(history) == 0 {
			fmt.Fprintf(out, "no runs for %s\n", region)
		}
		for _, entry := range history {
			if entry.Duration == nil {
				fmt.Fprintf(out, "%s  started %s  running\n", entry.Region, humanize.Time(entry.StartTime))
				continue
			}
			fmt.Fprintf(out, "%s  started %s  %s\n", entry.Region, humanize.Time(entry.StartTime), formatSeconds(*entry.Duration))
		}

	case "stats":
		stats, err := c.FetchStats(region)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s runs, %s total, median %s, p90 %s\n",
			stats.Region,
			humanize.Comma(int64(stats.Runs)),
			formatSeconds(stats.TotalSeconds),
			formatSeconds(int64(stats.Median)),
			formatSeconds(int64(stats.P90)),
		)

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}

	return nil
}

func printState(out io.Writer, s state.ApplicationState) {
	if s.ActiveRegion != nil && s.CurrentDuration != nil {
		fmt.Fprintf(out, "%s running for %s\n", *s.ActiveRegion, formatSeconds(*s.CurrentDuration))
	} else {
		fmt.Fprintln(out, "no timer running")
	}
}

func formatSeconds(seconds int64) string {
	return (time.Duration(seconds) * time.Second).String()
}
