// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/danielhkuo/region-timer/models"
	"github.com/danielhkuo/region-timer/regions"
)

// ErrRequestFailed is wrapped by every error caused by a non-2xx response
var ErrRequestFailed = errors.New("request failed")

// Client issues one HTTP request per call against the timer API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default cleanhttp client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the server at baseURL (e.g. "http://127.0.0.1:3000").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: cleanhttp.DefaultClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchCurrentlyActive handles GET /api/currently_active
// Returns the decoded body as-is; both fields are nil when nothing runs.
func (c *Client) FetchCurrentlyActive() (models.CurrentlyActiveResponse, error) {
	var out models.CurrentlyActiveResponse

	resp, err := c.do(http.MethodGet, "/api/currently_active")
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	if !ok(resp) {
		return out, fmt.Errorf("failed to fetch currently active timer: %w", ErrRequestFailed)
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return models.CurrentlyActiveResponse{}, err
	}
	return out, nil
}

// StartTimer handles POST /api/{region}/start
// Any response body is ignored.
func (c *Client) StartTimer(region regions.Region) error {
	resp, err := c.do(http.MethodPost, "/api/"+region.String()+"/start")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !ok(resp) {
		return fmt.Errorf("failed to start timer for %s: %w", region, ErrRequestFailed)
	}
	return nil
}

// StopTimer handles POST /api/{region}/stop
func (c *Client) StopTimer(region regions.Region) (models.StopTimerResponse, error) {
	var out models.StopTimerResponse

	resp, err := c.do(http.MethodPost, "/api/"+region.String()+"/stop")
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	if !ok(resp) {
		return out, fmt.Errorf("failed to stop timer for %s: %w", region, ErrRequestFailed)
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return models.StopTimerResponse{}, err
	}
	return out, nil
}

// FetchHistory handles GET /api/{region}/history
// Entries are ordered newest first, as returned by the server.
func (c *Client) FetchHistory(region regions.Region) ([]models.RegionHistory, error) {
	resp, err := c.do(http.MethodGet, "/api/"+region.String()+"/history")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !ok(resp) {
		return nil, fmt.Errorf("failed to fetch history for %s: %w", region, ErrRequestFailed)
	}

	var out []models.RegionHistory
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchStats handles GET /api/{region}/stats
func (c *Client) FetchStats(region regions.Region) (models.RegionStats, error) {
	var out models.RegionStats

	resp, err := c.do(http.MethodGet, "/api/"+region.String()+"/stats")
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	if !ok(resp) {
		return out, fmt.Errorf("failed to fetch stats for %s: %w", region, ErrRequestFailed)
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return models.RegionStats{}, err
	}
	return out, nil
}

// do sends a bodiless request. Transport errors are returned untouched.
func (c *Client) do(method, path string) (*http.Response, error) {
	req, err := http.NewRequest(method, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	slog.Debug("api request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
	)
	return resp, nil
}

func ok(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
