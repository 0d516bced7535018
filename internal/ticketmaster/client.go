// Package ticketmaster provides a minimal client for the Discovery
// events search API, scoped to a single venue.
package ticketmaster

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	apperrors "venue-marquee/internal/errors"
)

const (
	// DefaultBaseURL is the Discovery API root.
	DefaultBaseURL = "https://app.ticketmaster.com/discovery/v2"

	requestTimeout = 15 * time.Second
)

// Client is a Ticketmaster Discovery API client.
type Client struct {
	apiKey     string
	venueID    string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new client for the given venue.
func NewClient(apiKey, venueID string) *Client {
	return &Client{
		apiKey:  apiKey,
		venueID: venueID,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// IsConfigured returns true if the client has an API key.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(base string) {
	c.baseURL = base
}

// Events performs one venue-scoped events search and decodes the
// first response page.
//
// A missing API key is a configuration error and short-circuits
// before any network call. Network failures, non-2xx statuses and
// unparseable bodies each map to a distinct error so callers can
// degrade to the matching placeholder instead of failing the
// invocation.
func (c *Client) Events(ctx context.Context) (*EventsResponse, error) {
	if c.apiKey == "" {
		return nil, apperrors.ErrCredentialMissing
	}

	q := url.Values{}
	q.Set("venueId", c.venueID)
	q.Set("apikey", c.apiKey)
	endpoint := c.baseURL + "/events.json?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating events request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", apperrors.ErrUpstreamUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewUpstreamStatusError(resp.StatusCode)
	}

	var out EventsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrResponseUnparseable, err)
	}

	return &out, nil
}
