// Package notion is a minimal client for the Notion REST API, covering
// the calls the publisher needs: database schema, page creation, block
// appends, database queries, and search. Requests are sequential and
// synchronous; failures surface the raw API response without retries.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jotcli/jot/internal/errors"
)

const (
	// DefaultBaseURL is the production Notion API endpoint.
	DefaultBaseURL = "https://api.notion.com/v1"

	// APIVersion is pinned; every request carries it.
	APIVersion = "2022-06-28"

	defaultTimeout = 30 * time.Second
)

// Client is a Notion API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures the Client.
type Option func(*Client)

// NewClient creates a Notion API client with the given bearer token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithBaseURL overrides the API endpoint (tests point this at httptest).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger for request visibility.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// doRequest performs a single API round trip. The request body is
// JSON-marshaled when non-nil; the response is decoded into out when
// out is non-nil and the status is 2xx. Status mapping: 401 and 404
// become typed errors, any other non-2xx becomes an API_ERROR carrying
// the raw response body.
func (c *Client) doRequest(ctx context.Context, method, path string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.NewInternal(err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return errors.NewInternal(err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", APIVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewInternal(err)
	}
	defer func() { _ = resp.Body.Close() }() // close error not actionable after body is read

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("notion request")

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return errors.NewUnauthorized()
	case resp.StatusCode == http.StatusNotFound:
		return errors.NewNotFound(method + " " + path)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		raw, readErr := io.ReadAll(resp.Body)
		text := strings.TrimSpace(string(raw))
		if readErr != nil {
			text += " (body read error: " + readErr.Error() + ")"
		}
		return errors.NewAPI(resp.StatusCode, text)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}
