package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pders01/algosearch/internal/config"
	"github.com/pders01/algosearch/internal/validation"
)

const maxResponseBytes = 8 << 20

// StatusError reports a non-2xx response from the search endpoint.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("search endpoint returned HTTP %d", e.StatusCode)
}

// ErrDecode wraps failures to decode the response body.
var ErrDecode = errors.New("decoding search response")

type searchRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	Results []string `json:"results"`
}

// Client talks to the HTTP search endpoint.
type Client struct {
	url       string
	userAgent string
	client    *http.Client
}

// NewClient validates the configured endpoint and builds a client for it.
func NewClient(cfg *config.Config) (*Client, error) {
	endpoint, err := validation.NewEndpointValidator().ValidateAndNormalize(cfg.Search.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("search endpoint: %w", err)
	}

	path := cfg.Search.Path
	if path == "" {
		path = "/api/search"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return &Client{
		url:       strings.TrimRight(endpoint, "/") + path,
		userAgent: cfg.Search.UserAgent,
		client: &http.Client{
			Timeout: cfg.Search.HTTPTimeout,
		},
	}, nil
}

// URL returns the full search URL.
func (c *Client) URL() string {
	return c.url
}

func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	body, err := json.Marshal(searchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var decoded searchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if decoded.Results == nil {
		return []string{}, nil
	}
	return decoded.Results, nil
}
