package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds each outbound HTTP call.
const DefaultTimeout = 10 * time.Second

// Client performs HTTP calls against the backend under test. All request
// paths are resolved against the base URL.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
}

// Option is a functional option for configuring a Client.
type Option func(*Client) error

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %v", d)
		}
		c.timeout = d
		return nil
	}
}

// NewClient creates a Client for the given base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("client: base URL is required")
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("client: %w", err)
		}
	}

	c.http = &http.Client{Timeout: c.timeout}
	return c, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Response is the explicit result of one HTTP round trip: status, headers,
// and the fully read body. Probes decide pass/fail from this value rather
// than from unwind semantics.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// JSON decodes the response body as a JSON object.
func (r *Response) JSON() (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal(r.Body, &data); err != nil {
		return nil, fmt.Errorf("malformed JSON body: %w", err)
	}
	return data, nil
}

// Do performs one request with the given method and path. A non-nil
// payload is sent as a JSON body.
func (c *Client) Do(ctx context.Context, method, path string, payload any) (*Response, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request body for %s: %w", path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", path, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", path, err)
	}

	return &Response{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   raw,
	}, nil
}

// Get performs a GET request against path.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

// PostJSON performs a POST request with a JSON payload.
func (c *Client) PostJSON(ctx context.Context, path string, payload any) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, payload)
}

// Options performs an OPTIONS request against path.
func (c *Client) Options(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodOptions, path, nil)
}
