package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hollowcoast/hollowcoast-web/pkg/config"
)

// Client is the typed surface over the remote band API. Every server-owned
// resource (orders, products, promotions, gift cards, shipping config,
// gallery, tracks) is consumed through it as an opaque JSON endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

var errBaseURLRequired = errors.New("upstream base url is required")

// NewClient validates the configured base URL and builds the client.
func NewClient(cfg config.UpstreamConfig) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errBaseURLRequired
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("parsing upstream base url: %w", err)
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// APIError carries the status and body of a non-2xx upstream response.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.Status, truncate(e.Body, 200))
}

// StatusCode reports the upstream HTTP status.
func (e *APIError) StatusCode() int {
	return e.Status
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

type requestOptions struct {
	token  string
	accept string
}

type requestOption func(*requestOptions)

// withToken attaches a bearer token to the request.
func withToken(token string) requestOption {
	return func(o *requestOptions) {
		o.token = token
	}
}

// do issues a JSON request and decodes the response into out when non-nil.
// There is deliberately no retry here: callers surface failures to the user.
func (c *Client) do(ctx context.Context, method, path string, body, out any, opts ...requestOption) error {
	options := requestOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if options.token != "" {
		req.Header.Set("Authorization", "Bearer "+options.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling upstream %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading upstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding upstream response: %w", err)
	}
	return nil
}

// doRaw issues a request and returns the raw body, for non-JSON payloads
// such as the accounting CSV export.
func (c *Client) doRaw(ctx context.Context, method, path, token string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, "", fmt.Errorf("building request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("calling upstream %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading upstream response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &APIError{Status: resp.StatusCode, Body: string(raw)}
	}
	return raw, resp.Header.Get("Content-Type"), nil
}

func truncate(value string, max int) string {
	if len(value) <= max {
		return value
	}
	return value[:max] + "..."
}
