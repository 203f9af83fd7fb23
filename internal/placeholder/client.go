// Package placeholder talks to the JSONPlaceholder-style todos API.
package placeholder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TodoFetcher is the capability the store needs from the remote service.
// Implemented by *Client; tests substitute their own.
type TodoFetcher interface {
	FetchTodos(ctx context.Context) ([]Todo, error)
}

var _ TodoFetcher = (*Client)(nil)

// Client fetches todos over HTTP.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "https://jsonplaceholder.typicode.com"
	defaultUserAgent = "taskdeck/0.1"
	defaultTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given base URL. An empty baseURL uses
// the public JSONPlaceholder service; a non-positive timeout uses the
// default.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchTodos retrieves the full remote todo collection.
func (c *Client) FetchTodos(ctx context.Context) ([]Todo, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Todo
	if err := c.do(ctx, http.MethodGet, "/todos", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// APIError reports a non-2xx response from the service. Message carries the
// body's message field when the service provided one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return newAPIError(resp)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	// Best effort: some services return {"message": "..."} on errors.
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = strings.TrimSpace(body.Message)
	}
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
	}
	return apiErr
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
