// Package apiclient is a typed Go client for the user console API. It speaks
// the canonical response envelope and surfaces server-side failures as
// *APIError values; transport failures are returned raw.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultTimeout = 10 * time.Second

// TokenSource supplies the bearer token attached to authenticated requests.
// An empty return means the request goes out unauthenticated.
type TokenSource func() string

// Client carries the connection settings shared by every resource client.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTokenSource attaches a bearer token provider.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.token = ts }
}

// New creates a Client against the given base URL, e.g. "https://api.example.com".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Auth returns the authentication resource client.
func (c *Client) Auth() *AuthClient { return &AuthClient{c: c} }

// Users returns the user resource client.
func (c *Client) Users() *UsersClient { return &UsersClient{c: c} }

// Addresses returns the address resource client.
func (c *Client) Addresses() *AddressesClient { return &AddressesClient{c: c} }

// APIError is a server-rendered error envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// envelope mirrors the canonical wire wrapper. Result must be exactly
// "SUCCESS" for the payload to be trusted.
type envelope struct {
	Result  string          `json:"result"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// ListOptions carries the shared list-endpoint query parameters.
type ListOptions struct {
	Page      int
	Size      int
	SortBy    string
	Direction string
	Search    string
}

// values marshals the options to exactly page, size, sortBy, and direction,
// adding search only when a term is present.
func (o ListOptions) values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(o.Page))
	v.Set("size", strconv.Itoa(o.Size))
	v.Set("sortBy", o.SortBy)
	v.Set("direction", o.Direction)
	if o.Search != "" {
		v.Set("search", o.Search)
	}
	return v
}

// do issues one request and decodes the envelope into out. A non-nil out must
// be a pointer; pass nil when the payload is irrelevant.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if t := c.token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 400 || env.Result != "SUCCESS" {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
	}
	return nil
}
