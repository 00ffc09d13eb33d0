// Package api is the HTTP client wrapper for the Lumen API.
//
// All traffic goes through a middleware pipeline composed at
// construction time: request stages attach the bearer token and
// request id, response stages intercept authorization failures and
// clear the session. Every call resolves to a success value or a typed
// *Error; callers never handle raw transport failures.
package api

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

// defaultHTTPTimeout is the per-request timeout used by the client.
const defaultHTTPTimeout = 15 * time.Second

// Client wraps outbound requests to the Lumen API.
type Client struct {
	baseURL string
	creds   Credentials
	http    *http.Client

	requestMW  []RequestMiddleware
	responseMW []ResponseMiddleware
}

// Option customizes a Client at construction.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (tests use this to
// shorten timeouts).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// NewClient creates a client for the API at baseURL. Request paths are
// joined as baseURL + "/...", so the URL must not end with a slash.
func NewClient(baseURL string, creds Credentials, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		http:    &http.Client{Timeout: defaultHTTPTimeout},
	}
	c.requestMW = []RequestMiddleware{
		defaultHeaders(),
		bearerAuth(creds),
		requestID(),
		traceRequest(),
	}
	c.responseMW = []ResponseMiddleware{
		traceResponse(),
		invalidateOnUnauthorized(creds),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do runs one request through the pipeline and decodes a 2xx body into
// out (when non-nil). The returned error is always nil or a *Error.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return netError(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	for _, mw := range c.requestMW {
		if err := mw(req); err != nil {
			return netError(err)
		}
	}

	httpResp, err := c.http.Do(req)
	if err != nil {
		// No response received.
		return netError(err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return netError(err)
	}

	for _, mw := range c.responseMW {
		if err := mw(httpResp); err != nil {
			return netError(err)
		}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return decodeError(httpResp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &Error{
				Kind:    KindServer,
				Status:  httpResp.StatusCode,
				Message: fmt.Sprintf("malformed response body: %v", err),
			}
		}
	}
	return nil
}

// postJSON sends body as a JSON POST and decodes the response into out.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return netError(fmt.Errorf("marshal request: %w", err))
	}
	return c.do(ctx, http.MethodPost, path, "application/json", bytes.NewReader(payload), out)
}

// get sends a GET and decodes the response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}
