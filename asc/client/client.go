// Package client performs the HTTP exchange against the App Store Connect
// API and translates upstream failures into structured errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// UpstreamError reports a non-success upstream status or a transport
// failure. Detail carries the first structured error detail from the
// response body when present, otherwise the transport/status message.
type UpstreamError struct {
	StatusCode int // zero when the transport failed before a response
	Detail     string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("upstream request failed: %v", e.Detail)
	}
	return fmt.Sprintf("upstream error (%v): %v", e.StatusCode, e.Detail)
}

// errorBody matches the JSON:API error envelope App Store Connect returns.
type errorBody struct {
	Errors []struct {
		Status string `json:"status"`
		Code   string `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

// Request is one fully shaped upstream exchange.
type Request struct {
	Method string
	Path   string // relative to the API base, leading slash
	Query  url.Values
	Body   []byte
}

// Client performs authorized requests against a fixed API base. The zero
// timeout and transport of http.DefaultClient apply unless a custom
// transport is supplied; the client holds no mutable state and is safe for
// concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the given base URL. transport may be nil.
func New(baseURL string, transport http.RoundTripper) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Transport: transport},
	}
}

// BaseURL returns the configured API base.
func (c *Client) BaseURL() string { return c.baseURL }

// Do performs one exchange carrying the supplied bearer token. On success
// the raw response body is returned unmodified; on failure the result is
// always an *UpstreamError.
func (c *Client) Do(ctx context.Context, request *Request, token string) ([]byte, error) {
	target := c.baseURL + request.Path
	if len(request.Query) > 0 {
		target += "?" + request.Query.Encode()
	}
	var body io.Reader
	if len(request.Body) > 0 {
		body = bytes.NewReader(request.Body)
	}
	httpRequest, err := http.NewRequestWithContext(ctx, request.Method, target, body)
	if err != nil {
		return nil, &UpstreamError{Detail: err.Error()}
	}
	httpRequest.Header.Set("Authorization", "Bearer "+token)
	if len(request.Body) > 0 {
		httpRequest.Header.Set("Content-Type", "application/json")
	}
	response, err := c.http.Do(httpRequest)
	if err != nil {
		return nil, &UpstreamError{Detail: err.Error()}
	}
	defer response.Body.Close()
	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, &UpstreamError{StatusCode: response.StatusCode, Detail: err.Error()}
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: response.StatusCode, Detail: errorDetail(data, response.Status)}
	}
	return data, nil
}

// errorDetail extracts the first structured error detail from a JSON:API
// error body, falling back to the HTTP status line.
func errorDetail(data []byte, status string) string {
	var parsed errorBody
	if err := json.Unmarshal(data, &parsed); err == nil && len(parsed.Errors) > 0 {
		first := parsed.Errors[0]
		if first.Detail != "" {
			return first.Detail
		}
		if first.Title != "" {
			return first.Title
		}
	}
	return status
}
