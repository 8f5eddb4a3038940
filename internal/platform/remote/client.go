// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package remote is a small JSON-over-HTTP client for consuming external services.

A [Client] is bound to one base URL and exposes a single generic primitive,
[Client.PerformRequest], parameterized by method, path and optional body.

Error Model:

  - Non-2xx responses are returned as [*Error] carrying the untouched body.
  - Transport failures are returned wrapped, so [errors.Is] still sees the cause
    (e.g. [context.DeadlineExceeded]).
  - Nothing is retried.
*/
package remote

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

// maxResponseBytes caps how much of a remote body is read.
const maxResponseBytes = 4 << 20

// Response is a successful remote reply.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// Error is returned for a remote reply outside the 2xx range.
type Error struct {
	Method      string
	Path        string
	Status      int
	ContentType string
	Body        []byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("remote: %s %s returned status %d", e.Method, e.Path, e.Status)
}

// Client performs requests against a single base URL.
type Client struct {
	baseURL    string
	secret     string
	httpClient *http.Client
}

// NewClient creates a Client. A non-empty secret is sent as the Authorization header.
func NewClient(baseURL, secret string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secret:     secret,
		httpClient: &http.Client{Timeout: timeout},
	}
}

/*
PerformRequest sends method to baseURL+path.

Parameters:
  - method: HTTP method
  - path: Path relative to the base URL, starting with "/"
  - body: nil for no body; []byte and json.RawMessage are sent as-is; anything
    else is JSON-encoded

Returns:
  - *Response: The 2xx reply
  - error: *Error for non-2xx replies, a wrapped transport error otherwise
*/
func (client *Client) PerformRequest(ctx context.Context, method, path string, body any) (*Response, error) {
	payload, err := encode(body)
	if err != nil {
		return nil, fmt.Errorf("remote: encode %s %s body: %w", method, path, err)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("remote: build %s %s: %w", method, path, err)
	}

	request.Header.Set("Accept", "application/json")
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if client.secret != "" {
		request.Header.Set("Authorization", client.secret)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("remote: %s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	data, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("remote: read %s %s response: %w", method, path, err)
	}

	contentType := response.Header.Get("Content-Type")
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, &Error{
			Method:      method,
			Path:        path,
			Status:      response.StatusCode,
			ContentType: contentType,
			Body:        data,
		}
	}

	return &Response{Status: response.StatusCode, ContentType: contentType, Body: data}, nil
}

// encode turns body into a reader, or nil when there is nothing to send.
func encode(body any) (io.Reader, error) {
	switch value := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		if value == nil {
			return nil, nil
		}
		return bytes.NewReader(value), nil
	case json.RawMessage:
		if value == nil {
			return nil, nil
		}
		return bytes.NewReader(value), nil
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(encoded), nil
	}
}
