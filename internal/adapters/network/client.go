// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package network provides the HTTP client used to fetch remote catalogs.
package network

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
)

// MaxBodySize caps the size of a fetched payload.
const MaxBodySize = 4 << 20

// ErrBodyTooLarge is returned when a response exceeds MaxBodySize.
var ErrBodyTooLarge = errors.New("response body too large")

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return "GET " + e.URL + ": unexpected status " + http.StatusText(e.Status)
}

// HTTPClient performs proxy-aware GET requests with a timeout.
type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient creates a new HTTP client with timeout.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
			},
		},
	}
}

// Timeout returns the configured request timeout.
func (c *HTTPClient) Timeout() time.Duration {
	return c.client.Timeout
}

// Get fetches url and returns the body together with its Content-Type.
func (c *HTTPClient) Get(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.5")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", errors.Wrap(err, "request failed")
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &StatusError{URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to read response")
	}

	if len(body) > MaxBodySize {
		return nil, "", errors.Wrapf(ErrBodyTooLarge, "%s exceeds %d bytes", url, MaxBodySize)
	}

	return body, resp.Header.Get("Content-Type"), nil
}
