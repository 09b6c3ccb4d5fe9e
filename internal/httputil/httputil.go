// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the search and fetch stages.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// StatusError reports a response whose status was not 200 OK.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

// BuildURL joins base and endpoint and appends the encoded params. A missing
// slash between base and endpoint is added.
func BuildURL(base, endpoint string, params url.Values) string {
	u := base
	if endpoint != "" {
		if !strings.HasSuffix(u, "/") {
			u += "/"
		}
		u += strings.TrimPrefix(endpoint, "/")
	}
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// Get issues a single GET for reqURL and returns the response body on
// HTTP 200. Any other status yields a *StatusError after the body is
// drained. There are no retries.
func Get(ctx context.Context, client *http.Client, reqURL, userAgent string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: reqURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not
// (and does not wrap) a *StatusError.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
