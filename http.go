// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package stratum

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

type httpOptions struct {
	httpClient *http.Client
	maxRetries int
	waitMin    time.Duration
	waitMax    time.Duration
}

// HTTPOption configures an HTTPLoader.
type HTTPOption func(*httpOptions)

// HTTPClient sets the underlying http.Client used for fetching documents.
func HTTPClient(c *http.Client) HTTPOption {
	return func(o *httpOptions) {
		o.httpClient = c
	}
}

// MaxRetries sets how many times a single fetch is retried at the
// transport level before its error is reported to the fold.
func MaxRetries(n int) HTTPOption {
	return func(o *httpOptions) {
		o.maxRetries = n
	}
}

// RetryWait bounds the backoff between transport-level retries.
func RetryWait(min, max time.Duration) HTTPOption {
	return func(o *httpOptions) {
		o.waitMin = min
		o.waitMax = max
	}
}

// HTTPLoader fetches configuration documents from URLs. Paths handed to a
// Merger built on an HTTPLoader are expected to be absolute http(s) URLs.
type HTTPLoader struct {
	client *retryablehttp.Client
}

// NewHTTPLoader returns an HTTPLoader.
func NewHTTPLoader(opts ...HTTPOption) *HTTPLoader {
	o := &httpOptions{
		httpClient: &http.Client{},
		maxRetries: 3,
		waitMin:    1 * time.Second,
		waitMax:    10 * time.Second,
	}
	for _, opt := range opts {
		opt(o)
	}

	return &HTTPLoader{
		client: &retryablehttp.Client{
			HTTPClient:   o.httpClient,
			RetryWaitMin: o.waitMin,
			RetryWaitMax: o.waitMax,
			RetryMax:     o.maxRetries,
			CheckRetry:   retryablehttp.DefaultRetryPolicy,
			Backoff:      retryablehttp.DefaultBackoff,
			ErrorHandler: retryablehttp.PassthroughErrorHandler,
		},
	}
}

// UnexpectedStatusCodeError occurs when a document URL responds with a
// non-200 status.
type UnexpectedStatusCodeError struct {
	Path       string
	StatusCode int
}

// Error implements the error interface.
func (e UnexpectedStatusCodeError) Error() string {
	return fmt.Sprintf("unexpected response status %d for %s", e.StatusCode, e.Path)
}

// ReadConfiguration implements the Loader interface.
func (l *HTTPLoader) ReadConfiguration(path string) ([]byte, error) {
	resp, err := l.client.Get(path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, UnexpectedStatusCodeError{
			Path:       path,
			StatusCode: resp.StatusCode,
		}
	}
	return io.ReadAll(resp.Body)
}
