// Package transport provides the shared HTTP plumbing for vendor
// adapters: a client with a bounded timeout and bounded transport-level
// retries, and the same-origin relay rewrite for configs that route
// vendor calls through the hosting origin.
package transport

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// DefaultTimeout bounds the wait for response headers on one vendor
	// exchange. Body reads are not covered, so a streaming response can
	// hold the connection open past it; overall bounds come from the
	// caller's context.
	DefaultTimeout = 120 * time.Second

	// DefaultMaxRetries bounds transport-level retries after the first
	// attempt. Retrying is a transport concern only; the gateway layer
	// never retries.
	DefaultMaxRetries = 2

	retryInitialInterval = 500 * time.Millisecond
)

// NewHTTPClient creates an HTTP client with the default timeout and
// retry bounds.
func NewHTTPClient() *http.Client {
	return NewHTTPClientWithOptions(DefaultTimeout, DefaultMaxRetries)
}

// NewHTTPClientWithOptions creates an HTTP client with an explicit
// response-header timeout and retry bound. maxRetries of zero disables
// retrying. The timeout is applied at the transport level rather than
// http.Client.Timeout, which would also cover body reads and abort
// streaming responses mid-read.
func NewHTTPClientWithOptions(timeout time.Duration, maxRetries int) *http.Client {
	base := http.DefaultTransport.(*http.Transport).Clone()
	base.ResponseHeaderTimeout = timeout
	return &http.Client{
		Transport: &retryRoundTripper{
			base:       base,
			maxRetries: maxRetries,
		},
	}
}

// retryRoundTripper retries network failures and retryable status codes
// (429, 502, 503, 504) on an exponential backoff schedule. Request
// bodies are buffered so attempts can be replayed. The final attempt's
// response is returned with its body intact.
type retryRoundTripper struct {
	base       http.RoundTripper
	maxRetries int
}

func (rt *retryRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
	}

	schedule := newExponentialBackOff()

	for attempt := 0; ; attempt++ {
		clone := req.Clone(req.Context())
		if body != nil {
			clone.Body = io.NopCloser(bytes.NewReader(body))
			clone.ContentLength = int64(len(body))
		}

		resp, err := rt.base.RoundTrip(clone)
		if err == nil && !retryableStatus(resp.StatusCode) {
			return resp, nil
		}
		if attempt >= rt.maxRetries {
			return resp, err
		}
		if err == nil {
			// Drain so the connection can be reused before retrying.
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(schedule.NextBackOff()):
		}
	}
}

func newExponentialBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retryInitialInterval
	return b
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
