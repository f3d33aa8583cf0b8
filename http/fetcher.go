// Package http provides the net/http implementations of topicreader: a
// Fetcher for plain-text documents and the JSON API server.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/topicreader"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBytes caps the size of a response body.
const DefaultMaxBytes = 10 << 20

// UserAgent identifies the reader to remote services.
var UserAgent = "topicreader/" + topicreader.Version

// Ensure Fetcher implements topicreader.Fetcher at compile time.
var _ topicreader.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves text content from URLs using HTTP GET requests.
// It never retries; every failure is returned as *topicreader.TransportError.
type Fetcher struct {
	client   *http.Client
	timeout  time.Duration
	maxBytes int64
	limiter  topicreader.DomainLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBytes limits how much of a response body is read.
func WithMaxBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBytes = n
	}
}

// WithRateLimiter makes every request wait for the limiter of its host.
func WithRateLimiter(l topicreader.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:   &http.Client{},
		timeout:  DefaultFetchTimeout,
		maxBytes: DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client.Timeout = f.timeout

	return f
}

// Fetch retrieves the body of rawURL. Headers are sent as given; a
// User-Agent is added unless headers already carry one.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, headers map[string]string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", topicreader.Errorf(topicreader.EINVALID, "invalid URL %q", rawURL)
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, u.Hostname()); err != nil {
			return "", &topicreader.TransportError{URL: rawURL, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", topicreader.Errorf(topicreader.EINVALID, "creating request: %v", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &topicreader.TransportError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &topicreader.TransportError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return "", &topicreader.TransportError{URL: rawURL, Err: fmt.Errorf("reading body: %w", err)}
	}

	return string(body), nil
}
