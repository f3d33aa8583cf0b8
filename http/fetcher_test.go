package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/topicreader"
	"github.com/fwojciec/topicreader/mock"
	trhttp "github.com/fwojciec/topicreader/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("Title: Hello\nMarkdown Content:\nWorld"))
		}))
		defer server.Close()

		fetcher := trhttp.NewFetcher()

		body, err := fetcher.Fetch(context.Background(), server.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, "Title: Hello\nMarkdown Content:\nWorld", body)
	})

	t.Run("sends identifying user agent and extra headers", func(t *testing.T) {
		t.Parallel()

		var gotUA, gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotAuth = r.Header.Get("Authorization")
		}))
		defer server.Close()

		fetcher := trhttp.NewFetcher()

		_, err := fetcher.Fetch(context.Background(), server.URL, map[string]string{"Authorization": "Bearer k"})
		require.NoError(t, err)
		assert.Equal(t, trhttp.UserAgent, gotUA)
		assert.True(t, strings.HasPrefix(gotUA, "topicreader/"))
		assert.Equal(t, "Bearer k", gotAuth)
	})

	t.Run("accepts any 2xx status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		body, err := trhttp.NewFetcher().Fetch(context.Background(), server.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, "ok", body)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := trhttp.NewFetcher(trhttp.WithTimeout(10 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), server.URL, nil)
		require.Error(t, err)

		var te *topicreader.TransportError
		require.ErrorAs(t, err, &te)
		assert.Zero(t, te.StatusCode)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := trhttp.NewFetcher().Fetch(ctx, server.URL, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("returns error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := trhttp.NewFetcher(trhttp.WithTimeout(100 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page", nil)
		require.Error(t, err)
		assert.Equal(t, topicreader.EUNAVAILABLE, topicreader.ErrorCode(err))
	})

	t.Run("returns transport error with status code for non-2xx", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := trhttp.NewFetcher().Fetch(context.Background(), server.URL, nil)
		require.Error(t, err)

		var te *topicreader.TransportError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, http.StatusServiceUnavailable, te.StatusCode)
		assert.Contains(t, err.Error(), "503")
		assert.Equal(t, int32(1), calls.Load(), "must not retry")
	})

	t.Run("rejects URL without host", func(t *testing.T) {
		t.Parallel()

		_, err := trhttp.NewFetcher().Fetch(context.Background(), "/t/topic/1", nil)

		assert.Equal(t, topicreader.EINVALID, topicreader.ErrorCode(err))
	})

	t.Run("truncates body at max bytes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("0123456789"))
		}))
		defer server.Close()

		body, err := trhttp.NewFetcher(trhttp.WithMaxBytes(4)).Fetch(context.Background(), server.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, "0123", body)
	})

	t.Run("waits for rate limiter with request host", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer server.Close()

		var domain string
		limiter := &mock.DomainLimiter{
			WaitFn: func(ctx context.Context, d string) error {
				domain = d
				return nil
			},
		}

		_, err := trhttp.NewFetcher(trhttp.WithRateLimiter(limiter)).Fetch(context.Background(), server.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1", domain)
	})

	t.Run("fails without request when limiter fails", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer server.Close()

		limiter := &mock.DomainLimiter{
			WaitFn: func(ctx context.Context, d string) error {
				return errors.New("limiter closed")
			},
		}

		_, err := trhttp.NewFetcher(trhttp.WithRateLimiter(limiter)).Fetch(context.Background(), server.URL, nil)
		require.Error(t, err)
		assert.Equal(t, topicreader.EUNAVAILABLE, topicreader.ErrorCode(err))
		assert.Zero(t, calls.Load())
	})
}

// Compile-time verification that Fetcher implements topicreader.Fetcher
var _ topicreader.Fetcher = (*trhttp.Fetcher)(nil)
