// Package prometheus instruments topicreader services with
// github.com/prometheus/client_golang.
package prometheus

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/fwojciec/topicreader"
	"github.com/prometheus/client_golang/prometheus"
)

// Fetch outcomes used as the "outcome" label.
const (
	OutcomeOK       = "ok"
	OutcomeStatus   = "status"
	OutcomeNetwork  = "network"
	OutcomeRejected = "rejected"
)

// Ensure InstrumentedFetcher implements topicreader.Fetcher.
var _ topicreader.Fetcher = (*InstrumentedFetcher)(nil)

// FetchMetrics holds the collectors for outbound fetches.
type FetchMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewFetchMetrics creates the fetch collectors and registers them with reg.
func NewFetchMetrics(reg prometheus.Registerer) *FetchMetrics {
	m := &FetchMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "topicreader",
			Name:      "fetch_total",
			Help:      "Outbound fetches by host and outcome.",
		}, []string{"host", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "topicreader",
			Name:      "fetch_duration_seconds",
			Help:      "Outbound fetch latency by host.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"host"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

// InstrumentedFetcher wraps a Fetcher with request metrics.
type InstrumentedFetcher struct {
	next    topicreader.Fetcher
	metrics *FetchMetrics
}

// NewInstrumentedFetcher creates a new InstrumentedFetcher.
func NewInstrumentedFetcher(next topicreader.Fetcher, metrics *FetchMetrics) *InstrumentedFetcher {
	return &InstrumentedFetcher{next: next, metrics: metrics}
}

// Fetch delegates to the wrapped fetcher and records the outcome.
func (f *InstrumentedFetcher) Fetch(ctx context.Context, rawURL string, headers map[string]string) (string, error) {
	host := "unknown"
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = u.Hostname()
	}

	begin := time.Now()
	body, err := f.next.Fetch(ctx, rawURL, headers)
	f.metrics.duration.WithLabelValues(host).Observe(time.Since(begin).Seconds())
	f.metrics.requests.WithLabelValues(host, outcome(err)).Inc()

	return body, err
}

func outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	var te *topicreader.TransportError
	if errors.As(err, &te) {
		if te.StatusCode != 0 {
			return OutcomeStatus
		}
		return OutcomeNetwork
	}
	return OutcomeRejected
}
