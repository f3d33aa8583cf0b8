package mock

import (
	"context"

	"github.com/fwojciec/topicreader"
)

var (
	_ topicreader.Fetcher       = (*Fetcher)(nil)
	_ topicreader.DomainLimiter = (*DomainLimiter)(nil)
)

// Fetcher is a mock implementation of topicreader.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, headers map[string]string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string, headers map[string]string) (string, error) {
	return f.FetchFn(ctx, url, headers)
}

// DomainLimiter is a mock implementation of topicreader.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
