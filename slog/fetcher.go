// Package slog provides log/slog decorators for topicreader services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/topicreader"
)

// Ensure LoggingFetcher implements topicreader.Fetcher.
var _ topicreader.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with request logging.
// Header values are never logged since they may carry credentials.
type LoggingFetcher struct {
	next   topicreader.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next topicreader.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string, headers map[string]string) (body string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"bytes", len(body),
			"duration", time.Since(begin),
		}
		if err != nil {
			f.logger.Warn("fetch", append(attrs, "err", err)...)
			return
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url, headers)
}
