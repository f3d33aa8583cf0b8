package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/topicreader"
)

// Ensure LoggingFeedService implements topicreader.FeedService.
var _ topicreader.FeedService = (*LoggingFeedService)(nil)

// LoggingFeedService wraps a FeedService with logging.
type LoggingFeedService struct {
	next   topicreader.FeedService
	logger *slog.Logger
}

// NewLoggingFeedService creates a new LoggingFeedService.
func NewLoggingFeedService(next topicreader.FeedService, logger *slog.Logger) *LoggingFeedService {
	return &LoggingFeedService{next: next, logger: logger}
}

// FindFeedItems delegates to the wrapped service and logs the operation.
func (s *LoggingFeedService) FindFeedItems(ctx context.Context, slug string) (items []*topicreader.FeedItem, err error) {
	defer func(begin time.Time) {
		s.logger.Info("feed",
			"category", slug,
			"count", len(items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindFeedItems(ctx, slug)
}
