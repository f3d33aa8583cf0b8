package mock

import (
	"context"

	"github.com/fwojciec/topicreader"
)

var _ topicreader.FeedService = (*FeedService)(nil)

// FeedService is a mock implementation of topicreader.FeedService.
type FeedService struct {
	FindFeedItemsFn func(ctx context.Context, slug string) ([]*topicreader.FeedItem, error)
}

func (s *FeedService) FindFeedItems(ctx context.Context, slug string) ([]*topicreader.FeedItem, error) {
	return s.FindFeedItemsFn(ctx, slug)
}
