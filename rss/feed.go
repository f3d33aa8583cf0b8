// Package rss implements topicreader.FeedService over per-category feed
// files served from a static base URL.
package rss

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/topicreader"
)

// Ensure FeedService implements topicreader.FeedService at compile time.
var _ topicreader.FeedService = (*FeedService)(nil)

// FeedService fetches category feeds and parses their items.
type FeedService struct {
	fetcher    topicreader.Fetcher
	baseURL    string
	categories []topicreader.Category
}

// NewFeedService creates a FeedService reading feeds below baseURL.
// If categories is nil, topicreader.DefaultCategories is used.
func NewFeedService(fetcher topicreader.Fetcher, baseURL string, categories []topicreader.Category) *FeedService {
	if categories == nil {
		categories = topicreader.DefaultCategories()
	}
	return &FeedService{
		fetcher:    fetcher,
		baseURL:    strings.TrimRight(baseURL, "/"),
		categories: categories,
	}
}

// FindFeedItems fetches the category feed and returns its valid items.
// Malformed items are dropped by the parser and not reported.
func (s *FeedService) FindFeedItems(ctx context.Context, slug string) ([]*topicreader.FeedItem, error) {
	category, err := topicreader.FindCategory(s.categories, slug)
	if err != nil {
		return nil, err
	}

	body, err := s.fetcher.Fetch(ctx, category.FeedURL(s.baseURL), nil)
	if err != nil {
		return nil, fmt.Errorf("fetching %s feed: %w", slug, err)
	}

	return topicreader.ParseFeedItems(body), nil
}
