// Package bloom tracks already-seen topics using Bloom filters.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/topicreader"
)

// TopicFilter remembers topic IDs in bounded memory. A false positive hides
// a new topic; false negatives do not occur.
type TopicFilter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewTopicFilter creates a filter sized for n expected topics with the
// given false positive rate.
func NewTopicFilter(n uint, fpRate float64) *TopicFilter {
	return &TopicFilter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Unseen marks every item and returns those not seen before, in order.
func (f *TopicFilter) Unseen(items []*topicreader.FeedItem) []*topicreader.FeedItem {
	f.mu.Lock()
	defer f.mu.Unlock()

	var fresh []*topicreader.FeedItem
	for _, item := range items {
		if !f.f.TestAndAddString(item.TopicID) {
			fresh = append(fresh, item)
		}
	}
	return fresh
}

// EstimatedCount returns the approximate number of topics in the filter.
func (f *TopicFilter) EstimatedCount() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint(f.f.ApproximatedSize())
}
