package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/topicreader"
	"github.com/fwojciec/topicreader/bloom"
	"github.com/stretchr/testify/assert"
)

func TestTopicFilter_Unseen(t *testing.T) {
	t.Parallel()

	t.Run("returns only new topics in order", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewTopicFilter(1000, 0.01)
		f.Unseen([]*topicreader.FeedItem{{TopicID: "2"}})

		items := []*topicreader.FeedItem{{TopicID: "1"}, {TopicID: "2"}, {TopicID: "3"}}
		fresh := f.Unseen(items)

		assert.Equal(t, []*topicreader.FeedItem{items[0], items[2]}, fresh)
	})

	t.Run("marks returned topics", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewTopicFilter(1000, 0.01)
		items := []*topicreader.FeedItem{{TopicID: "1"}}

		assert.Len(t, f.Unseen(items), 1)
		assert.Empty(t, f.Unseen(items))
	})

	t.Run("deduplicates within one batch", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewTopicFilter(1000, 0.01)
		items := []*topicreader.FeedItem{{TopicID: "5"}, {TopicID: "5"}}

		assert.Len(t, f.Unseen(items), 1)
	})
}

func TestTopicFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewTopicFilter(1000, 0.01)

	assert.Equal(t, uint(0), f.EstimatedCount())

	for i := 0; i < 3; i++ {
		f.Unseen([]*topicreader.FeedItem{{TopicID: fmt.Sprintf("%d", 100+i)}})
	}

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}
