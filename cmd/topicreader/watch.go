package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/topicreader"
	"github.com/fwojciec/topicreader/bloom"
)

// Expected number of distinct topics a single watch session sees.
const (
	watchCapacity = 100_000
	watchFPRate   = 0.001
)

// Run executes the watch command. Poll failures are reported and the
// next poll proceeds; only an unknown category stops the command.
func (c *WatchCmd) Run(deps *Dependencies) error {
	if _, err := topicreader.FindCategory(deps.Categories, c.Slug); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", topicreader.ErrorMessage(err))
		return err
	}
	if c.Interval <= 0 {
		err := topicreader.Errorf(topicreader.EINVALID, "interval must be positive")
		fmt.Fprintf(deps.Stderr, "error: %s\n", topicreader.ErrorMessage(err))
		return err
	}

	filter := bloom.NewTopicFilter(watchCapacity, watchFPRate)
	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()

	for n := 1; ; n++ {
		c.poll(deps, filter, n == 1 && !c.All)

		if c.Polls > 0 && n >= c.Polls {
			return nil
		}

		select {
		case <-deps.Ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// poll fetches the feed once and prints unseen topics. When seed is true
// topics are only recorded.
func (c *WatchCmd) poll(deps *Dependencies, filter *bloom.TopicFilter, seed bool) {
	items, err := deps.Feeds.FindFeedItems(deps.Ctx, c.Slug)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", topicreader.ErrorMessage(err))
		return
	}

	fresh := filter.Unseen(items)
	if seed {
		fmt.Fprintf(deps.Stdout, "Watching %q (%d topics already listed)\n", c.Slug, filter.EstimatedCount())
		return
	}

	for _, item := range fresh {
		printItem(deps, item)
	}
}
