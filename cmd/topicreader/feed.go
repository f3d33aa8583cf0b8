package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/topicreader"
)

// Run executes the feed command.
func (c *FeedCmd) Run(deps *Dependencies) error {
	items, err := deps.Feeds.FindFeedItems(deps.Ctx, c.Slug)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", topicreader.ErrorMessage(err))
		return err
	}

	if c.Limit > 0 && len(items) > c.Limit {
		items = items[:c.Limit]
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	if len(items) == 0 {
		fmt.Fprintf(deps.Stdout, "No topics in %q.\n", c.Slug)
		return nil
	}

	for i, item := range items {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		printItem(deps, item)

		if !c.Markdown || item.DescriptionHTML == "" {
			continue
		}
		md, err := deps.Converter.Convert(item.DescriptionHTML)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: topic %s: %s\n", item.TopicID, topicreader.ErrorMessage(err))
			continue
		}
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, indent(md, "    "))
	}
	return nil
}

// printItem writes the one-topic summary shared by feed and watch.
func printItem(deps *Dependencies, item *topicreader.FeedItem) {
	date := item.PubDate
	if deps.Dates != nil {
		date = deps.Dates.Format(item.PubDate)
	}

	fmt.Fprintf(deps.Stdout, "#%s  %s\n", item.TopicID, item.Title)
	fmt.Fprintf(deps.Stdout, "    %s  %s\n", item.Creator, date)
	fmt.Fprintf(deps.Stdout, "    %s\n", item.Link)

	if deps.Summarizer != nil {
		if s := deps.Summarizer.Summarize(item.DescriptionHTML); s.Excerpt != "" {
			fmt.Fprintf(deps.Stdout, "    %s\n", s.Excerpt)
		}
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
