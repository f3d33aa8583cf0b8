package main

import (
	"fmt"

	"github.com/fwojciec/topicreader"
	"github.com/fwojciec/topicreader/opml"
)

// Run executes the categories command.
func (c *CategoriesCmd) Run(deps *Dependencies) error {
	if c.OPML {
		if err := opml.Write(deps.Stdout, "topicreader", deps.Config.FeedBaseURL, deps.Categories); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", topicreader.ErrorMessage(err))
			return err
		}
		return nil
	}

	for _, category := range deps.Categories {
		fmt.Fprintf(deps.Stdout, "%-10s %-12s %s\n", category.Slug, category.Name, category.FeedURL(deps.Config.FeedBaseURL))
	}
	return nil
}
