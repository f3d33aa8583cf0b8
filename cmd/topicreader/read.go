package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/topicreader"
	"github.com/fwojciec/topicreader/fs"
)

// Run executes the read command.
func (c *ReadCmd) Run(deps *Dependencies) error {
	doc, err := deps.Reader.Read(deps.Ctx, c.Target, topicreader.ReadOptions{
		BaseURL: c.Base,
		APIKey:  c.Key,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", topicreader.ErrorMessage(err))
		return err
	}

	if c.Out != "" {
		path, err := fs.NewWriter(c.Out).WriteDocument(deps.Ctx, doc)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", topicreader.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved %s\n", path)
		return nil
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	fmt.Fprintf(deps.Stdout, "# %s\n\n", doc.Title)
	if doc.Date != "" {
		fmt.Fprintf(deps.Stdout, "Published: %s\n", doc.Date)
	}
	fmt.Fprintf(deps.Stdout, "Source: %s\n\n", doc.URL)
	fmt.Fprintln(deps.Stdout, doc.Markdown)
	return nil
}
