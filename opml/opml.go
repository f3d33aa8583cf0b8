// Package opml exports category feeds as an OPML subscription list using
// github.com/beevik/etree.
package opml

import (
	"io"

	"github.com/beevik/etree"
	"github.com/fwojciec/topicreader"
)

// Write writes an OPML 2.0 document with one rss outline per category.
func Write(w io.Writer, title, feedBaseURL string, categories []topicreader.Category) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("opml")
	root.CreateAttr("version", "2.0")

	head := root.CreateElement("head")
	head.CreateElement("title").SetText(title)

	body := root.CreateElement("body")
	for _, c := range categories {
		outline := body.CreateElement("outline")
		outline.CreateAttr("type", "rss")
		outline.CreateAttr("text", c.Name)
		outline.CreateAttr("title", c.Name)
		outline.CreateAttr("xmlUrl", c.FeedURL(feedBaseURL))
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
