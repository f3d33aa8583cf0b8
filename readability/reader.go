// Package readability implements topicreader.Reader without the external
// extraction service: pages are fetched directly and their main content is
// extracted with github.com/go-shiori/go-readability.
package readability

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/fwojciec/topicreader"
	"github.com/go-shiori/go-readability"
)

// Ensure Reader implements topicreader.Reader at compile time.
var _ topicreader.Reader = (*Reader)(nil)

var schemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// Reader renders pages locally.
type Reader struct {
	fetcher   topicreader.Fetcher
	converter topicreader.Converter
	origin    string
}

// NewReader creates a Reader. Bare paths are resolved against origin.
func NewReader(fetcher topicreader.Fetcher, converter topicreader.Converter, origin string) *Reader {
	return &Reader{fetcher: fetcher, converter: converter, origin: origin}
}

// Read fetches target directly and extracts its article. ReadOptions only
// apply to the extraction service and are ignored.
func (r *Reader) Read(ctx context.Context, target string, _ topicreader.ReadOptions) (*topicreader.ExtractedDocument, error) {
	pageURL, err := r.resolve(target)
	if err != nil {
		return nil, err
	}

	html, err := r.fetcher.Fetch(ctx, pageURL, map[string]string{"Accept": "text/html"})
	if err != nil {
		return nil, err
	}

	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, topicreader.Errorf(topicreader.EINVALID, "invalid URL %q", pageURL)
	}

	article, err := readability.FromReader(strings.NewReader(html), parsed)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", pageURL, err)
	}

	doc := &topicreader.ExtractedDocument{
		Title: strings.TrimSpace(article.Title),
		URL:   pageURL,
	}
	if doc.Title == "" {
		doc.Title = topicreader.DefaultTitle
	}
	if article.PublishedTime != nil {
		doc.Date = article.PublishedTime.UTC().Format(time.RFC3339)
	}

	// Nothing extractable still yields a document, like a reader response
	// without a markdown section.
	if strings.TrimSpace(article.Content) == "" {
		doc.Markdown = strings.TrimSpace(article.TextContent)
		return doc, nil
	}

	doc.Markdown, err = r.converter.Convert(article.Content)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", pageURL, err)
	}
	return doc, nil
}

func (r *Reader) resolve(target string) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", topicreader.Errorf(topicreader.EINVALID, "target required")
	}
	if schemeRe.MatchString(target) {
		return target, nil
	}
	return "https://" + r.origin + "/" + strings.TrimLeft(target, "/"), nil
}
