// Package goquery derives display summaries from feed item HTML using
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/topicreader"
)

// DefaultExcerptRunes is the excerpt length used by NewSummarizer.
const DefaultExcerptRunes = 160

// Ensure Summarizer implements topicreader.Summarizer at compile time.
var _ topicreader.Summarizer = (*Summarizer)(nil)

// Summarizer builds a plain-text excerpt and picks a cover image from
// description HTML.
type Summarizer struct {
	maxRunes int
}

// NewSummarizer creates a Summarizer with excerpts of at most maxRunes
// runes. A non-positive maxRunes selects DefaultExcerptRunes.
func NewSummarizer(maxRunes int) *Summarizer {
	if maxRunes <= 0 {
		maxRunes = DefaultExcerptRunes
	}
	return &Summarizer{maxRunes: maxRunes}
}

// Summarize returns the excerpt and first content image of html.
func (s *Summarizer) Summarize(html string) topicreader.Summary {
	if strings.TrimSpace(html) == "" {
		return topicreader.Summary{}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return topicreader.Summary{}
	}

	doc.Find("script, style, noscript").Remove()
	doc.Find("p").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return topicreader.IsTopicFooter(sel.Text())
	}).Remove()

	var summary topicreader.Summary

	// Emoji and avatars are images too; skip them.
	doc.Find("img[src]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.HasClass("emoji") || sel.HasClass("avatar") {
			return true
		}
		src, _ := sel.Attr("src")
		if src = strings.TrimSpace(src); src == "" {
			return true
		}
		summary.Image = src
		return false
	})

	summary.Excerpt = truncate(strings.Join(strings.Fields(doc.Text()), " "), s.maxRunes)
	return summary
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n])) + "…"
}
