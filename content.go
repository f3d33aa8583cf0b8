package topicreader

import (
	"regexp"
	"strings"
)

// DefaultTitle is used when a content response has no "Title:" line.
const DefaultTitle = "Untitled"

// markdownAnchor separates the header lines of a reader response from its body.
const markdownAnchor = "Markdown Content:"

var (
	titleLineRe     = anchorLine("Title")
	publishedLineRe = anchorLine("Published Time")
	sourceLineRe    = anchorLine("URL Source")
)

func anchorLine(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(label) + `:[ \t]*([^\r\n]*)`)
}

// ExtractedDocument is a page rendered by the content-extraction service.
// Every field is always present; an empty string means "missing".
type ExtractedDocument struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	URL      string `json:"url"`
	Markdown string `json:"markdown"`
}

// ParseContentResponse splits a reader response into its header lines and
// markdown body. The header lines and the body are located independently;
// requested is used as the URL when the response names none.
func ParseContentResponse(raw, requested string) *ExtractedDocument {
	doc := &ExtractedDocument{
		Title:    firstLine(titleLineRe, raw),
		Date:     firstLine(publishedLineRe, raw),
		URL:      firstLine(sourceLineRe, raw),
		Markdown: raw,
	}
	if doc.Title == "" {
		doc.Title = DefaultTitle
	}
	if doc.URL == "" {
		doc.URL = requested
	}

	// Without the anchor the whole response is the body, untouched.
	if i := strings.Index(raw, markdownAnchor); i >= 0 {
		doc.Markdown = strings.TrimSpace(raw[i+len(markdownAnchor):])
	}
	return doc
}

func firstLine(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
