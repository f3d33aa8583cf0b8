// Package htmltomarkdown renders feed descriptions and extracted articles as
// Markdown using github.com/JohannesKaufmann/html-to-markdown/v2.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/topicreader"
)

// Ensure Converter implements topicreader.Converter at compile time.
var _ topicreader.Converter = (*Converter)(nil)

// linkLineRe matches a line that holds nothing but a single markdown link.
var linkLineRe = regexp.MustCompile(`(?m)^\[([^\]\n]+)\]\([^)\n]*\)[ \t]*$`)

// Converter converts HTML to Markdown and drops the Discourse topic footer.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", topicreader.Errorf(topicreader.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	result = linkLineRe.ReplaceAllStringFunc(result, func(line string) string {
		m := linkLineRe.FindStringSubmatch(line)
		if topicreader.IsTopicFooter(m[1]) {
			return ""
		}
		return line
	})

	return strings.TrimSpace(result), nil
}
