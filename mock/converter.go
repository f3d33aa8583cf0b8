package mock

import "github.com/fwojciec/topicreader"

var (
	_ topicreader.Converter     = (*Converter)(nil)
	_ topicreader.Summarizer    = (*Summarizer)(nil)
	_ topicreader.DateFormatter = (*DateFormatter)(nil)
)

// Converter is a mock implementation of topicreader.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

// Summarizer is a mock implementation of topicreader.Summarizer.
type Summarizer struct {
	SummarizeFn func(html string) topicreader.Summary
}

func (s *Summarizer) Summarize(html string) topicreader.Summary {
	return s.SummarizeFn(html)
}

// DateFormatter is a mock implementation of topicreader.DateFormatter.
type DateFormatter struct {
	FormatFn func(raw string) string
}

func (f *DateFormatter) Format(raw string) string {
	return f.FormatFn(raw)
}
