package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/topicreader"
)

// Ensure LoggingReader implements topicreader.Reader.
var _ topicreader.Reader = (*LoggingReader)(nil)

// LoggingReader wraps a Reader with logging.
type LoggingReader struct {
	next   topicreader.Reader
	logger *slog.Logger
}

// NewLoggingReader creates a new LoggingReader.
func NewLoggingReader(next topicreader.Reader, logger *slog.Logger) *LoggingReader {
	return &LoggingReader{next: next, logger: logger}
}

// Read delegates to the wrapped reader and logs the operation.
func (r *LoggingReader) Read(ctx context.Context, target string, opts topicreader.ReadOptions) (doc *topicreader.ExtractedDocument, err error) {
	defer func(begin time.Time) {
		markdown := 0
		if doc != nil {
			markdown = len(doc.Markdown)
		}
		r.logger.Info("read",
			"target", target,
			"base_override", opts.BaseURL != "",
			"markdown_bytes", markdown,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Read(ctx, target, opts)
}
