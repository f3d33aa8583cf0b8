package mock

import (
	"context"

	"github.com/fwojciec/topicreader"
)

var _ topicreader.Reader = (*Reader)(nil)

// Reader is a mock implementation of topicreader.Reader.
type Reader struct {
	ReadFn func(ctx context.Context, target string, opts topicreader.ReadOptions) (*topicreader.ExtractedDocument, error)
}

func (r *Reader) Read(ctx context.Context, target string, opts topicreader.ReadOptions) (*topicreader.ExtractedDocument, error) {
	return r.ReadFn(ctx, target, opts)
}
