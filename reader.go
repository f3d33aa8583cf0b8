package topicreader

import "context"

// ReadOptions carries per-request overrides for the extraction service.
// Empty fields leave the configured defaults in place.
type ReadOptions struct {
	BaseURL string
	APIKey  string
}

// Reader renders a single page as an ExtractedDocument.
type Reader interface {
	// Read resolves target, fetches it once and parses the result.
	// Returns EINVALID for an empty target and a *TransportError when the
	// fetch fails; a failed fetch is never parsed.
	Read(ctx context.Context, target string, opts ReadOptions) (*ExtractedDocument, error)
}
