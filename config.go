package topicreader

import (
	"strings"
	"time"
)

// Default configuration values.
const (
	DefaultFeedBaseURL   = "https://feeds.example.org/linuxdo"
	DefaultReaderBaseURL = "https://r.jina.ai"
	DefaultOrigin        = "linux.do"
	DefaultTimeout       = 10 * time.Second
)

// Config holds process-wide settings. It is built once at startup and
// passed by value; per-request overrides produce a copy.
type Config struct {
	// FeedBaseURL is the location of the per-category feed files.
	FeedBaseURL string

	// ReaderBaseURL and ReaderAPIKey address the content-extraction service.
	ReaderBaseURL string
	ReaderAPIKey  string

	// Origin is the host that bare topic paths belong to.
	Origin string

	Timeout time.Duration
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() Config {
	return Config{
		FeedBaseURL:   DefaultFeedBaseURL,
		ReaderBaseURL: DefaultReaderBaseURL,
		Origin:        DefaultOrigin,
		Timeout:       DefaultTimeout,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c Config) Validate() error {
	if strings.TrimSpace(c.FeedBaseURL) == "" {
		return Errorf(EINVALID, "feed base URL required")
	}
	if strings.TrimSpace(c.ReaderBaseURL) == "" {
		return Errorf(EINVALID, "reader base URL required")
	}
	if strings.TrimSpace(c.Origin) == "" {
		return Errorf(EINVALID, "origin required")
	}
	return nil
}

// WithOverrides returns a copy of c with the non-empty fields of opts
// applied. Trailing slashes are stripped from the base URL.
func (c Config) WithOverrides(opts ReadOptions) Config {
	if base := strings.TrimSpace(opts.BaseURL); base != "" {
		c.ReaderBaseURL = base
	}
	if key := strings.TrimSpace(opts.APIKey); key != "" {
		c.ReaderAPIKey = key
	}
	c.ReaderBaseURL = strings.TrimRight(c.ReaderBaseURL, "/")
	return c
}
