// Package jina implements topicreader.Reader on top of a reader-style
// content-extraction service such as r.jina.ai, which answers
// GET <base>/<url> with a plain-text rendering of the page.
package jina

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/topicreader"
	"golang.org/x/net/idna"
)

// Ensure Reader implements topicreader.Reader at compile time.
var _ topicreader.Reader = (*Reader)(nil)

var schemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// Reader renders pages through the extraction service.
type Reader struct {
	fetcher topicreader.Fetcher
	config  topicreader.Config
}

// NewReader creates a Reader. The config is copied; per-call overrides never
// modify it.
func NewReader(fetcher topicreader.Fetcher, config topicreader.Config) *Reader {
	return &Reader{fetcher: fetcher, config: config}
}

// Read resolves target against the extraction service, fetches it once and
// parses the response. Transport failures are returned unparsed.
func (r *Reader) Read(ctx context.Context, target string, opts topicreader.ReadOptions) (*topicreader.ExtractedDocument, error) {
	cfg := r.config.WithOverrides(opts)

	resolved, err := ResolveURL(target, cfg.ReaderBaseURL, cfg.Origin)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{"Accept": "text/plain"}
	if cfg.ReaderAPIKey != "" {
		headers["Authorization"] = "Bearer " + cfg.ReaderAPIKey
	}

	raw, err := r.fetcher.Fetch(ctx, resolved, headers)
	if err != nil {
		return nil, err
	}

	return topicreader.ParseContentResponse(raw, target), nil
}

// ResolveURL computes the extraction-service URL for target.
//
//   - A URL on the service's own host is used unchanged.
//   - Any other absolute URL is appended to base.
//   - A bare path is taken as a path on origin and appended to base.
func ResolveURL(target, base, origin string) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", topicreader.Errorf(topicreader.EINVALID, "target required")
	}
	base = strings.TrimRight(base, "/")

	if schemeRe.MatchString(target) {
		if sameHost(target, base) {
			return target, nil
		}
		return base + "/" + target, nil
	}

	return base + "/https://" + origin + "/" + strings.TrimLeft(target, "/"), nil
}

// sameHost reports whether both URLs name the same host. Hosts are
// compared in their ASCII form, so internationalized names match their
// punycode spelling. Ports are ignored.
func sameHost(a, b string) bool {
	ua, err := url.Parse(a)
	if err != nil {
		return false
	}
	ub, err := url.Parse(b)
	if err != nil {
		return false
	}
	ha, err := idna.Lookup.ToASCII(ua.Hostname())
	if err != nil || ha == "" {
		return false
	}
	hb, err := idna.Lookup.ToASCII(ub.Hostname())
	if err != nil || hb == "" {
		return false
	}
	return ha == hb
}
