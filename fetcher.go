package topicreader

import "context"

// Fetcher retrieves text documents over the network.
type Fetcher interface {
	// Fetch performs a single GET of url with the given extra headers and
	// returns the response body. Failures are reported as *TransportError.
	// Fetch never retries. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string, headers map[string]string) (string, error)
}

// DomainLimiter throttles outbound requests per host.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed or ctx is done.
	Wait(ctx context.Context, domain string) error
}
