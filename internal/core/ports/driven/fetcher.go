package driven

import "context"

// AssetFetcher downloads assets addressed by URL.
type AssetFetcher interface {
	// Fetch returns the full response body for uri.
	// Failures wrap domain.ErrTransport.
	Fetch(ctx context.Context, uri string) ([]byte, error)
}
