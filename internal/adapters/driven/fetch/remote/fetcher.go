package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/ports/driven"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.AssetFetcher = (*Fetcher)(nil)

// Fetcher downloads assets over HTTP(S).
type Fetcher struct {
	client     *http.Client
	authClient *http.Client
	tokenHosts map[string]bool
	limiter    *rate.Limiter
	userAgent  string
	files      driven.AssetStore
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFileStore resolves file:// URIs through store.
func WithFileStore(store driven.AssetStore) Option {
	return func(f *Fetcher) {
		f.files = store
	}
}

// WithTransport replaces the base round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) {
		f.client.Transport = rt
	}
}

// NewFetcher creates a fetcher from fetch settings.
// Zero rate or burst values fall back to the defaults. A configured token
// is attached only to requests for cfg.TokenHosts.
func NewFetcher(cfg domain.FetchSettings, opts ...Option) *Fetcher {
	defaults := domain.DefaultAppSettings().Fetch
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaults.RequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaults.Burst
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}

	f := &Fetcher{
		client:    &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		userAgent: cfg.UserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	if cfg.Token == "" {
		return f
	}
	if len(cfg.TokenHosts) == 0 {
		logger.Warn("fetch token configured without token hosts, token will not be sent")
		return f
	}
	f.tokenHosts = make(map[string]bool, len(cfg.TokenHosts))
	for _, host := range cfg.TokenHosts {
		f.tokenHosts[strings.ToLower(strings.TrimSpace(host))] = true
	}
	f.authClient = &http.Client{
		Timeout: cfg.Timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: cfg.Token,
				TokenType:   "Bearer",
			}),
			Base: f.client.Transport,
		},
	}
	return f
}

// clientFor returns the client that carries the token when u's host is
// one of the token hosts.
func (f *Fetcher) clientFor(u *url.URL) *http.Client {
	if f.authClient != nil && f.tokenHosts[strings.ToLower(u.Hostname())] {
		return f.authClient
	}
	return f.client
}

// Fetch returns the response body for uri.
func (f *Fetcher) Fetch(ctx context.Context, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid uri %q: %w", domain.ErrInvalidInput, uri, err)
	}

	switch u.Scheme {
	case "http", "https":
	case "file":
		if f.files == nil {
			return nil, fmt.Errorf("file uri %s: %w", uri, domain.ErrNotImplemented)
		}
		return f.files.Read(ctx, u.Path)
	default:
		return nil, fmt.Errorf("%w: unsupported uri scheme %q", domain.ErrInvalidInput, u.Scheme)
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait: %w", domain.ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %w", domain.ErrTransport, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	logger.Debug("fetching %s", uri)
	resp, err := f.clientFor(u).Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", domain.ErrTransport, uri, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s: %s", domain.ErrTransport, uri, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", domain.ErrTransport, uri, err)
	}
	logger.Debug("fetched %s (%d bytes)", uri, len(data))
	return data, nil
}
