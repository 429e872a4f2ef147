package domain

import (
	"fmt"
	"time"
)

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Catalog  CatalogSettings
	Fetch    FetchSettings
	Output   OutputSettings
	Retarget RetargetSettings
	History  HistorySettings
}

// CatalogSettings configures default animation selection.
type CatalogSettings struct {
	// URIs are the catalog entries, in order.
	URIs []string

	// Strategy picks how an entry is chosen.
	Strategy SelectionStrategy

	// Index is used by the fixed strategy.
	Index int

	// Seed is used by the seeded strategy.
	Seed int64
}

// FetchSettings configures remote asset fetching.
type FetchSettings struct {
	// UserAgent is sent with every request. Some asset hosts reject empty agents.
	UserAgent string

	// Timeout bounds a single fetch.
	Timeout time.Duration

	// RequestsPerSecond is the sustained fetch rate.
	RequestsPerSecond float64

	// Burst is the maximum burst of fetches.
	Burst int

	// Token is an optional bearer token for private asset hosts.
	Token string

	// TokenHosts lists the hostnames Token is sent to. The token is
	// never sent to any other host.
	TokenHosts []string
}

// OutputSettings configures where saved merges go.
type OutputSettings struct {
	// Dir is the directory merged assets are written to.
	// Empty means ~/.glbanim/output.
	Dir string
}

// RetargetSettings configures joint matching.
type RetargetSettings struct {
	// JointPrefixes are rig namespaces stripped before joint names are compared.
	JointPrefixes []string
}

// HistorySettings configures merge history recording.
type HistorySettings struct {
	Enabled bool
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Catalog: CatalogSettings{
			URIs:     append([]string(nil), DefaultAnimationURIs...),
			Strategy: SelectionFixed,
			Index:    0,
			Seed:     1,
		},
		Fetch: FetchSettings{
			UserAgent:         "Firefox",
			Timeout:           60 * time.Second,
			RequestsPerSecond: 4.0,
			Burst:             4,
		},
		Retarget: RetargetSettings{
			JointPrefixes: append([]string(nil), DefaultJointPrefixes...),
		},
		History: HistorySettings{
			Enabled: true,
		},
	}
}

// Validate checks the settings for internal consistency.
func (s *AppSettings) Validate() error {
	if !s.Catalog.Strategy.IsValid() {
		return fmt.Errorf("%w: unknown catalog strategy %q", ErrInvalidInput, s.Catalog.Strategy)
	}
	if s.Catalog.Strategy == SelectionFixed && len(s.Catalog.URIs) > 0 &&
		(s.Catalog.Index < 0 || s.Catalog.Index >= len(s.Catalog.URIs)) {
		return fmt.Errorf("%w: catalog index %d out of range", ErrInvalidInput, s.Catalog.Index)
	}
	if s.Fetch.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: fetch rate must be positive", ErrInvalidInput)
	}
	if s.Fetch.Burst <= 0 {
		return fmt.Errorf("%w: fetch burst must be positive", ErrInvalidInput)
	}
	if s.Fetch.Timeout <= 0 {
		return fmt.Errorf("%w: fetch timeout must be positive", ErrInvalidInput)
	}
	return nil
}

// AnimationCatalog builds the catalog described by these settings.
func (s *AppSettings) AnimationCatalog() *AnimationCatalog {
	var selector Selector
	switch s.Catalog.Strategy {
	case SelectionSeeded:
		selector = NewSeededSelector(s.Catalog.Seed)
	default:
		selector = FixedSelector{Index: s.Catalog.Index}
	}
	return NewAnimationCatalog(SourcesFromURIs(s.Catalog.URIs), selector)
}

// JointNormalizer builds the normalizer described by these settings.
func (s *AppSettings) JointNormalizer() JointNameNormalizer {
	return NewJointNameNormalizer(s.Retarget.JointPrefixes)
}
