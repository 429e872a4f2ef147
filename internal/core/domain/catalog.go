package domain

import (
	"fmt"
	"math/rand"
	"path"
	"strings"
	"sync"
)

// AnimationSource is one selectable animation clip.
type AnimationSource struct {
	// Name is the human-readable clip name.
	Name string `json:"name"`

	// URI is where the clip's GLB is fetched from.
	URI string `json:"uri"`
}

// DefaultAnimationURIs is the built-in animation catalog.
var DefaultAnimationURIs = []string{
	"https://atul-test-m.s3.ap-south-1.amazonaws.com/avtar/bb.glb",
	"https://atul-test-m.s3.ap-south-1.amazonaws.com/avtar/0.glb",
	"https://atul-test-m.s3.ap-south-1.amazonaws.com/avtar/breakdance.glb",
	"https://atul-test-m.s3.ap-south-1.amazonaws.com/avtar/Dancing.fbx.glb",
	"https://atul-test-m.s3.ap-south-1.amazonaws.com/avtar/Hip+Hop+Dancing+(1).fbx.glb",
	"https://atul-test-m.s3.ap-south-1.amazonaws.com/avtar/Jumping+Down+(1).fbx.glb",
	"https://atul-test-m.s3.ap-south-1.amazonaws.com/avtar/Standing+2H+Magic+Attack+01.fbx.glb",
	"https://8thwall.8thwall.app/rpm-aframe/assets/animated-m-9d620bk.glb",
	"https://atul-test-m.s3.ap-south-1.amazonaws.com/Kiss.glb",
}

// SourcesFromURIs builds catalog entries, naming each after the file it points at.
func SourcesFromURIs(uris []string) []AnimationSource {
	sources := make([]AnimationSource, 0, len(uris))
	for _, uri := range uris {
		uri = strings.TrimSpace(uri)
		if uri == "" {
			continue
		}
		sources = append(sources, AnimationSource{Name: clipName(uri), URI: uri})
	}
	return sources
}

func clipName(uri string) string {
	name := path.Base(uri)
	name = strings.ReplaceAll(name, "+", " ")
	for _, ext := range []string{".glb", ".fbx"} {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

// SelectionStrategy names how a default animation is chosen from the catalog.
type SelectionStrategy string

// Available selection strategies.
const (
	// SelectionFixed always picks the configured index.
	SelectionFixed SelectionStrategy = "fixed"

	// SelectionSeeded picks pseudo-randomly from a seeded generator.
	SelectionSeeded SelectionStrategy = "seeded"
)

// IsValid returns true if the strategy is recognised.
func (s SelectionStrategy) IsValid() bool {
	return s == SelectionFixed || s == SelectionSeeded
}

// Selector picks an index in [0, n) for a catalog of n entries.
type Selector interface {
	Select(n int) (int, error)
}

// FixedSelector always selects Index.
type FixedSelector struct {
	Index int
}

// Select returns the fixed index, or an error if it is out of range.
func (f FixedSelector) Select(n int) (int, error) {
	if f.Index < 0 || f.Index >= n {
		return 0, fmt.Errorf("%w: catalog index %d out of range [0,%d)", ErrInvalidInput, f.Index, n)
	}
	return f.Index, nil
}

// SeededSelector draws indices from a pseudo-random sequence fixed by its seed.
// Safe for concurrent use.
type SeededSelector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSelector creates a selector whose sequence is determined by seed.
func NewSeededSelector(seed int64) *SeededSelector {
	return &SeededSelector{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // selection, not security
}

// Select returns the next index in the seeded sequence.
func (s *SeededSelector) Select(n int) (int, error) {
	if n <= 0 {
		return 0, ErrCatalogEmpty
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n), nil
}

// SelectorFunc adapts a caller-supplied function to Selector.
type SelectorFunc func(n int) (int, error)

// Select calls f(n).
func (f SelectorFunc) Select(n int) (int, error) {
	return f(n)
}

// AnimationCatalog is an ordered set of animation sources plus the strategy
// used to choose one when the caller supplies none.
type AnimationCatalog struct {
	Sources  []AnimationSource
	Selector Selector
}

// NewAnimationCatalog creates a catalog. A nil selector selects the first entry.
func NewAnimationCatalog(sources []AnimationSource, selector Selector) *AnimationCatalog {
	if selector == nil {
		selector = FixedSelector{Index: 0}
	}
	return &AnimationCatalog{Sources: sources, Selector: selector}
}

// Pick selects one animation source.
func (c *AnimationCatalog) Pick() (AnimationSource, error) {
	if c == nil || len(c.Sources) == 0 {
		return AnimationSource{}, ErrCatalogEmpty
	}
	idx, err := c.Selector.Select(len(c.Sources))
	if err != nil {
		return AnimationSource{}, err
	}
	if idx < 0 || idx >= len(c.Sources) {
		return AnimationSource{}, fmt.Errorf("%w: selector returned %d for %d sources",
			ErrInvalidInput, idx, len(c.Sources))
	}
	return c.Sources[idx], nil
}
