package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/ports/driven"
)

// Ensure AssetStore implements the interface.
var _ driven.AssetStore = (*AssetStore)(nil)

// AssetStore is an in-memory implementation of driven.AssetStore.
// Paths are the names assets were written under.
type AssetStore struct {
	mu     sync.RWMutex
	assets map[string][]byte
}

// NewAssetStore creates a new in-memory asset store.
func NewAssetStore() *AssetStore {
	return &AssetStore{
		assets: make(map[string][]byte),
	}
}

// Read returns the bytes stored at path.
func (s *AssetStore) Read(_ context.Context, path string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.assets[path]
	if !ok {
		return nil, fmt.Errorf("asset %s: %w", path, domain.ErrNotFound)
	}
	return append([]byte(nil), data...), nil
}

// Write stores a copy of data under name.
func (s *AssetStore) Write(_ context.Context, name string, data []byte) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: asset name is required", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets[name] = append([]byte(nil), data...)
	return name, nil
}

// Paths returns the stored paths in sorted order.
func (s *AssetStore) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	paths := make([]string, 0, len(s.assets))
	for p := range s.assets {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
