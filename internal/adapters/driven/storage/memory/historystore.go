package memory

import (
	"context"
	"sync"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.MergeHistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.MergeHistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	records []domain.MergeRecord
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Record appends a merge record.
func (s *HistoryStore) Record(_ context.Context, record domain.MergeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

// List returns up to limit records, newest first.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.MergeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.records)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]domain.MergeRecord, 0, n)
	for i := len(s.records) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, s.records[i])
	}
	return result, nil
}
