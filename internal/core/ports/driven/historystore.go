package driven

import (
	"context"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
)

// MergeHistoryStore persists a log of completed merges.
type MergeHistoryStore interface {
	// Record appends a merge record.
	Record(ctx context.Context, record domain.MergeRecord) error

	// List returns the most recent records, newest first.
	// A limit of zero or less returns every record.
	List(ctx context.Context, limit int) ([]domain.MergeRecord, error)
}
