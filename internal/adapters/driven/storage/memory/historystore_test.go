package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
)

func TestHistoryStore_ListNewestFirst(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()
	for _, id := range []string{"one", "two", "three"} {
		require.NoError(t, store.Record(ctx, domain.MergeRecord{ID: id}))
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"all", 0, []string{"three", "two", "one"}},
		{"negative is all", -1, []string{"three", "two", "one"}},
		{"limited", 2, []string{"three", "two"}},
		{"limit above size", 10, []string{"three", "two", "one"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := store.List(ctx, tt.limit)
			require.NoError(t, err)
			ids := make([]string, len(records))
			for i, r := range records {
				ids[i] = r.ID
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestHistoryStore_Empty(t *testing.T) {
	records, err := NewHistoryStore().List(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, records)
}
