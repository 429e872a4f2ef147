package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
)

// setupTestStore creates a store in a temporary directory.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "glbanim-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func TestNewStore(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.Equal(t, "history.db", filepath.Base(store.Path()))
	_, err := os.Stat(store.Path())
	assert.NoError(t, err)

	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestNewStore_ReopenSkipsAppliedMigrations(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.HistoryStore().Record(context.Background(), domain.MergeRecord{
		ID: "keep", Avatar: "a", Animation: "b", CreatedAt: time.Now(),
	}))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	records, err := second.HistoryStore().List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "keep", records[0].ID)
}

func TestHistoryStore_RecordAndList(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	history := store.HistoryStore()
	ctx := context.Background()

	base := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	records := []domain.MergeRecord{
		{ID: "r1", Avatar: "https://a.example/avatar.glb", Animation: "https://a.example/Walk.glb",
			ByteLength: 100, ChannelsMatched: 52, CreatedAt: base},
		{ID: "r2", Avatar: "avatar.glb", Animation: "dance.glb", OutputPath: "/out/r2.glb",
			ByteLength: 200, ChannelsMatched: 10, ChannelsSkipped: 2, CreatedAt: base.Add(500 * time.Millisecond)},
		{ID: "r3", Avatar: "buffer(9 bytes)", Animation: "https://a.example/Idle.glb",
			CreatedAt: base.Add(2 * time.Second)},
	}
	for _, r := range records {
		require.NoError(t, history.Record(ctx, r))
	}

	got, err := history.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "r3", got[0].ID)
	assert.Equal(t, "r2", got[1].ID)
	assert.Equal(t, "r1", got[2].ID)

	r2 := got[1]
	assert.Equal(t, "/out/r2.glb", r2.OutputPath)
	assert.Equal(t, 200, r2.ByteLength)
	assert.Equal(t, 2, r2.ChannelsSkipped)
	assert.True(t, r2.CreatedAt.Equal(records[1].CreatedAt))
	assert.Empty(t, got[2].OutputPath)

	limited, err := history.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestHistoryStore_RecordRejects(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	history := store.HistoryStore()
	ctx := context.Background()

	err := history.Record(ctx, domain.MergeRecord{Avatar: "a"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	rec := domain.MergeRecord{ID: "dup", Avatar: "a", Animation: "b", CreatedAt: time.Now()}
	require.NoError(t, history.Record(ctx, rec))
	assert.Error(t, history.Record(ctx, rec), "duplicate IDs are rejected")
}

func TestHistoryStore_Empty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	records, err := store.HistoryStore().List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
