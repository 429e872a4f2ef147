package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/ports/driven"
)

// timeLayout is fixed-width so that created_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// historyStore implements driven.MergeHistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.MergeHistoryStore = (*historyStore)(nil)

// Record appends a merge record.
func (s *historyStore) Record(ctx context.Context, record domain.MergeRecord) error {
	if record.ID == "" {
		return fmt.Errorf("%w: merge record has no ID", domain.ErrInvalidInput)
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO merge_history (id, avatar, animation, output_path, byte_length,
			channels_matched, channels_skipped, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.Avatar, record.Animation, nullString(record.OutputPath),
		record.ByteLength, record.ChannelsMatched, record.ChannelsSkipped,
		record.CreatedAt.UTC().Format(timeLayout))

	if err != nil {
		return fmt.Errorf("recording merge: %w", err)
	}
	return nil
}

// List returns up to limit records, newest first.
func (s *historyStore) List(ctx context.Context, limit int) ([]domain.MergeRecord, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, avatar, animation, output_path, byte_length,
			channels_matched, channels_skipped, created_at
		FROM merge_history
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying merge history: %w", err)
	}
	defer rows.Close()

	var records []domain.MergeRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		record, err := scanMergeRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating merge history: %w", err)
	}

	return records, nil
}

func scanMergeRecord(rows *sql.Rows) (*domain.MergeRecord, error) {
	var (
		r          domain.MergeRecord
		outputPath sql.NullString
		createdAt  string
	)
	err := rows.Scan(&r.ID, &r.Avatar, &r.Animation, &outputPath, &r.ByteLength,
		&r.ChannelsMatched, &r.ChannelsSkipped, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("scanning merge record: %w", err)
	}

	r.OutputPath = outputPath.String
	r.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing merge time %q: %w", createdAt, err)
	}
	return &r, nil
}

// nullString returns a sql.NullString that is invalid for empty strings.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
