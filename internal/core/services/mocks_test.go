package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
)

// mockProcessor records its inputs and returns canned results.
type mockProcessor struct {
	avatar    []byte
	animation []byte
	out       []byte
	report    *domain.MergeReport
	summary   *domain.AssetSummary
	err       error
}

func (m *mockProcessor) Merge(_ context.Context, avatar, animation []byte) ([]byte, *domain.MergeReport, error) {
	m.avatar, m.animation = avatar, animation
	if m.err != nil {
		return nil, nil, m.err
	}
	report := m.report
	if report == nil {
		report = &domain.MergeReport{AnimationsAdded: 1, ChannelsMatched: 3}
	}
	return m.out, report, nil
}

func (m *mockProcessor) Repack(_ context.Context, data []byte) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]byte("repacked:"), data...), nil
}

func (m *mockProcessor) Inspect(_ context.Context, data []byte) (*domain.AssetSummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.summary != nil {
		return m.summary, nil
	}
	return &domain.AssetSummary{ByteLength: len(data)}, nil
}

// mockFetcher serves fixed bodies by URI.
type mockFetcher struct {
	bodies  map[string][]byte
	fetched []string
}

func (m *mockFetcher) Fetch(_ context.Context, uri string) ([]byte, error) {
	m.fetched = append(m.fetched, uri)
	body, ok := m.bodies[uri]
	if !ok {
		return nil, fmt.Errorf("%w: GET %s: 404", domain.ErrTransport, uri)
	}
	return body, nil
}

// failingHistory rejects every record.
type failingHistory struct{}

func (failingHistory) Record(context.Context, domain.MergeRecord) error {
	return errors.New("disk full")
}

func (failingHistory) List(context.Context, int) ([]domain.MergeRecord, error) {
	return nil, errors.New("disk full")
}

// failingAssets reads nothing and rejects writes.
type failingAssets struct{}

func (failingAssets) Read(_ context.Context, path string) ([]byte, error) {
	return nil, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
}

func (failingAssets) Write(context.Context, string, []byte) (string, error) {
	return "", errors.New("read-only")
}
