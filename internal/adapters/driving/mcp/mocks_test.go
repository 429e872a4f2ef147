package mcp

import (
	"context"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
)

// mockModelService is a mock implementation of driving.ModelService.
type mockModelService struct {
	result  *domain.MergeResult
	summary *domain.AssetSummary
	sources []domain.AnimationSource
	records []domain.MergeRecord
	err     error

	lastRequest domain.MergeRequest
	lastRef     domain.AssetRef
	lastLimit   int
}

func (m *mockModelService) Merge(_ context.Context, req domain.MergeRequest) (*domain.MergeResult, error) {
	m.lastRequest = req
	return m.result, m.err
}

func (m *mockModelService) Save(_ context.Context, req domain.MergeRequest) (*domain.MergeResult, error) {
	m.lastRequest = req
	return m.result, m.err
}

func (m *mockModelService) MergeURIs(ctx context.Context, avatarURI, animationURI string) (*domain.MergeResult, error) {
	return m.Merge(ctx, domain.MergeRequest{Avatar: domain.RemoteRef(avatarURI), Animation: domain.RemoteRef(animationURI)})
}

func (m *mockModelService) MergePaths(ctx context.Context, avatarPath, animationPath string) (*domain.MergeResult, error) {
	return m.Merge(ctx, domain.MergeRequest{Avatar: domain.LocalRef(avatarPath), Animation: domain.LocalRef(animationPath)})
}

func (m *mockModelService) MergeBuffer(ctx context.Context, avatar []byte, animationURI string) (*domain.MergeResult, error) {
	return m.Merge(ctx, domain.MergeRequest{Avatar: domain.BufferRef(avatar), Animation: domain.RemoteRef(animationURI)})
}

func (m *mockModelService) SaveURIs(ctx context.Context, avatarURI, animationURI string) (*domain.MergeResult, error) {
	return m.Save(ctx, domain.MergeRequest{Avatar: domain.RemoteRef(avatarURI), Animation: domain.RemoteRef(animationURI)})
}

func (m *mockModelService) SavePaths(ctx context.Context, avatarPath, animationPath string) (*domain.MergeResult, error) {
	return m.Save(ctx, domain.MergeRequest{Avatar: domain.LocalRef(avatarPath), Animation: domain.LocalRef(animationPath)})
}

func (m *mockModelService) SaveBuffer(ctx context.Context, avatar []byte, animationURI string) (*domain.MergeResult, error) {
	return m.Save(ctx, domain.MergeRequest{Avatar: domain.BufferRef(avatar), Animation: domain.RemoteRef(animationURI)})
}

func (m *mockModelService) AnimationBuffer(_ context.Context, ref domain.AssetRef) ([]byte, error) {
	m.lastRef = ref
	return nil, m.err
}

func (m *mockModelService) Inspect(_ context.Context, ref domain.AssetRef) (*domain.AssetSummary, error) {
	m.lastRef = ref
	return m.summary, m.err
}

func (m *mockModelService) Catalog() []domain.AnimationSource {
	return m.sources
}

func (m *mockModelService) History(_ context.Context, limit int) ([]domain.MergeRecord, error) {
	m.lastLimit = limit
	return m.records, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	values map[string]string
	err    error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	s := domain.DefaultAppSettings()
	return &s, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error {
	return m.err
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.err != nil {
		return m.err
	}
	m.values[key] = value
	return nil
}

func (m *mockSettingsService) Value(key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.values[key], nil
}

func (m *mockSettingsService) Keys() []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	return keys
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *mockSettingsService) ConfigPath() string {
	return "/tmp/glbanim/config.toml"
}
