package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/ports/driven"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/ports/driving"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/logger"
)

// Ensure ModelService implements the interface.
var _ driving.ModelService = (*ModelService)(nil)

// ModelService loads avatars and animations, merges them and optionally
// persists the result.
type ModelService struct {
	processor driven.AssetProcessor
	fetcher   driven.AssetFetcher
	assets    driven.AssetStore
	history   driven.MergeHistoryStore
	catalog   *domain.AnimationCatalog
	newID     func() string
	now       func() time.Time
}

// ModelOption configures a ModelService.
type ModelOption func(*ModelService)

// WithHistory records completed merges in store.
func WithHistory(store driven.MergeHistoryStore) ModelOption {
	return func(s *ModelService) {
		s.history = store
	}
}

// WithIDGenerator replaces the generator used for output names and record IDs.
func WithIDGenerator(fn func() string) ModelOption {
	return func(s *ModelService) {
		s.newID = fn
	}
}

// WithClock replaces the clock used to timestamp history records.
func WithClock(fn func() time.Time) ModelOption {
	return func(s *ModelService) {
		s.now = fn
	}
}

// NewModelService creates a new model service.
func NewModelService(
	processor driven.AssetProcessor,
	fetcher driven.AssetFetcher,
	assets driven.AssetStore,
	catalog *domain.AnimationCatalog,
	opts ...ModelOption,
) *ModelService {
	s := &ModelService{
		processor: processor,
		fetcher:   fetcher,
		assets:    assets,
		catalog:   catalog,
		newID:     uuid.NewString,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Merge retargets an animation onto the avatar and returns the merged GLB.
// Nothing is persisted and no history is recorded.
func (s *ModelService) Merge(ctx context.Context, req domain.MergeRequest) (*domain.MergeResult, error) {
	return s.merge(ctx, req)
}

// Save merges, writes the result to the asset store as <id>.glb and
// records the merge in history.
func (s *ModelService) Save(ctx context.Context, req domain.MergeRequest) (*domain.MergeResult, error) {
	if s.assets == nil {
		return nil, domain.ErrNotImplemented
	}
	result, err := s.merge(ctx, req)
	if err != nil {
		return nil, err
	}

	path, err := s.assets.Write(ctx, s.newID()+".glb", result.Data)
	if err != nil {
		return nil, fmt.Errorf("save merged asset: %w", err)
	}
	result.Path = path
	logger.Info("saved merged asset to %s", path)

	s.record(ctx, req, result)
	return result, nil
}

// MergeURIs merges two remote assets.
func (s *ModelService) MergeURIs(ctx context.Context, avatarURI, animationURI string) (*domain.MergeResult, error) {
	return s.Merge(ctx, uriRequest(domain.RemoteRef(avatarURI), animationURI))
}

// MergePaths merges two local assets.
func (s *ModelService) MergePaths(ctx context.Context, avatarPath, animationPath string) (*domain.MergeResult, error) {
	return s.Merge(ctx, pathRequest(avatarPath, animationPath))
}

// MergeBuffer merges in-memory avatar bytes with a remote animation.
func (s *ModelService) MergeBuffer(ctx context.Context, avatar []byte, animationURI string) (*domain.MergeResult, error) {
	return s.Merge(ctx, uriRequest(domain.BufferRef(avatar), animationURI))
}

// SaveURIs merges two remote assets and saves the result.
func (s *ModelService) SaveURIs(ctx context.Context, avatarURI, animationURI string) (*domain.MergeResult, error) {
	return s.Save(ctx, uriRequest(domain.RemoteRef(avatarURI), animationURI))
}

// SavePaths merges two local assets and saves the result.
func (s *ModelService) SavePaths(ctx context.Context, avatarPath, animationPath string) (*domain.MergeResult, error) {
	return s.Save(ctx, pathRequest(avatarPath, animationPath))
}

// SaveBuffer merges in-memory avatar bytes with a remote animation and saves the result.
func (s *ModelService) SaveBuffer(ctx context.Context, avatar []byte, animationURI string) (*domain.MergeResult, error) {
	return s.Save(ctx, uriRequest(domain.BufferRef(avatar), animationURI))
}

// AnimationBuffer loads an animation and repacks it as a single-buffer GLB.
func (s *ModelService) AnimationBuffer(ctx context.Context, ref domain.AssetRef) ([]byte, error) {
	if s.processor == nil {
		return nil, domain.ErrNotImplemented
	}
	ref, err := s.animationRef(ref)
	if err != nil {
		return nil, err
	}
	data, err := s.load(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("load animation: %w", err)
	}
	return s.processor.Repack(ctx, data)
}

// Inspect loads an asset and describes its structure.
func (s *ModelService) Inspect(ctx context.Context, ref domain.AssetRef) (*domain.AssetSummary, error) {
	if s.processor == nil {
		return nil, domain.ErrNotImplemented
	}
	data, err := s.load(ctx, ref)
	if err != nil {
		return nil, err
	}
	return s.processor.Inspect(ctx, data)
}

// Catalog returns the configured animation sources.
func (s *ModelService) Catalog() []domain.AnimationSource {
	if s.catalog == nil {
		return nil
	}
	return append([]domain.AnimationSource(nil), s.catalog.Sources...)
}

// History returns recent merges, newest first.
// Without a history store it returns nothing.
func (s *ModelService) History(ctx context.Context, limit int) ([]domain.MergeRecord, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.List(ctx, limit)
}

func (s *ModelService) merge(ctx context.Context, req domain.MergeRequest) (*domain.MergeResult, error) {
	if s.processor == nil {
		return nil, domain.ErrNotImplemented
	}
	if req.Avatar.IsZero() {
		return nil, fmt.Errorf("%w: avatar is required", domain.ErrInvalidInput)
	}

	logger.Section("Merge")
	animation, err := s.animationRef(req.Animation)
	if err != nil {
		return nil, err
	}
	logger.Debug("avatar: %s", req.Avatar)
	logger.Debug("animation: %s", animation)

	avatar, err := s.load(ctx, req.Avatar)
	if err != nil {
		return nil, fmt.Errorf("load avatar: %w", err)
	}
	clip, err := s.load(ctx, animation)
	if err != nil {
		return nil, fmt.Errorf("load animation: %w", err)
	}

	start := time.Now()
	data, report, err := s.processor.Merge(ctx, avatar, clip)
	if err != nil {
		return nil, err
	}
	logger.Debug("merged %d bytes in %v", len(data), time.Since(start))

	return &domain.MergeResult{
		Data:      data,
		Animation: animation,
		Report:    *report,
	}, nil
}

// animationRef resolves a zero ref to a catalog entry.
func (s *ModelService) animationRef(ref domain.AssetRef) (domain.AssetRef, error) {
	if !ref.IsZero() {
		return ref, nil
	}
	if s.catalog == nil {
		return domain.AssetRef{}, domain.ErrCatalogEmpty
	}
	src, err := s.catalog.Pick()
	if err != nil {
		return domain.AssetRef{}, err
	}
	logger.Info("using catalog animation %q", src.Name)
	return domain.ParseRef(src.URI), nil
}

func (s *ModelService) load(ctx context.Context, ref domain.AssetRef) ([]byte, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	switch ref.Kind {
	case domain.RefRemote:
		if s.fetcher == nil {
			return nil, fmt.Errorf("%w: no fetcher for %s", domain.ErrNotImplemented, ref.Location)
		}
		return s.fetcher.Fetch(ctx, ref.Location)
	case domain.RefLocal:
		if s.assets == nil {
			return nil, fmt.Errorf("%w: no asset store for %s", domain.ErrNotImplemented, ref.Location)
		}
		return s.assets.Read(ctx, ref.Location)
	default:
		return ref.Data, nil
	}
}

// record appends a history entry. Failures are logged and never fail the merge.
func (s *ModelService) record(ctx context.Context, req domain.MergeRequest, result *domain.MergeResult) {
	if s.history == nil {
		return
	}
	rec := domain.MergeRecord{
		ID:              s.newID(),
		Avatar:          req.Avatar.String(),
		Animation:       result.Animation.String(),
		OutputPath:      result.Path,
		ByteLength:      len(result.Data),
		ChannelsMatched: result.Report.ChannelsMatched,
		ChannelsSkipped: result.Report.ChannelsSkipped,
		CreatedAt:       s.now(),
	}
	if err := s.history.Record(ctx, rec); err != nil {
		logger.Warn("record merge history: %v", err)
	}
}

func uriRequest(avatar domain.AssetRef, animationURI string) domain.MergeRequest {
	req := domain.MergeRequest{Avatar: avatar}
	if animationURI != "" {
		req.Animation = domain.RemoteRef(animationURI)
	}
	return req
}

func pathRequest(avatarPath, animationPath string) domain.MergeRequest {
	req := domain.MergeRequest{Avatar: domain.LocalRef(avatarPath)}
	if animationPath != "" {
		req.Animation = domain.LocalRef(animationPath)
	}
	return req
}
