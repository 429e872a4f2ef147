package driving

import (
	"context"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
)

// ModelService retargets animations onto avatars and packages the result.
type ModelService interface {
	// Merge retargets an animation onto the avatar and returns the merged GLB.
	// A zero req.Animation selects a clip from the catalog.
	Merge(ctx context.Context, req domain.MergeRequest) (*domain.MergeResult, error)

	// Save is Merge followed by persisting the result under a fresh name.
	// Only saved merges are recorded in history.
	// Nothing is written when the merge fails.
	Save(ctx context.Context, req domain.MergeRequest) (*domain.MergeResult, error)

	// MergeURIs merges two remote assets.
	MergeURIs(ctx context.Context, avatarURI, animationURI string) (*domain.MergeResult, error)

	// MergePaths merges two local assets.
	MergePaths(ctx context.Context, avatarPath, animationPath string) (*domain.MergeResult, error)

	// MergeBuffer merges an in-memory avatar with a remote animation.
	MergeBuffer(ctx context.Context, avatar []byte, animationURI string) (*domain.MergeResult, error)

	// SaveURIs is MergeURIs followed by Save semantics.
	SaveURIs(ctx context.Context, avatarURI, animationURI string) (*domain.MergeResult, error)

	// SavePaths is MergePaths followed by Save semantics.
	SavePaths(ctx context.Context, avatarPath, animationPath string) (*domain.MergeResult, error)

	// SaveBuffer is MergeBuffer followed by Save semantics.
	SaveBuffer(ctx context.Context, avatar []byte, animationURI string) (*domain.MergeResult, error)

	// AnimationBuffer loads an animation and repacks it as a single-buffer GLB.
	// A zero ref selects a clip from the catalog.
	AnimationBuffer(ctx context.Context, ref domain.AssetRef) ([]byte, error)

	// Inspect loads an asset and describes its structure.
	Inspect(ctx context.Context, ref domain.AssetRef) (*domain.AssetSummary, error)

	// Catalog returns the configured animation sources.
	Catalog() []domain.AnimationSource

	// History returns recent saved merges, newest first.
	History(ctx context.Context, limit int) ([]domain.MergeRecord, error)
}
