package driven

import (
	"context"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
)

// AssetProcessor runs the binary asset pipeline: decode, retarget, encode.
// Every call owns the documents it decodes.
type AssetProcessor interface {
	// Merge retargets the animations in animation onto the skinned avatar
	// and returns the merged GLB. Nothing is returned on failure.
	Merge(ctx context.Context, avatar, animation []byte) ([]byte, *domain.MergeReport, error)

	// Repack decodes a single asset and re-encodes it as a single-buffer GLB.
	Repack(ctx context.Context, data []byte) ([]byte, error)

	// Inspect decodes an asset and describes its structure.
	Inspect(ctx context.Context, data []byte) (*domain.AssetSummary, error)
}
