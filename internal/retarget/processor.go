package retarget

import (
	"context"
	"fmt"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/ports/driven"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/glb"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/logger"
)

// Ensure Processor implements the interface.
var _ driven.AssetProcessor = (*Processor)(nil)

// Processor runs read, retarget and write over GLB bytes.
type Processor struct {
	retargeter *Retargeter
}

// NewProcessor creates a Processor that matches joints with normalizer.
func NewProcessor(normalizer domain.JointNameNormalizer) *Processor {
	return &Processor{retargeter: New(normalizer)}
}

// Merge retargets the animations in animation onto avatar.
func (p *Processor) Merge(ctx context.Context, avatar, animation []byte) ([]byte, *domain.MergeReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	target, err := glb.Read(avatar)
	if err != nil {
		return nil, nil, fmt.Errorf("read avatar: %w", err)
	}
	source, err := glb.Read(animation)
	if err != nil {
		return nil, nil, fmt.Errorf("read animation: %w", err)
	}
	logger.Debug("merge: avatar %d joints, source %d animations", len(target.JointNames()), len(source.Animations))

	report, err := p.retargeter.Retarget(source, target)
	if err != nil {
		return nil, nil, err
	}

	out, err := glb.Write(target)
	if err != nil {
		return nil, nil, fmt.Errorf("write merged asset: %w", err)
	}
	return out, report, nil
}

// Repack re-encodes data as a single-buffer GLB.
func (p *Processor) Repack(ctx context.Context, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := glb.Read(data)
	if err != nil {
		return nil, err
	}
	return glb.Write(doc)
}

// Inspect describes the structure of data.
func (p *Processor) Inspect(ctx context.Context, data []byte) (*domain.AssetSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := glb.Read(data)
	if err != nil {
		return nil, err
	}
	summary := doc.Summary()
	summary.ByteLength = len(data)
	summary.Container = "gltf"
	if h, err := glb.Peek(data); err == nil {
		summary.Container = "glb"
		for _, c := range h.Chunks {
			summary.Chunks = append(summary.Chunks, domain.ChunkSummary{Type: c.TypeName(), Length: int(c.Length)})
		}
	}
	return &summary, nil
}
