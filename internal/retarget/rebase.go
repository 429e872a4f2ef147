package retarget

import (
	"fmt"

	"github.com/qmuntal/gltf"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/scene"
)

// offsets are the target arena sizes before the merge. Source indices
// are shifted by these when they move into the target.
type offsets struct {
	accessors   uint32
	bufferViews uint32
	buffers     uint32
}

func offsetsOf(doc *scene.Document) offsets {
	return offsets{
		accessors:   uint32(len(doc.Accessors)),
		bufferViews: uint32(len(doc.BufferViews)),
		buffers:     uint32(len(doc.Buffers)),
	}
}

func rebaseAccessors(source *scene.Document, base offsets) ([]*gltf.Accessor, error) {
	n := len(source.BufferViews)
	out := make([]*gltf.Accessor, len(source.Accessors))
	for i, a := range source.Accessors {
		if a == nil {
			return nil, fmt.Errorf("%w: accessor %d is null", domain.ErrIntegrity, i)
		}
		c := *a
		if a.BufferView != nil {
			if int(*a.BufferView) >= n {
				return nil, fmt.Errorf("%w: accessor %d buffer view %d of %d", domain.ErrIntegrity, i, *a.BufferView, n)
			}
			c.BufferView = gltf.Index(*a.BufferView + base.bufferViews)
		}
		if a.Sparse != nil {
			sparse := *a.Sparse
			if int(sparse.Indices.BufferView) >= n || int(sparse.Values.BufferView) >= n {
				return nil, fmt.Errorf("%w: accessor %d sparse buffer view out of range", domain.ErrIntegrity, i)
			}
			sparse.Indices.BufferView += base.bufferViews
			sparse.Values.BufferView += base.bufferViews
			c.Sparse = &sparse
		}
		out[i] = &c
	}
	return out, nil
}

func rebaseBufferViews(source *scene.Document, base offsets) ([]*gltf.BufferView, error) {
	n := len(source.Buffers)
	out := make([]*gltf.BufferView, len(source.BufferViews))
	for i, bv := range source.BufferViews {
		if bv == nil {
			return nil, fmt.Errorf("%w: buffer view %d is null", domain.ErrIntegrity, i)
		}
		if int(bv.Buffer) >= n {
			return nil, fmt.Errorf("%w: buffer view %d buffer %d of %d", domain.ErrIntegrity, i, bv.Buffer, n)
		}
		c := *bv
		c.Buffer += base.buffers
		out[i] = &c
	}
	return out, nil
}

func copyBuffers(source *scene.Document) []*gltf.Buffer {
	out := make([]*gltf.Buffer, 0, len(source.Buffers))
	for _, b := range source.Buffers {
		c := gltf.Buffer{}
		if b != nil {
			c = *b
			c.URI = ""
			c.Data = append([]byte(nil), b.Data...)
		}
		out = append(out, &c)
	}
	return out
}

func rebaseSampler(s *gltf.AnimationSampler, accessors int, base offsets) (*gltf.AnimationSampler, error) {
	if s.Input == nil || s.Output == nil {
		return nil, fmt.Errorf("%w: sampler without input or output", domain.ErrIntegrity)
	}
	if int(*s.Input) >= accessors || int(*s.Output) >= accessors {
		return nil, fmt.Errorf("%w: sampler accessor out of range", domain.ErrIntegrity)
	}
	c := *s
	c.Input = gltf.Index(*s.Input + base.accessors)
	c.Output = gltf.Index(*s.Output + base.accessors)
	return &c, nil
}
