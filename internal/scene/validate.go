package scene

import (
	"fmt"

	"github.com/qmuntal/gltf"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
)

// Validate checks that every index-valued reference in the document
// resolves inside its arena and that every buffer view lies inside the
// bytes of its buffer. The first failure is returned wrapped in
// domain.ErrIntegrity.
func (d *Document) Validate() error {
	v := &validator{d: d}
	v.scenes()
	v.nodes()
	v.meshes()
	v.skins()
	v.images()
	v.accessors()
	v.bufferViews()
	v.animations()
	return v.err
}

type validator struct {
	d   *Document
	err error
}

func (v *validator) fail(format string, args ...any) {
	if v.err == nil {
		v.err = fmt.Errorf("%w: %s", domain.ErrIntegrity, fmt.Sprintf(format, args...))
	}
}

func (v *validator) index(what string, idx uint32, n int) {
	if int(idx) >= n {
		v.fail("%s references index %d of %d", what, idx, n)
	}
}

func (v *validator) optional(what string, idx *uint32, n int) {
	if idx != nil {
		v.index(what, *idx, n)
	}
}

func (v *validator) required(what string, idx *uint32, n int) {
	if idx == nil {
		v.fail("%s is missing", what)
		return
	}
	v.index(what, *idx, n)
}

func (v *validator) scenes() {
	d := v.d
	v.optional("document scene", d.Scene, len(d.Scenes))
	for i, s := range d.Scenes {
		if s == nil {
			continue
		}
		for _, n := range s.Nodes {
			v.index(fmt.Sprintf("scene %d", i), n, len(d.Nodes))
		}
	}
}

func (v *validator) nodes() {
	d := v.d
	for i, n := range d.Nodes {
		if n == nil {
			continue
		}
		what := fmt.Sprintf("node %d", i)
		for _, c := range n.Children {
			v.index(what+" child", c, len(d.Nodes))
		}
		v.optional(what+" mesh", n.Mesh, len(d.Meshes))
		v.optional(what+" skin", n.Skin, len(d.Skins))
		v.optional(what+" camera", n.Camera, len(d.Cameras))
	}
}

func (v *validator) meshes() {
	d := v.d
	for i, m := range d.Meshes {
		if m == nil {
			continue
		}
		for j, p := range m.Primitives {
			if p == nil {
				continue
			}
			what := fmt.Sprintf("mesh %d primitive %d", i, j)
			for name, a := range p.Attributes {
				v.index(what+" attribute "+name, a, len(d.Accessors))
			}
			for _, target := range p.Targets {
				for name, a := range target {
					v.index(what+" target "+name, a, len(d.Accessors))
				}
			}
			v.optional(what+" indices", p.Indices, len(d.Accessors))
			v.optional(what+" material", p.Material, len(d.Materials))
		}
	}
}

func (v *validator) skins() {
	d := v.d
	for i, s := range d.Skins {
		if s == nil {
			continue
		}
		what := fmt.Sprintf("skin %d", i)
		v.optional(what+" inverse bind matrices", s.InverseBindMatrices, len(d.Accessors))
		v.optional(what+" skeleton", s.Skeleton, len(d.Nodes))
		for _, j := range s.Joints {
			v.index(what+" joint", j, len(d.Nodes))
		}
	}
}

func (v *validator) images() {
	d := v.d
	for i, img := range d.Images {
		if img == nil {
			continue
		}
		v.optional(fmt.Sprintf("image %d buffer view", i), img.BufferView, len(d.BufferViews))
	}
}

func (v *validator) accessors() {
	d := v.d
	for i, a := range d.Accessors {
		if a == nil {
			continue
		}
		what := fmt.Sprintf("accessor %d", i)
		v.optional(what+" buffer view", a.BufferView, len(d.BufferViews))
		if a.Sparse != nil {
			v.index(what+" sparse indices", a.Sparse.Indices.BufferView, len(d.BufferViews))
			v.index(what+" sparse values", a.Sparse.Values.BufferView, len(d.BufferViews))
		}
	}
}

func (v *validator) bufferViews() {
	d := v.d
	for i, bv := range d.BufferViews {
		if bv == nil {
			continue
		}
		what := fmt.Sprintf("buffer view %d", i)
		v.index(what+" buffer", bv.Buffer, len(d.Buffers))
		if int(bv.Buffer) >= len(d.Buffers) || d.Buffers[bv.Buffer] == nil {
			continue
		}
		if end := uint64(bv.ByteOffset) + uint64(bv.ByteLength); end > uint64(bufferSize(d.Buffers[bv.Buffer])) {
			v.fail("%s spans bytes [%d, %d) past buffer %d of %d bytes",
				what, bv.ByteOffset, end, bv.Buffer, bufferSize(d.Buffers[bv.Buffer]))
		}
	}
}

func (v *validator) animations() {
	d := v.d
	for i, a := range d.Animations {
		if a == nil {
			continue
		}
		for j, s := range a.Samplers {
			if s == nil {
				continue
			}
			what := fmt.Sprintf("animation %d sampler %d", i, j)
			v.required(what+" input", s.Input, len(d.Accessors))
			v.required(what+" output", s.Output, len(d.Accessors))
		}
		for j, c := range a.Channels {
			if c == nil {
				continue
			}
			what := fmt.Sprintf("animation %d channel %d", i, j)
			v.required(what+" sampler", c.Sampler, len(a.Samplers))
			if c.Sampler != nil && int(*c.Sampler) < len(a.Samplers) && a.Samplers[*c.Sampler] == nil {
				v.fail("%s sampler %d is null", what, *c.Sampler)
			}
			v.optional(what+" target node", c.Target.Node, len(d.Nodes))
		}
	}
}

// bufferSize is the number of addressable bytes in b. Buffers whose
// payload was not loaded fall back to the declared length.
func bufferSize(b *gltf.Buffer) int {
	if b.Data == nil {
		return int(b.ByteLength)
	}
	return len(b.Data)
}
