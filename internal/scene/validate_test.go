package scene

import (
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/scene/scenetest"
)

func TestValidate_WellFormed(t *testing.T) {
	assert.NoError(t, New(scenetest.Avatar("Hips", "Spine", "Head")).Validate())
	assert.NoError(t, New(scenetest.Animation("Walk", "Hips", "Spine")).Validate())
	assert.NoError(t, New(scenetest.Unskinned()).Validate())
}

func TestValidate_DanglingReferences(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(doc *gltf.Document)
	}{
		{"scene", func(doc *gltf.Document) { doc.Scene = gltf.Index(4) }},
		{"scene node", func(doc *gltf.Document) { doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 40) }},
		{"node child", func(doc *gltf.Document) { doc.Nodes[1].Children = []uint32{40} }},
		{"node mesh", func(doc *gltf.Document) { doc.Nodes[0].Mesh = gltf.Index(3) }},
		{"node skin", func(doc *gltf.Document) { doc.Nodes[0].Skin = gltf.Index(3) }},
		{"primitive attribute", func(doc *gltf.Document) {
			doc.Meshes[0].Primitives[0].Attributes["NORMAL"] = 9
		}},
		{"primitive indices", func(doc *gltf.Document) { doc.Meshes[0].Primitives[0].Indices = gltf.Index(9) }},
		{"skin joint", func(doc *gltf.Document) { doc.Skins[0].Joints = append(doc.Skins[0].Joints, 40) }},
		{"skin matrices", func(doc *gltf.Document) { doc.Skins[0].InverseBindMatrices = gltf.Index(9) }},
		{"accessor buffer view", func(doc *gltf.Document) { doc.Accessors[0].BufferView = gltf.Index(9) }},
		{"sparse buffer view", func(doc *gltf.Document) {
			doc.Accessors[0].Sparse = &gltf.Sparse{
				Count:   1,
				Indices: gltf.SparseIndices{BufferView: 0, ComponentType: gltf.ComponentUshort},
				Values:  gltf.SparseValues{BufferView: 7},
			}
		}},
		{"buffer view buffer", func(doc *gltf.Document) { doc.BufferViews[0].Buffer = 3 }},
		{"buffer view range", func(doc *gltf.Document) { doc.BufferViews[0].ByteLength += 64 }},
		{"image buffer view", func(doc *gltf.Document) {
			doc.Images = []*gltf.Image{{BufferView: gltf.Index(5)}}
		}},
		{"animation sampler", func(doc *gltf.Document) {
			doc.Animations = []*gltf.Animation{{
				Samplers: []*gltf.AnimationSampler{{Input: gltf.Index(0), Output: gltf.Index(9)}},
			}}
		}},
		{"channel sampler", func(doc *gltf.Document) {
			doc.Animations = []*gltf.Animation{{
				Channels: []*gltf.Channel{{Sampler: gltf.Index(0), Target: gltf.ChannelTarget{Node: gltf.Index(0)}}},
			}}
		}},
		{"channel without sampler", func(doc *gltf.Document) {
			doc.Animations = []*gltf.Animation{{
				Samplers: []*gltf.AnimationSampler{{Input: gltf.Index(0), Output: gltf.Index(0)}},
				Channels: []*gltf.Channel{{Target: gltf.ChannelTarget{Node: gltf.Index(1)}}},
			}}
		}},
		{"channel null sampler", func(doc *gltf.Document) {
			doc.Animations = []*gltf.Animation{{
				Samplers: []*gltf.AnimationSampler{nil},
				Channels: []*gltf.Channel{{Sampler: gltf.Index(0), Target: gltf.ChannelTarget{Node: gltf.Index(1)}}},
			}}
		}},
		{"sampler without input", func(doc *gltf.Document) {
			doc.Animations = []*gltf.Animation{{
				Samplers: []*gltf.AnimationSampler{{Output: gltf.Index(0)}},
			}}
		}},
		{"channel node", func(doc *gltf.Document) {
			doc.Animations = []*gltf.Animation{{
				Samplers: []*gltf.AnimationSampler{{Input: gltf.Index(0), Output: gltf.Index(0)}},
				Channels: []*gltf.Channel{{Sampler: gltf.Index(0), Target: gltf.ChannelTarget{Node: gltf.Index(40)}}},
			}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := scenetest.Avatar("Hips", "Spine")
			tt.mutate(doc)
			assert.ErrorIs(t, New(doc).Validate(), domain.ErrIntegrity)
		})
	}
}

func TestValidate_ReportsFirstFailure(t *testing.T) {
	doc := scenetest.Avatar("Hips")
	doc.Nodes[0].Mesh = gltf.Index(5)
	doc.Skins[0].Joints = []uint32{50}

	err := New(doc).Validate()
	assert.ErrorIs(t, err, domain.ErrIntegrity)
	assert.Contains(t, err.Error(), "node 0 mesh")
}

func TestValidate_DeclaredLengthWithoutData(t *testing.T) {
	doc := &gltf.Document{
		Buffers:     []*gltf.Buffer{{ByteLength: 16}},
		BufferViews: []*gltf.BufferView{{Buffer: 0, ByteOffset: 8, ByteLength: 8}},
	}
	assert.NoError(t, New(doc).Validate())

	doc.BufferViews[0].ByteLength = 9
	assert.ErrorIs(t, New(doc).Validate(), domain.ErrIntegrity)
}
