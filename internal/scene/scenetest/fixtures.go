// Package scenetest builds small glTF documents for tests.
package scenetest

import (
	"encoding/binary"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Avatar returns a skinned triangle whose skin joints are nodes named
// after joints, in order. Node 0 is the mesh node; joint i is node i+1.
func Avatar(joints ...string) *gltf.Document {
	doc := &gltf.Document{
		Asset: gltf.Asset{Version: "2.0", Generator: "scenetest"},
		Scene: gltf.Index(0),
	}
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}})
	doc.Meshes = []*gltf.Mesh{{
		Name: "Body",
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]uint32{"POSITION": pos},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: "Body", Mesh: gltf.Index(0), Skin: gltf.Index(0)}}
	skin := &gltf.Skin{Name: "Armature"}
	for i, name := range joints {
		idx := uint32(len(doc.Nodes))
		doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name})
		if i > 0 {
			parent := doc.Nodes[idx-1]
			parent.Children = append(parent.Children, idx)
		}
		skin.Joints = append(skin.Joints, idx)
	}
	doc.Skins = []*gltf.Skin{skin}
	roots := []uint32{0}
	if len(joints) > 0 {
		roots = append(roots, 1)
	}
	doc.Scenes = []*gltf.Scene{{Name: "Scene", Nodes: roots}}
	return doc
}

// Unskinned returns a single-triangle document with no skin.
func Unskinned() *gltf.Document {
	doc := Avatar()
	doc.Skins = nil
	doc.Nodes[0].Skin = nil
	return doc
}

// Animation returns a document with one node per target and a single
// animation named name. Each channel rotates its node through its own
// sampler; all samplers share one keyframe-time accessor.
func Animation(name string, targets ...string) *gltf.Document {
	doc := &gltf.Document{Asset: gltf.Asset{Version: "2.0", Generator: "scenetest"}}
	times := modeler.WriteAccessor(doc, gltf.TargetNone, []float32{0, 0.5, 1})
	anim := &gltf.Animation{Name: name}
	for i, target := range targets {
		doc.Nodes = append(doc.Nodes, &gltf.Node{Name: target})
		out := modeler.WriteAccessor(doc, gltf.TargetNone, [][4]float32{
			{0, 0, 0, 1},
			{0, float32(i) / 10, 0, 1},
			{0, 0, 0, 1},
		})
		anim.Samplers = append(anim.Samplers, &gltf.AnimationSampler{
			Input:         gltf.Index(times),
			Output:        gltf.Index(out),
			Interpolation: gltf.InterpolationLinear,
		})
		anim.Channels = append(anim.Channels, &gltf.Channel{
			Sampler: gltf.Index(uint32(i)),
			Target:  gltf.ChannelTarget{Node: gltf.Index(uint32(i)), Path: gltf.TRSRotation},
		})
	}
	doc.Animations = []*gltf.Animation{anim}
	return doc
}

// AddFloatBuffer stores values in a new buffer with its own buffer view
// and scalar accessor, returning the accessor index.
func AddFloatBuffer(doc *gltf.Document, values []float32) uint32 {
	data := make([]byte, 4*len(values))
	for i, f := range values {
		binary.LittleEndian.PutUint32(data[4*i:], math.Float32bits(f))
	}
	doc.Buffers = append(doc.Buffers, &gltf.Buffer{ByteLength: uint32(len(data)), Data: data})
	doc.BufferViews = append(doc.BufferViews, &gltf.BufferView{
		Buffer:     uint32(len(doc.Buffers) - 1),
		ByteLength: uint32(len(data)),
	})
	doc.Accessors = append(doc.Accessors, &gltf.Accessor{
		BufferView:    gltf.Index(uint32(len(doc.BufferViews) - 1)),
		ComponentType: gltf.ComponentFloat,
		Count:         uint32(len(values)),
		Type:          gltf.AccessorScalar,
	})
	return uint32(len(doc.Accessors) - 1)
}

// Floats decodes the scalar float accessor idx of doc.
func Floats(doc *gltf.Document, idx uint32) []float32 {
	a := doc.Accessors[idx]
	bv := doc.BufferViews[*a.BufferView]
	data := doc.Buffers[bv.Buffer].Data[bv.ByteOffset+a.ByteOffset:]
	out := make([]float32, a.Count)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
	}
	return out
}
