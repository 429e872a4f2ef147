package scene

import (
	"github.com/qmuntal/gltf"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
)

// Document is a parsed glTF asset.
type Document struct {
	*gltf.Document
}

// New wraps doc. A nil doc yields an empty glTF 2.0 document.
func New(doc *gltf.Document) *Document {
	if doc == nil {
		doc = &gltf.Document{Asset: gltf.Asset{Version: "2.0"}}
	}
	return &Document{Document: doc}
}

// Counts is the size of each arena in a document.
type Counts struct {
	Nodes       int
	Meshes      int
	Skins       int
	Accessors   int
	BufferViews int
	Buffers     int
	Animations  int
	Channels    int
}

// Counts returns the current arena sizes.
func (d *Document) Counts() Counts {
	c := Counts{
		Nodes:       len(d.Nodes),
		Meshes:      len(d.Meshes),
		Skins:       len(d.Skins),
		Accessors:   len(d.Accessors),
		BufferViews: len(d.BufferViews),
		Buffers:     len(d.Buffers),
		Animations:  len(d.Animations),
	}
	for _, a := range d.Animations {
		if a != nil {
			c.Channels += len(a.Channels)
		}
	}
	return c
}

// NodeName returns the name of node i.
// The boolean is false when i is out of range or the node is nil.
func (d *Document) NodeName(i uint32) (string, bool) {
	if int(i) >= len(d.Nodes) || d.Nodes[i] == nil {
		return "", false
	}
	return d.Nodes[i].Name, true
}

// FirstSkin returns the skin used for retargeting.
// Additional skins are ignored.
func (d *Document) FirstSkin() (*gltf.Skin, bool) {
	if len(d.Skins) == 0 || d.Skins[0] == nil {
		return nil, false
	}
	return d.Skins[0], true
}

// JointNames returns the names of the first skin's joints, in joint order.
func (d *Document) JointNames() []string {
	skin, ok := d.FirstSkin()
	if !ok {
		return nil
	}
	names := make([]string, len(skin.Joints))
	for i, j := range skin.Joints {
		names[i], _ = d.NodeName(j)
	}
	return names
}

// Summary describes the document's structure.
func (d *Document) Summary() domain.AssetSummary {
	s := domain.AssetSummary{
		Generator:   d.Asset.Generator,
		Version:     d.Asset.Version,
		Nodes:       len(d.Nodes),
		Meshes:      len(d.Meshes),
		Skins:       len(d.Skins),
		Accessors:   len(d.Accessors),
		BufferViews: len(d.BufferViews),
		Buffers:     len(d.Buffers),
		Joints:      d.JointNames(),
	}
	for _, b := range d.Buffers {
		if b != nil {
			s.ByteLength += len(b.Data)
		}
	}
	for _, a := range d.Animations {
		if a == nil {
			continue
		}
		s.Animations = append(s.Animations, domain.AnimationSummary{
			Name:     a.Name,
			Channels: len(a.Channels),
			Samplers: len(a.Samplers),
		})
	}
	return s
}
