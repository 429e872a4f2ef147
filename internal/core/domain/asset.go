package domain

import (
	"fmt"
	"strings"
)

// RefKind identifies where an asset's bytes come from.
type RefKind string

// Available asset reference kinds.
const (
	// RefRemote is fetched over the network by URI.
	RefRemote RefKind = "remote"

	// RefLocal is read from local storage by path.
	RefLocal RefKind = "local"

	// RefBuffer is already in memory.
	RefBuffer RefKind = "buffer"
)

// AssetRef points at a GLB (or glTF) asset.
// The zero value means "no asset supplied".
type AssetRef struct {
	// Kind selects how Location or Data is interpreted.
	Kind RefKind

	// Location is a URI for remote refs or a file path for local refs.
	Location string

	// Data holds the bytes for buffer refs.
	Data []byte
}

// RemoteRef references an asset by URI.
func RemoteRef(uri string) AssetRef {
	return AssetRef{Kind: RefRemote, Location: uri}
}

// LocalRef references an asset by file path.
func LocalRef(path string) AssetRef {
	return AssetRef{Kind: RefLocal, Location: path}
}

// BufferRef references in-memory asset bytes.
func BufferRef(data []byte) AssetRef {
	return AssetRef{Kind: RefBuffer, Data: data}
}

// ParseRef builds a remote ref for http(s) URIs and a local ref otherwise.
// file:// URIs become local paths.
func ParseRef(s string) AssetRef {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return AssetRef{}
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
		return RemoteRef(s)
	case strings.HasPrefix(s, "file://"):
		return LocalRef(strings.TrimPrefix(s, "file://"))
	default:
		return LocalRef(s)
	}
}

// IsZero returns true if no asset was supplied.
func (r AssetRef) IsZero() bool {
	return r.Kind == "" && r.Location == "" && len(r.Data) == 0
}

// Validate checks the ref is internally consistent.
func (r AssetRef) Validate() error {
	switch r.Kind {
	case RefRemote, RefLocal:
		if r.Location == "" {
			return fmt.Errorf("%w: %s asset ref has no location", ErrInvalidInput, r.Kind)
		}
	case RefBuffer:
		if len(r.Data) == 0 {
			return fmt.Errorf("%w: buffer asset ref is empty", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown asset ref kind %q", ErrInvalidInput, r.Kind)
	}
	return nil
}

// String returns a short description for logs and history records.
func (r AssetRef) String() string {
	switch r.Kind {
	case RefBuffer:
		return fmt.Sprintf("buffer(%d bytes)", len(r.Data))
	case "":
		return "none"
	default:
		return r.Location
	}
}

// AssetSummary describes the structure of one parsed asset.
type AssetSummary struct {
	Container   string             `json:"container"`
	Chunks      []ChunkSummary     `json:"chunks,omitempty"`
	Generator   string             `json:"generator,omitempty"`
	Version     string             `json:"version"`
	ByteLength  int                `json:"byte_length"`
	Nodes       int                `json:"nodes"`
	Meshes      int                `json:"meshes"`
	Skins       int                `json:"skins"`
	Accessors   int                `json:"accessors"`
	BufferViews int                `json:"buffer_views"`
	Buffers     int                `json:"buffers"`
	Joints      []string           `json:"joints,omitempty"`
	Animations  []AnimationSummary `json:"animations,omitempty"`
}

// ChunkSummary describes one chunk of a binary container.
type ChunkSummary struct {
	Type   string `json:"type"`
	Length int    `json:"length"`
}

// AnimationSummary describes one animation clip within an asset.
type AnimationSummary struct {
	Name     string `json:"name"`
	Channels int    `json:"channels"`
	Samplers int    `json:"samplers"`
}
