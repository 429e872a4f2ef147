package glb

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"

	"github.com/qmuntal/gltf"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/scene"
)

// Write serialises d as a GLB container with a single BIN buffer.
//
// Every buffer of d is copied into one payload, each starting on a
// 4-byte boundary, and the emitted buffer views are rebased into it.
// d itself is left untouched. Output is deterministic for a given d.
func Write(d *scene.Document) ([]byte, error) {
	if d == nil || d.Document == nil {
		return nil, fmt.Errorf("%w: nil document", domain.ErrInvalidInput)
	}

	bin, starts, err := packBuffers(d.Buffers)
	if err != nil {
		return nil, err
	}

	out := *d.Document
	out.Buffers = nil
	if len(d.Buffers) > 0 {
		out.Buffers = []*gltf.Buffer{{ByteLength: uint32(len(bin))}}
	}
	out.BufferViews = make([]*gltf.BufferView, len(d.BufferViews))
	for i, bv := range d.BufferViews {
		if bv == nil {
			continue
		}
		if int(bv.Buffer) >= len(starts) {
			return nil, fmt.Errorf("%w: buffer view %d references buffer %d of %d",
				domain.ErrIntegrity, i, bv.Buffer, len(starts))
		}
		view := *bv
		view.Buffer = 0
		view.ByteOffset += starts[bv.Buffer]
		out.BufferViews[i] = &view
	}
	out.Animations = emptyArrays(d.Animations)

	content, err := json.Marshal(&out)
	if err != nil {
		return nil, fmt.Errorf("encode JSON chunk: %w", err)
	}
	content = pad(content, ' ')

	total := headerSize + chunkHeaderSize + len(content)
	if out.Buffers != nil {
		bin = pad(bin, 0)
		total += chunkHeaderSize + len(bin)
	}
	if uint64(total) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes exceeds the GLB size limit", domain.ErrFormat, total)
	}

	var buf bytes.Buffer
	buf.Grow(total)
	writeUint32s(&buf, Magic, Version, uint32(total))
	writeUint32s(&buf, uint32(len(content)), ChunkJSON)
	buf.Write(content)
	if out.Buffers != nil {
		writeUint32s(&buf, uint32(len(bin)), ChunkBIN)
		buf.Write(bin)
	}
	return buf.Bytes(), nil
}

// emptyArrays returns animations with nil channel and sampler lists
// replaced by empty ones. Both are required arrays in glTF JSON.
func emptyArrays(animations []*gltf.Animation) []*gltf.Animation {
	if animations == nil {
		return nil
	}
	out := make([]*gltf.Animation, len(animations))
	for i, a := range animations {
		if a == nil || (a.Channels != nil && a.Samplers != nil) {
			out[i] = a
			continue
		}
		anim := *a
		if anim.Channels == nil {
			anim.Channels = []*gltf.Channel{}
		}
		if anim.Samplers == nil {
			anim.Samplers = []*gltf.AnimationSampler{}
		}
		out[i] = &anim
	}
	return out
}

// packBuffers concatenates buffer payloads, 4-byte aligned, and returns
// the start offset of each.
func packBuffers(buffers []*gltf.Buffer) ([]byte, []uint32, error) {
	var bin []byte
	starts := make([]uint32, len(buffers))
	for i, b := range buffers {
		bin = pad(bin, 0)
		if uint64(len(bin)) > math.MaxUint32 {
			return nil, nil, fmt.Errorf("%w: buffers exceed the GLB size limit", domain.ErrFormat)
		}
		starts[i] = uint32(len(bin))
		if b == nil {
			continue
		}
		data := b.Data
		if b.ByteLength > 0 && uint64(len(data)) < uint64(b.ByteLength) {
			return nil, nil, fmt.Errorf("%w: buffer %d holds %d bytes, declares %d",
				domain.ErrFormat, i, len(data), b.ByteLength)
		}
		if b.ByteLength > 0 {
			data = data[:b.ByteLength]
		}
		bin = append(bin, data...)
	}
	return bin, starts, nil
}

func pad(b []byte, fill byte) []byte {
	for len(b)%4 != 0 {
		b = append(b, fill)
	}
	return b
}

func writeUint32s(buf *bytes.Buffer, vs ...uint32) {
	var word [4]byte
	for _, v := range vs {
		binary.LittleEndian.PutUint32(word[:], v)
		buf.Write(word[:])
	}
}
