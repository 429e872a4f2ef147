package glb

import (
	"encoding/binary"
	"fmt"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
)

const (
	// Magic is "glTF" read as a little-endian uint32.
	Magic uint32 = 0x46546C67
	// Version is the only supported container version.
	Version uint32 = 2

	// ChunkJSON tags the structured-content chunk.
	ChunkJSON uint32 = 0x4E4F534A
	// ChunkBIN tags the binary payload chunk.
	ChunkBIN uint32 = 0x004E4942

	headerSize      = 12
	chunkHeaderSize = 8
)

// Chunk locates one chunk's payload inside a GLB file.
type Chunk struct {
	Type   uint32
	Offset int
	Length uint32
}

// TypeName returns "JSON", "BIN" or the hex tag.
func (c Chunk) TypeName() string {
	switch c.Type {
	case ChunkJSON:
		return "JSON"
	case ChunkBIN:
		return "BIN"
	default:
		return fmt.Sprintf("0x%08X", c.Type)
	}
}

// Header is the container header and chunk table of a GLB file.
type Header struct {
	Magic   uint32
	Version uint32
	Length  uint32
	Chunks  []Chunk
}

// Peek parses the container header and chunk table without decoding any
// chunk payload.
func Peek(data []byte) (Header, error) {
	var h Header
	if len(data) < headerSize {
		return h, fmt.Errorf("%w: %d bytes is shorter than the GLB header", domain.ErrFormat, len(data))
	}
	h.Magic = binary.LittleEndian.Uint32(data[0:4])
	h.Version = binary.LittleEndian.Uint32(data[4:8])
	h.Length = binary.LittleEndian.Uint32(data[8:12])

	if h.Magic != Magic {
		return h, fmt.Errorf("%w: bad magic 0x%08X", domain.ErrFormat, h.Magic)
	}
	if h.Version != Version {
		return h, fmt.Errorf("%w: unsupported container version %d", domain.ErrFormat, h.Version)
	}
	if uint64(h.Length) != uint64(len(data)) {
		return h, fmt.Errorf("%w: header declares %d bytes, have %d", domain.ErrFormat, h.Length, len(data))
	}

	off := headerSize
	for off < len(data) {
		if len(data)-off < chunkHeaderSize {
			return h, fmt.Errorf("%w: truncated chunk header at offset %d", domain.ErrFormat, off)
		}
		c := Chunk{
			Length: binary.LittleEndian.Uint32(data[off : off+4]),
			Type:   binary.LittleEndian.Uint32(data[off+4 : off+8]),
			Offset: off + chunkHeaderSize,
		}
		if uint64(c.Length) > uint64(len(data)-c.Offset) {
			return h, fmt.Errorf("%w: %s chunk of %d bytes at offset %d overruns the file",
				domain.ErrFormat, c.TypeName(), c.Length, off)
		}
		h.Chunks = append(h.Chunks, c)
		off = c.Offset + int(c.Length)
	}

	if len(h.Chunks) == 0 || h.Chunks[0].Type != ChunkJSON {
		return h, fmt.Errorf("%w: first chunk is not JSON", domain.ErrFormat)
	}
	return h, nil
}

func (h Header) payload(data []byte, i int) []byte {
	c := h.Chunks[i]
	return data[c.Offset : c.Offset+int(c.Length)]
}
