package glb

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/scene"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/scene/scenetest"
)

// assemble frames raw chunk payloads as a GLB file without padding.
func assemble(chunks ...[]byte) []byte {
	var body bytes.Buffer
	for i, c := range chunks {
		typ := ChunkJSON
		if i > 0 {
			typ = ChunkBIN
		}
		writeUint32s(&body, uint32(len(c)), typ)
		body.Write(c)
	}
	var out bytes.Buffer
	writeUint32s(&out, Magic, Version, uint32(headerSize+body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

const minimalJSON = `{"asset":{"version":"2.0"}}`

func TestWriteRead_RoundTrip(t *testing.T) {
	src := scene.New(scenetest.Avatar("mixamorig:Hips", "mixamorig:Spine"))

	data, err := Write(src)
	require.NoError(t, err)

	got, err := Read(data)
	require.NoError(t, err)

	assert.Equal(t, src.JointNames(), got.JointNames())
	assert.Equal(t, src.Counts(), got.Counts())
	require.Len(t, got.Buffers, 1)
	assert.Equal(t, src.Buffers[0].Data[:src.Buffers[0].ByteLength], got.Buffers[0].Data)
}

func TestWrite_ConsolidatesBuffers(t *testing.T) {
	doc := scenetest.Animation("Walk", "Hips")
	extra := scenetest.AddFloatBuffer(doc, []float32{1.5, -2, 3})
	other := scenetest.AddFloatBuffer(doc, []float32{7})
	src := scene.New(doc)
	require.Len(t, src.Buffers, 3)

	data, err := Write(src)
	require.NoError(t, err)

	got, err := Read(data)
	require.NoError(t, err)
	require.Len(t, got.Buffers, 1)
	for _, bv := range got.BufferViews {
		assert.Zero(t, bv.Buffer)
		assert.Zero(t, bv.ByteOffset%4, "buffer view should start aligned")
	}
	assert.Equal(t, []float32{1.5, -2, 3}, scenetest.Floats(got.Document, extra))
	assert.Equal(t, []float32{7}, scenetest.Floats(got.Document, other))
	assert.Equal(t, []float32{0, 0.5, 1}, scenetest.Floats(got.Document, 0))
}

func TestWrite_DoesNotMutateInput(t *testing.T) {
	doc := scenetest.Animation("Walk", "Hips")
	scenetest.AddFloatBuffer(doc, []float32{1, 2})
	src := scene.New(doc)
	before := *src.BufferViews[len(src.BufferViews)-1]

	_, err := Write(src)
	require.NoError(t, err)

	assert.Len(t, src.Buffers, 2)
	assert.Equal(t, before, *src.BufferViews[len(src.BufferViews)-1])
}

func TestWrite_Deterministic(t *testing.T) {
	src := scene.New(scenetest.Avatar("Hips", "Spine", "Head"))

	a, err := Write(src)
	require.NoError(t, err)
	b, err := Write(src)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestWrite_Padding(t *testing.T) {
	doc := scenetest.Avatar("Hips")
	doc.Buffers[0].Data = append(doc.Buffers[0].Data[:doc.Buffers[0].ByteLength:doc.Buffers[0].ByteLength], 9)
	doc.Buffers[0].ByteLength++

	data, err := Write(scene.New(doc))
	require.NoError(t, err)
	assert.Zero(t, len(data)%4)

	h, err := Peek(data)
	require.NoError(t, err)
	require.Len(t, h.Chunks, 2)

	jsonChunk := h.payload(data, 0)
	assert.Zero(t, len(jsonChunk)%4)
	assert.NotEqual(t, byte(0), jsonChunk[len(jsonChunk)-1])

	binChunk := h.payload(data, 1)
	assert.Zero(t, len(binChunk)%4)
	assert.Equal(t, []byte{9, 0, 0, 0}, binChunk[len(binChunk)-4:])
}

func TestWrite_NoBuffers(t *testing.T) {
	data, err := Write(scene.New(nil))
	require.NoError(t, err)

	h, err := Peek(data)
	require.NoError(t, err)
	assert.Len(t, h.Chunks, 1)
}

func TestWrite_EmptyAnimationArrays(t *testing.T) {
	doc := scenetest.Avatar("Hips")
	doc.Animations = []*gltf.Animation{{Name: "idle"}}
	d := scene.New(doc)

	data, err := Write(d)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"channels":[]`)
	assert.Contains(t, string(data), `"samplers":[]`)
	assert.Nil(t, doc.Animations[0].Channels)

	merged, err := Read(data)
	require.NoError(t, err)
	require.Len(t, merged.Animations, 1)
	assert.Empty(t, merged.Animations[0].Channels)
}

func TestWrite_NilDocument(t *testing.T) {
	_, err := Write(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRead_QmuntalInterop(t *testing.T) {
	src := scenetest.Animation("Walk", "Hips", "Spine")

	var buf bytes.Buffer
	enc := gltf.NewEncoder(&buf)
	enc.AsBinary = true
	require.NoError(t, enc.Encode(src))

	got, err := Read(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "Walk", got.Animations[0].Name)

	out, err := Write(got)
	require.NoError(t, err)

	var back gltf.Document
	require.NoError(t, gltf.NewDecoder(bytes.NewReader(out)).Decode(&back))
	assert.Len(t, back.Animations[0].Channels, 2)
}

func TestRead_PlainJSONWithDataURI(t *testing.T) {
	doc := `{
		"asset": {"version": "2.0"},
		"buffers": [{"byteLength": 4, "uri": "data:application/octet-stream;base64,AAAAPw=="}],
		"bufferViews": [{"buffer": 0, "byteLength": 4}],
		"accessors": [{"bufferView": 0, "componentType": 5126, "count": 1, "type": "SCALAR"}]
	}`

	got, err := Read([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5}, scenetest.Floats(got.Document, 0))
}

func TestRead_ExternalBuffer(t *testing.T) {
	doc := []byte(`{"asset":{"version":"2.0"},"buffers":[{"byteLength":4,"uri":"anim.bin"}]}`)

	_, err := Read(doc)
	assert.ErrorIs(t, err, domain.ErrFormat)

	got, err := Read(doc, WithResolver(func(uri string) ([]byte, error) {
		assert.Equal(t, "anim.bin", uri)
		return []byte{1, 2, 3, 4, 5}, nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, got.Buffers[0].Data)

	boom := errors.New("boom")
	_, err = Read(doc, WithResolver(func(string) ([]byte, error) { return nil, boom }))
	assert.ErrorIs(t, err, domain.ErrFormat)
	assert.ErrorIs(t, err, boom)
}

func TestRead_FormatErrors(t *testing.T) {
	valid := assemble([]byte(minimalJSON))

	badMagic := append([]byte(nil), valid...)
	copy(badMagic, "gLTF")

	badVersion := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(badVersion[4:], 1)

	longer := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(longer[8:], uint32(len(valid)+4))

	truncatedHeader := append(append([]byte(nil), valid...), 1, 2, 3, 4)
	binary.LittleEndian.PutUint32(truncatedHeader[8:], uint32(len(truncatedHeader)))

	overrun := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(overrun[12:], uint32(len(minimalJSON)+8))

	binFirst := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(binFirst[16:], ChunkBIN)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short", valid[:8]},
		{"bad magic", badMagic},
		{"bad version", badVersion},
		{"length mismatch", longer},
		{"truncated chunk header", truncatedHeader},
		{"chunk overruns file", overrun},
		{"first chunk not JSON", binFirst},
		{"malformed JSON", assemble([]byte(`{"asset":`))},
		{"asset version 1", assemble([]byte(`{"asset":{"version":"1.0"}}`))},
		{"buffer without BIN", assemble([]byte(`{"asset":{"version":"2.0"},"buffers":[{"byteLength":4}]}`))},
		{"BIN shorter than buffer", assemble(
			[]byte(`{"asset":{"version":"2.0"},"buffers":[{"byteLength":8}]}`),
			[]byte{1, 2, 3, 4},
		)},
		{"bad data URI", []byte(`{"asset":{"version":"2.0"},"buffers":[{"byteLength":1,"uri":"data:,x"}]}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(tt.data)
			assert.ErrorIs(t, err, domain.ErrFormat)
		})
	}
}

func TestRead_DanglingReference(t *testing.T) {
	data := assemble([]byte(`{"asset":{"version":"2.0"},"nodes":[{"children":[3]}]}`))

	_, err := Read(data)
	assert.ErrorIs(t, err, domain.ErrIntegrity)
}

func TestRead_ChannelWithoutSampler(t *testing.T) {
	data := assemble([]byte(`{"asset":{"version":"2.0"},"nodes":[{"name":"Hips"}],` +
		`"animations":[{"channels":[{"target":{"node":0,"path":"rotation"}}],"samplers":[]}]}`))

	_, err := Read(data)
	assert.ErrorIs(t, err, domain.ErrIntegrity)
}

func TestPeek(t *testing.T) {
	data, err := Write(scene.New(scenetest.Avatar("Hips")))
	require.NoError(t, err)

	h, err := Peek(data)
	require.NoError(t, err)
	assert.Equal(t, Magic, h.Magic)
	assert.Equal(t, Version, h.Version)
	assert.Equal(t, uint32(len(data)), h.Length)
	require.Len(t, h.Chunks, 2)
	assert.Equal(t, "JSON", h.Chunks[0].TypeName())
	assert.Equal(t, "BIN", h.Chunks[1].TypeName())
	assert.Equal(t, "0x00000001", Chunk{Type: 1}.TypeName())
}
