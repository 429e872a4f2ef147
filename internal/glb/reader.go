package glb

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/qmuntal/gltf"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/scene"
)

// Resolver loads the bytes behind an external buffer URI.
type Resolver func(uri string) ([]byte, error)

// ReadOption configures Read.
type ReadOption func(*readOptions)

type readOptions struct {
	resolver Resolver
}

// WithResolver lets Read load buffers stored outside the file.
// Without a resolver such buffers are a format error.
func WithResolver(r Resolver) ReadOption {
	return func(o *readOptions) {
		o.resolver = r
	}
}

// Read decodes a GLB container, or a plain glTF JSON document, and
// validates its references.
func Read(data []byte, opts ...ReadOption) (*scene.Document, error) {
	var o readOptions
	for _, opt := range opts {
		opt(&o)
	}

	var content, bin []byte
	if isJSON(data) {
		content = data
	} else {
		h, err := Peek(data)
		if err != nil {
			return nil, err
		}
		content = h.payload(data, 0)
		if len(h.Chunks) > 1 && h.Chunks[1].Type == ChunkBIN {
			bin = h.payload(data, 1)
		}
	}

	doc := new(gltf.Document)
	if err := json.Unmarshal(content, doc); err != nil {
		return nil, fmt.Errorf("%w: parse JSON chunk: %w", domain.ErrFormat, err)
	}
	if v := doc.Asset.Version; v != "2" && !strings.HasPrefix(v, "2.") {
		return nil, fmt.Errorf("%w: unsupported asset version %q", domain.ErrFormat, v)
	}
	if err := loadBuffers(doc, bin, o.resolver); err != nil {
		return nil, err
	}

	d := scene.New(doc)
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func isJSON(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func loadBuffers(doc *gltf.Document, bin []byte, resolve Resolver) error {
	for i, b := range doc.Buffers {
		if b == nil {
			return fmt.Errorf("%w: buffer %d is null", domain.ErrFormat, i)
		}

		var data []byte
		switch {
		case b.URI == "":
			if i != 0 || bin == nil {
				return fmt.Errorf("%w: buffer %d has no URI and no BIN chunk", domain.ErrFormat, i)
			}
			data = bin
		case strings.HasPrefix(b.URI, "data:"):
			decoded, err := decodeDataURI(b.URI)
			if err != nil {
				return fmt.Errorf("%w: buffer %d: %w", domain.ErrFormat, i, err)
			}
			data = decoded
		case resolve == nil:
			return fmt.Errorf("%w: buffer %d: external URI %q is not supported", domain.ErrFormat, i, b.URI)
		default:
			loaded, err := resolve(b.URI)
			if err != nil {
				return fmt.Errorf("%w: buffer %d: load %q: %w", domain.ErrFormat, i, b.URI, err)
			}
			data = loaded
		}

		if uint64(len(data)) < uint64(b.ByteLength) {
			return fmt.Errorf("%w: buffer %d holds %d bytes, declares %d", domain.ErrFormat, i, len(data), b.ByteLength)
		}
		b.Data = append([]byte(nil), data[:b.ByteLength]...)
	}
	return nil
}

// decodeDataURI decodes data:[<mediatype>][;base64],<data>.
func decodeDataURI(uri string) ([]byte, error) {
	comma := strings.IndexByte(uri, ',')
	if comma < 0 {
		return nil, fmt.Errorf("data URI has no payload")
	}
	if !strings.HasSuffix(uri[len("data:"):comma], ";base64") {
		return nil, fmt.Errorf("data URI is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(uri[comma+1:])
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return data, nil
}
