package driven

import "context"

// AssetStore reads assets from, and writes merged assets to, local storage.
type AssetStore interface {
	// Read returns the bytes stored at path.
	// Returns domain.ErrNotFound if nothing exists there.
	Read(ctx context.Context, path string) ([]byte, error)

	// Write stores data under name and returns the path it was written to.
	Write(ctx context.Context, name string, data []byte) (string, error)
}
