package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/ports/driven"
)

// Ensure AssetStore implements the interface.
var _ driven.AssetStore = (*AssetStore)(nil)

// AssetStore reads assets from disk and writes merged assets to a directory.
type AssetStore struct {
	dir string
}

// NewAssetStore creates an asset store writing to dir.
// If dir is empty, defaults to ~/.glbanim/output.
func NewAssetStore(dir string) (*AssetStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".glbanim", "output")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &AssetStore{dir: dir}, nil
}

// Dir returns the output directory.
func (s *AssetStore) Dir() string {
	return s.dir
}

// Read returns the contents of the file at path.
func (s *AssetStore) Read(_ context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("asset %s: %w", path, domain.ErrNotFound)
	case err != nil:
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrTransport, path, err)
	}
	return data, nil
}

// Write stores data as name inside the output directory and returns the full path.
// name must be a plain file name.
func (s *AssetStore) Write(_ context.Context, name string, data []byte) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: invalid asset name %q", domain.ErrInvalidInput, name)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return path, nil
}
