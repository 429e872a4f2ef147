package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWire(t *testing.T) {
	dir := t.TempDir()

	svc, err := wire(dir)
	require.NoError(t, err)
	require.NotNil(t, svc.Model)
	require.NotNil(t, svc.Settings)
	require.NotNil(t, svc.Close)
	defer svc.Close()

	assert.Equal(t, filepath.Join(dir, "config.toml"), svc.Settings.ConfigPath())
	assert.DirExists(t, filepath.Join(dir, "output"))
	assert.FileExists(t, filepath.Join(dir, "data", "history.db"))
	assert.NotEmpty(t, svc.Model.Catalog())
}

func TestWire_HistoryDisabled(t *testing.T) {
	dir := t.TempDir()
	config := "[history]\nenabled = false\n\n[output]\ndir = \"" + filepath.ToSlash(filepath.Join(dir, "merged")) + "\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(config), 0600))

	svc, err := wire(dir)
	require.NoError(t, err)

	assert.Nil(t, svc.Close)
	assert.DirExists(t, filepath.Join(dir, "merged"))
	assert.NoDirExists(t, filepath.Join(dir, "data"))
}
