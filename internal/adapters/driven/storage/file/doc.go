// Package file provides a filesystem implementation of driven.AssetStore.
//
// Reads accept any path. Writes go to a single output directory, by
// default ~/.glbanim/output, and are atomic: data is written to a
// temporary file that is then renamed into place.
package file
