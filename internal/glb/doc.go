// Package glb reads and writes glTF 2.0 binary containers.
//
// A GLB file is a 12-byte header (magic, version, total length) followed
// by chunks. Each chunk is an 8-byte header (length, type) and a payload.
// The first chunk holds the glTF JSON; an optional second chunk holds the
// binary payload of buffer 0. All integers are little-endian.
//
// Read decodes GLB (or plain glTF JSON) into a scene.Document and checks
// its references. Write emits a single-buffer GLB and never mutates its
// input.
package glb
