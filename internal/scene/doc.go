// Package scene is the in-memory glTF document model.
//
// A Document wraps the glTF 2.0 schema types from github.com/qmuntal/gltf.
// Sub-resources live in ordered arenas (nodes, skins, accessors, buffer
// views, buffers, animations) and refer to each other by index. Validate
// checks that every such index resolves inside its arena.
//
// A Document is owned by a single call: it is created by the glb codec,
// mutated append-only by the retargeter, serialised, then dropped. It is
// not safe for concurrent use.
package scene
