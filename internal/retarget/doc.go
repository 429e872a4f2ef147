// Package retarget binds the animations of one glTF document to the
// skeleton of another.
//
// Retargeting matches source channel targets to the avatar's first skin
// by normalised joint name, then appends the source animation data
// (accessors, buffer views and buffers) to the avatar with every index
// rebased past the avatar's existing arenas. Channels whose joint has no
// counterpart are dropped and reported.
package retarget
