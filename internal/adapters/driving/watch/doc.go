// Package watch animates avatars dropped into a directory.
//
// Every new or rewritten *.glb in the watched directory is merged with an
// animation and the result is written next to it as <name>.animated.glb.
// Events are handled one at a time, in arrival order.
package watch
