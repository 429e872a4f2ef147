// Package domain defines the core business entities for glbanim.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - AssetRef: Where an avatar or animation asset comes from
//   - AnimationCatalog: The selectable set of default animations
//   - JointNameNormalizer: Joint identity across independently authored rigs
//   - MergeReport: What a retarget-and-merge did, including unmatched joints
//   - MergeRecord: A persisted history entry for a completed merge
//
// The glTF scene graph itself lives in internal/scene, which wraps the
// third-party glTF schema types.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
