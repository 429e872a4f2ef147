// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - AssetProcessor: Reads, retargets and writes glTF assets
//   - AssetFetcher: Downloads remote assets
//   - AssetStore: Reads local assets and persists merged output
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - MergeHistoryStore: Records completed merges. Without it, history is empty.
package driven
