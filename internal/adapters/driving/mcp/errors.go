// Package mcp provides an MCP (Model Context Protocol) server adapter for glbanim.
// It lets AI assistants animate avatars and inspect glTF assets.
package mcp

import "errors"

// ErrMissingModelService is returned when the model service is not provided.
var ErrMissingModelService = errors.New("mcp: model service is required")
