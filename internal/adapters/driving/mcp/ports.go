package mcp

import (
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Model merges and inspects assets.
	Model driving.ModelService

	// Settings exposes configuration. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Model == nil {
		return ErrMissingModelService
	}
	return nil
}
