package mcp

import (
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Lookup parses references and queries the cadastre services.
	Lookup driving.LookupService

	// Export writes parcels to KML files.
	Export driving.ExportService

	// History provides recent search records.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Lookup == nil {
		return ErrMissingLookupService
	}
	// Export and History are optional
	return nil
}
