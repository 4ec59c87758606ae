package tui

import (
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Lookup parses references and queries the cadastre services.
	Lookup driving.LookupService

	// Export writes picked parcels to KML files.
	Export driving.ExportService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Lookup == nil {
		return ErrMissingLookupService
	}
	if p.Export == nil {
		return ErrMissingExportService
	}
	return nil
}
