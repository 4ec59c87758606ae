package driving

import (
	"context"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
)

// ExportRequest describes a styled KML export.
type ExportRequest struct {
	// Parcels are the records to write.
	Parcels []domain.Parcel

	// Dir is the output directory. Empty uses the configured default.
	Dir string

	// Filename is the output file name. Empty uses "parcels.kml".
	Filename string

	// Preset names a standard fill colour (subjects, quotes, sales,
	// for-sales). Ignored when ColourHex is set.
	Preset string

	// ColourHex is a custom #RRGGBB fill colour.
	ColourHex string

	// Opacity is the fill opacity 0-255. Negative uses the default.
	Opacity int

	// LineWidth is the border width in pixels. Zero uses the default.
	LineWidth float64
}

// ExportService writes parcel records to styled KML files.
type ExportService interface {
	// Export resolves the style and writes the file, returning its path.
	Export(ctx context.Context, req ExportRequest) (string, error)
}
