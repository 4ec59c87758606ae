package driven

import (
	"context"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
)

// Exporter writes parcel records to a geographic markup file.
type Exporter interface {
	// Export writes the parcels to path with the given style and returns
	// the absolute path of the written file.
	Export(ctx context.Context, parcels []domain.Parcel, style domain.ExportStyle, path string) (string, error)
}
