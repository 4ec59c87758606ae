package driven

import (
	"context"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
)

// CadastreConnector queries one jurisdiction's public cadastre service.
// Each jurisdiction (NSW, QLD, SA) implements this interface.
type CadastreConnector interface {
	// Jurisdiction returns the jurisdiction this connector serves.
	Jurisdiction() domain.Jurisdiction

	// Validate checks the service is reachable with a lightweight query.
	// Returns nil if ready, an error describing the problem otherwise.
	Validate(ctx context.Context) error

	// Query fetches parcel records for the given identifiers. All
	// identifiers must be tagged for this connector's jurisdiction.
	// An empty identifier list returns no parcels without a service call.
	Query(ctx context.Context, ids []domain.ParcelIdentifier) ([]domain.Parcel, error)
}
