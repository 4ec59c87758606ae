package driving

import (
	"context"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
)

// LookupOptions configures a parcel lookup.
type LookupOptions struct {
	// Jurisdictions selects which cadastre services to query.
	// Empty means all supported jurisdictions.
	Jurisdictions []domain.Jurisdiction
}

// LookupService turns raw user text into parcel records.
type LookupService interface {
	// Lookup splits, parses and queries the enabled jurisdictions.
	// Entry-level parse failures and per-jurisdiction service failures
	// are reported inside the result; only wiring problems (no
	// connectors, empty input) surface as an error.
	Lookup(ctx context.Context, raw string, opts LookupOptions) (*domain.LookupResult, error)

	// ParseOnly runs the parsing layer without any service calls.
	// Results preserve input entry order.
	ParseOnly(raw string, jurisdiction domain.Jurisdiction) ([]domain.ParseResult, error)
}
