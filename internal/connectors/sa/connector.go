// Package sa queries the South Australia ePlanning DAP parcels layer.
package sa

import (
	"context"
	"fmt"

	"github.com/mappingkml/mappingkml-cli/internal/connectors/arcgis"
	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.CadastreConnector = (*Connector)(nil)

const (
	// LayerURL is the public SA DAP parcels layer query endpoint.
	LayerURL = "https://lsa2.geohub.sa.gov.au/server/rest/services/ePlanning/DAP_Parcels/MapServer/1/query"

	// SourceName tags parcels with their originating layer.
	SourceName = "SA_DAP_Parcels"

	// PlanParcelChunk bounds plan/parcel OR-groups per request.
	PlanParcelChunk = 80

	// VolumeFolioChunk bounds volume/folio OR-groups per request.
	VolumeFolioChunk = 100

	// MaxRecords caps features per request.
	MaxRecords = 2000
)

var nameKeys = []string{"plan_t", "plan", "parcel"}

// Connector queries SA parcels by plan/parcel or volume/folio.
type Connector struct {
	client     *arcgis.Client
	endpoint   string
	maxRecords int
}

// New creates an SA connector against the public layer.
func New(client *arcgis.Client) *Connector {
	return NewWithEndpoint(client, LayerURL)
}

// NewWithEndpoint creates an SA connector against a custom endpoint.
func NewWithEndpoint(client *arcgis.Client, endpoint string) *Connector {
	return &Connector{
		client:     client,
		endpoint:   endpoint,
		maxRecords: MaxRecords,
	}
}

// Jurisdiction returns SA.
func (c *Connector) Jurisdiction() domain.Jurisdiction {
	return domain.JurisdictionSA
}

// Validate probes the layer with a no-match query.
func (c *Connector) Validate(ctx context.Context) error {
	_, err := c.client.QueryGeoJSON(ctx, c.endpoint, arcgis.NoMatchClause, 1)
	return err
}

// Query fetches parcels for the given identifiers. Plan/parcel and
// volume/folio identifiers build separate OR-group clauses; both branches
// may contribute to one batch.
func (c *Connector) Query(ctx context.Context, ids []domain.ParcelIdentifier) ([]domain.Parcel, error) {
	var planParcelTerms, volumeFolioTerms []string

	for _, id := range ids {
		if id.Jurisdiction != domain.JurisdictionSA {
			return nil, fmt.Errorf("%w: identifier %q is not SA", domain.ErrInvalidInput, id.Canonical())
		}
		if id.IsVolumeFolio() {
			volumeFolioTerms = append(volumeFolioTerms, fmt.Sprintf(
				"(volume='%s' AND folio='%s')",
				arcgis.EscapeValue(id.Volume), arcgis.EscapeValue(id.Folio)))
			continue
		}
		planParcelTerms = append(planParcelTerms, fmt.Sprintf(
			"(UPPER(plan)=UPPER('%s') AND UPPER(parcel)=UPPER('%s'))",
			arcgis.EscapeValue(id.Plan), arcgis.EscapeValue(id.Lot)))
	}

	var clauses []string
	clauses = append(clauses, arcgis.OrClauses(arcgis.DedupeOrdered(planParcelTerms), PlanParcelChunk)...)
	clauses = append(clauses, arcgis.OrClauses(arcgis.DedupeOrdered(volumeFolioTerms), VolumeFolioChunk)...)
	if len(clauses) == 0 {
		return nil, nil
	}

	var parcels []domain.Parcel
	for _, where := range clauses {
		fc, err := c.client.QueryGeoJSON(ctx, c.endpoint, where, c.maxRecords)
		if err != nil {
			return nil, err
		}
		for _, f := range fc.Features {
			parcels = append(parcels, arcgis.ParcelFromFeature(domain.JurisdictionSA, SourceName, f, nameKeys))
		}
	}
	return parcels, nil
}
