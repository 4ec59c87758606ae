// Package qld queries the Queensland Land Parcel Property Framework layer.
package qld

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
	// LayerURL is the public QLD land parcel layer query endpoint.
	LayerURL = "https://spatial-gis.information.qld.gov.au/arcgis/rest/services/PlanningCadastre/LandParcelPropertyFramework/MapServer/4/query"

	// SourceName tags parcels with their originating layer.
	SourceName = "QLD_LPPF"

	// InChunk bounds lotplan IN-lists to avoid URL length limits.
	InChunk = 100

	// MaxRecords caps features per request.
	MaxRecords = 4000
)

var nameKeys = []string{"lotplan", "lot"}

// Connector queries QLD parcels by lotplan.
type Connector struct {
	client     *arcgis.Client
	endpoint   string
	maxRecords int
}

// New creates a QLD connector against the public layer.
func New(client *arcgis.Client) *Connector {
	return NewWithEndpoint(client, LayerURL)
}

// NewWithEndpoint creates a QLD connector against a custom endpoint.
func NewWithEndpoint(client *arcgis.Client, endpoint string) *Connector {
	return &Connector{
		client:     client,
		endpoint:   endpoint,
		maxRecords: MaxRecords,
	}
}

// Jurisdiction returns QLD.
func (c *Connector) Jurisdiction() domain.Jurisdiction {
	return domain.JurisdictionQLD
}

// Validate probes the layer with a no-match query.
func (c *Connector) Validate(ctx context.Context) error {
	_, err := c.client.QueryGeoJSON(ctx, c.endpoint, arcgis.NoMatchClause, 1)
	return err
}

// Query fetches parcels for the given identifiers using lotidstring
// IN-lists. Duplicates are removed preserving first-seen order.
func (c *Connector) Query(ctx context.Context, ids []domain.ParcelIdentifier) ([]domain.Parcel, error) {
	lotplans := make([]string, 0, len(ids))
	for _, id := range ids {
		if id.Jurisdiction != domain.JurisdictionQLD {
			return nil, fmt.Errorf("%w: identifier %q is not QLD", domain.ErrInvalidInput, id.Canonical())
		}
		lotplans = append(lotplans, id.LotIDString())
	}

	lotplans = arcgis.DedupeOrdered(lotplans)
	if len(lotplans) == 0 {
		return nil, nil
	}

	var parcels []domain.Parcel
	for _, where := range arcgis.InClauses("lotidstring", lotplans, InChunk) {
		fc, err := c.client.QueryGeoJSON(ctx, c.endpoint, where, c.maxRecords)
		if err != nil {
			return nil, err
		}
		for _, f := range fc.Features {
			parcels = append(parcels, arcgis.ParcelFromFeature(domain.JurisdictionQLD, SourceName, f, nameKeys))
		}
	}
	return parcels, nil
}
