// Package nsw queries the NSW Spatial Services cadastre layer.
package nsw

import (
	"context"
	"fmt"
	"sort"

	"github.com/mappingkml/mappingkml-cli/internal/connectors/arcgis"
	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.CadastreConnector = (*Connector)(nil)

const (
	// LayerURL is the public NSW cadastre lot layer query endpoint.
	LayerURL = "https://maps.six.nsw.gov.au/arcgis/rest/services/public/NSW_Cadastre/MapServer/9/query"

	// SourceName tags parcels with their originating layer.
	SourceName = "NSW_Cadastre"

	// InChunk bounds lotidstring IN-lists to avoid URL length limits.
	InChunk = 150

	// MaxRecords caps features per request.
	MaxRecords = 2000
)

// nameKeys are the feature properties used for parcel display names.
var nameKeys = []string{"lotidstring", "planlabel"}

// Connector queries NSW parcels by lotidstring.
type Connector struct {
	client     *arcgis.Client
	endpoint   string
	maxRecords int
}

// New creates an NSW connector against the public layer.
func New(client *arcgis.Client) *Connector {
	return NewWithEndpoint(client, LayerURL)
}

// NewWithEndpoint creates an NSW connector against a custom endpoint.
func NewWithEndpoint(client *arcgis.Client, endpoint string) *Connector {
	return &Connector{
		client:     client,
		endpoint:   endpoint,
		maxRecords: MaxRecords,
	}
}

// Jurisdiction returns NSW.
func (c *Connector) Jurisdiction() domain.Jurisdiction {
	return domain.JurisdictionNSW
}

// Validate probes the layer with a no-match query.
func (c *Connector) Validate(ctx context.Context) error {
	_, err := c.client.QueryGeoJSON(ctx, c.endpoint, arcgis.NoMatchClause, 1)
	return err
}

// Query fetches parcels for the given identifiers using lotidstring
// IN-lists. Identifiers are deduplicated and sorted for stable requests.
func (c *Connector) Query(ctx context.Context, ids []domain.ParcelIdentifier) ([]domain.Parcel, error) {
	lotids := make([]string, 0, len(ids))
	for _, id := range ids {
		if id.Jurisdiction != domain.JurisdictionNSW {
			return nil, fmt.Errorf("%w: identifier %q is not NSW", domain.ErrInvalidInput, id.Canonical())
		}
		lotids = append(lotids, id.LotIDString())
	}

	lotids = arcgis.DedupeOrdered(lotids)
	sort.Strings(lotids)
	if len(lotids) == 0 {
		return nil, nil
	}

	var parcels []domain.Parcel
	for _, where := range arcgis.InClauses("lotidstring", lotids, InChunk) {
		fc, err := c.client.QueryGeoJSON(ctx, c.endpoint, where, c.maxRecords)
		if err != nil {
			return nil, err
		}
		for _, f := range fc.Features {
			parcels = append(parcels, arcgis.ParcelFromFeature(domain.JurisdictionNSW, SourceName, f, nameKeys))
		}
	}
	return parcels, nil
}
