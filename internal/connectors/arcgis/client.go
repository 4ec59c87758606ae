// Package arcgis is the shared client for ArcGIS REST map service layers.
package arcgis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/paulmach/orb/geojson"
	"golang.org/x/time/rate"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
	"github.com/mappingkml/mappingkml-cli/internal/logger"
)

const (
	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// RequestRate throttles requests per second against the public
	// services. The tool is single-user; this just keeps chunked bulk
	// queries polite.
	RequestRate = 4
)

// Client queries ArcGIS layer endpoints and decodes GeoJSON responses.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
}

// NewClient creates a client with the default timeout and throttle.
func NewClient() *Client {
	return &Client{
		http: resty.New().
			SetTimeout(DefaultTimeout).
			SetHeader("Accept", "application/json"),
		limiter: rate.NewLimiter(rate.Limit(RequestRate), 1),
	}
}

// QueryGeoJSON runs one layer query and returns the decoded features.
// ArcGIS reports its own failures in-band with HTTP 200; those surface as
// domain.ErrServiceFault.
func (c *Client) QueryGeoJSON(ctx context.Context, endpoint, where string, maxRecords int) (*geojson.FeatureCollection, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	logger.Debug("ArcGIS query %s where=%q", endpoint, where)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"f":                 "geojson",
			"where":             where,
			"outFields":         "*",
			"returnGeometry":    "true",
			"resultRecordCount": strconv.Itoa(maxRecords),
		}).
		Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: HTTP %d", domain.ErrServiceUnavailable, resp.StatusCode())
	}

	body := resp.Body()
	if err := decodeServiceFault(body); err != nil {
		return nil, err
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, fmt.Errorf("decoding feature collection: %w", err)
	}

	logger.Debug("ArcGIS query returned %d features", len(fc.Features))
	return fc, nil
}

// serviceFault is the in-band error envelope ArcGIS returns with HTTP 200.
type serviceFault struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeServiceFault(body []byte) error {
	var fault serviceFault
	if err := json.Unmarshal(body, &fault); err != nil {
		// Not a JSON object; let the GeoJSON decoder report it.
		return nil
	}
	if fault.Error == nil {
		return nil
	}
	return fmt.Errorf("%w: %d %s", domain.ErrServiceFault, fault.Error.Code, fault.Error.Message)
}
