package domain

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Parcel is the uniform parcel record produced by a cadastre connector:
// geometry plus attribute data for one matched lot.
type Parcel struct {
	// Jurisdiction is the state that returned this parcel.
	Jurisdiction Jurisdiction

	// Source is the service layer name, e.g. "NSW_Cadastre".
	Source string

	// Name is the display label, derived from the service's lot
	// identifier fields (lotidstring, lotplan, or plan/parcel).
	Name string

	// Attributes holds the raw feature properties from the service.
	Attributes map[string]any

	// Geometry is the parcel boundary in WGS84 lon/lat.
	Geometry orb.Geometry
}

// Centroid returns the planar centroid of the parcel geometry.
// ok is false when the parcel has no usable geometry.
func (p Parcel) Centroid() (point orb.Point, ok bool) {
	if p.Geometry == nil {
		return orb.Point{}, false
	}
	centroid, area := planar.CentroidArea(p.Geometry)
	if area == 0 {
		return orb.Point{}, false
	}
	return centroid, true
}

// Attribute returns a string attribute value, or "" when absent.
func (p Parcel) Attribute(key string) string {
	v, ok := p.Attributes[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// LookupResult is the outcome of one bulk lookup across the enabled
// jurisdictions. Parcels preserve service response order per jurisdiction;
// Skipped preserves input entry order.
type LookupResult struct {
	// Parcels are the matched parcel records.
	Parcels []Parcel

	// Skipped lists entries that no enabled jurisdiction accepted.
	Skipped []*ParseError

	// ServiceErrors lists per-jurisdiction query failures. A failure in
	// one jurisdiction does not abort the others.
	ServiceErrors map[Jurisdiction]error
}
