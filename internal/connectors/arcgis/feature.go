package arcgis

import (
	"github.com/paulmach/orb/geojson"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
)

// ParcelFromFeature maps one GeoJSON feature into a uniform parcel record.
// The display name is taken from the first nameKey present in the feature
// properties; "parcel" is the fallback when none are set.
func ParcelFromFeature(j domain.Jurisdiction, source string, f *geojson.Feature, nameKeys []string) domain.Parcel {
	attrs := make(map[string]any, len(f.Properties)+2)
	for k, v := range f.Properties {
		attrs[k] = v
	}
	attrs["source"] = source
	attrs["state"] = j.String()

	name := "parcel"
	for _, key := range nameKeys {
		if v, ok := f.Properties[key].(string); ok && v != "" {
			name = v
			break
		}
	}

	return domain.Parcel{
		Jurisdiction: j,
		Source:       source,
		Name:         name,
		Attributes:   attrs,
		Geometry:     f.Geometry,
	}
}
