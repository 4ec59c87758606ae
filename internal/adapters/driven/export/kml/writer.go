// Package kml writes parcel geometry to KML files for Google Earth and
// similar viewers. Polygon styling (fill colour, opacity, border) comes
// from the export style; attributes are rendered into the placemark
// description as an HTML table.
package kml

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/paulmach/orb"
	kml "github.com/twpayne/go-kml/v2"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driven"
	"github.com/mappingkml/mappingkml-cli/internal/logger"
)

// Ensure Exporter implements the interface.
var _ driven.Exporter = (*Exporter)(nil)

// parcelStyleID is the shared style referenced by every placemark.
const parcelStyleID = "parcel"

// Exporter writes parcels to a KML file on the local filesystem.
type Exporter struct{}

// NewExporter creates a KML exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes the parcels to path, creating parent directories as
// needed, and returns the written file's path.
func (e *Exporter) Export(ctx context.Context, parcels []domain.Parcel, style domain.ExportStyle, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(parcels) == 0 {
		return "", domain.ErrNothingToExport
	}

	doc, err := buildDocument(parcels, style)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating export directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating KML file: %w", err)
	}
	defer f.Close()

	if err := e.write(f, doc); err != nil {
		return "", fmt.Errorf("writing KML: %w", err)
	}

	logger.Debug("Wrote %d placemarks to %s", len(parcels), path)
	return path, nil
}

// write serialises the document to w.
func (e *Exporter) write(w io.Writer, doc kml.Element) error {
	return doc.WriteIndent(w, "", "  ")
}

// buildDocument assembles the KML tree: one shared style plus one
// placemark per parcel.
func buildDocument(parcels []domain.Parcel, style domain.ExportStyle) (kml.Element, error) {
	fill, err := style.FillColour()
	if err != nil {
		return nil, err
	}

	children := []kml.Element{
		kml.Name("Parcels"),
		kml.SharedStyle(parcelStyleID,
			kml.LineStyle(
				kml.Color(style.LineColour()),
				kml.Width(style.LineWidth),
			),
			kml.PolyStyle(
				kml.Color(fill),
			),
		),
	}

	for _, p := range parcels {
		placemark, ok := buildPlacemark(p)
		if !ok {
			logger.Warn("Skipping parcel %q: unsupported geometry %T", p.Name, p.Geometry)
			continue
		}
		children = append(children, placemark)
	}

	return kml.KML(kml.Document(children...)), nil
}

// buildPlacemark converts one parcel. Returns false for geometry types
// that cannot be drawn as parcel boundaries.
func buildPlacemark(p domain.Parcel) (kml.Element, bool) {
	geom, ok := buildGeometry(p.Geometry)
	if !ok {
		return nil, false
	}

	return kml.Placemark(
		kml.Name(p.Name),
		kml.Description(describeParcel(p)),
		kml.StyleURL("#"+parcelStyleID),
		geom,
	), true
}

// buildGeometry maps orb geometry onto KML elements.
func buildGeometry(g orb.Geometry) (kml.Element, bool) {
	switch geom := g.(type) {
	case orb.Polygon:
		return buildPolygon(geom), true
	case orb.MultiPolygon:
		elements := make([]kml.Element, 0, len(geom))
		for _, poly := range geom {
			elements = append(elements, buildPolygon(poly))
		}
		return kml.MultiGeometry(elements...), true
	default:
		return nil, false
	}
}

// buildPolygon converts an orb polygon; ring zero is the outer
// boundary, the rest are holes.
func buildPolygon(poly orb.Polygon) kml.Element {
	if len(poly) == 0 {
		return kml.Polygon()
	}

	children := []kml.Element{
		kml.OuterBoundaryIs(kml.LinearRing(kml.Coordinates(ringCoordinates(poly[0])...))),
	}
	for _, ring := range poly[1:] {
		children = append(children, kml.InnerBoundaryIs(kml.LinearRing(kml.Coordinates(ringCoordinates(ring)...))))
	}

	return kml.Polygon(children...)
}

func ringCoordinates(ring orb.Ring) []kml.Coordinate {
	coords := make([]kml.Coordinate, 0, len(ring))
	for _, pt := range ring {
		coords = append(coords, kml.Coordinate{Lon: pt[0], Lat: pt[1]})
	}
	return coords
}

// describeParcel renders the attribute map as an HTML table, keys
// sorted for stable output.
func describeParcel(p domain.Parcel) string {
	keys := make([]string, 0, len(p.Attributes))
	for k := range p.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	desc := "<table>"
	for _, k := range keys {
		desc += fmt.Sprintf("<tr><td>%s</td><td>%v</td></tr>", k, p.Attributes[k])
	}
	desc += "</table>"
	return desc
}
