// Package connectors contains the jurisdiction query adapters.
//
// Each subpackage (nsw, qld, sa) implements driven.CadastreConnector
// against one public ArcGIS cadastre REST layer, translating normalised
// identifiers into chunked WHERE clauses and mapping GeoJSON features into
// uniform parcel records. The shared arcgis subpackage holds the HTTP
// client, throttling and response decoding.
package connectors
