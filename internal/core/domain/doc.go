// Package domain defines the core business entities for MappingKML.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Jurisdiction: A supported cadastre jurisdiction (NSW, QLD, SA)
//   - ParcelIdentifier: A normalised lot/plan or volume/folio lookup key
//   - ParseResult: A per-entry identifier-or-error outcome
//   - Parcel: A uniform parcel record (geometry + attributes)
//   - ExportStyle: KML styling for exported parcels
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import the Go
// standard library and the orb geometry primitives used to carry parcel
// shapes. All other packages depend on domain, never the reverse.
package domain
