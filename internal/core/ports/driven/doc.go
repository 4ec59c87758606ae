// Package driven defines the outbound port interfaces for MappingKML.
//
// Driven ports are implemented by adapters the core calls out to:
// jurisdiction parsers, cadastre connectors, the KML exporter, the config
// store and the history store. Services depend on these interfaces, never
// on concrete adapters.
package driven
