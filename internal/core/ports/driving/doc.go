// Package driving defines the inbound port interfaces for MappingKML.
//
// Driving ports are the use-case surface consumed by the CLI, TUI and MCP
// adapters: parcel lookup, KML export and search history.
package driving
