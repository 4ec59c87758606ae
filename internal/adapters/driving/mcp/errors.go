// Package mcp provides an MCP (Model Context Protocol) server adapter for
// MappingKML. It enables AI assistants to search the cadastre services and
// export parcel boundaries to KML.
package mcp

import "errors"

// ErrMissingLookupService is returned when the lookup service is not provided.
var ErrMissingLookupService = errors.New("mcp: lookup service is required")
