// Package tui implements the interactive terminal driving adapter: a
// search prompt, a parcel picker with multi-select, and KML export of
// the picked parcels.
package tui

import "errors"

// ErrMissingLookupService is returned when the lookup service is not provided.
var ErrMissingLookupService = errors.New("tui: lookup service is required")

// ErrMissingExportService is returned when the export service is not provided.
var ErrMissingExportService = errors.New("tui: export service is required")
