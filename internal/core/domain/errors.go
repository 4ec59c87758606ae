package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedJurisdiction indicates an unknown jurisdiction tag.
	ErrUnsupportedJurisdiction = errors.New("unsupported jurisdiction")

	// Parsing Errors.

	// ErrMalformedIdentifier indicates an entry matched none of the
	// recognised grammars for its jurisdiction.
	ErrMalformedIdentifier = errors.New("malformed identifier")

	// ErrInvalidRange indicates a lot range where start > end.
	ErrInvalidRange = errors.New("invalid lot range")

	// Connector Errors.

	// ErrServiceUnavailable indicates a cadastre service could not be
	// reached or returned an unusable response.
	ErrServiceUnavailable = errors.New("cadastre service unavailable")

	// ErrServiceFault indicates the cadastre service accepted the request
	// but reported an in-band error (ArcGIS returns these with HTTP 200).
	ErrServiceFault = errors.New("cadastre service fault")

	// Export Errors.

	// ErrNothingToExport indicates an export was requested with no parcels.
	ErrNothingToExport = errors.New("nothing to export")

	// ErrInvalidColour indicates a colour string is not #RRGGBB hex.
	ErrInvalidColour = errors.New("invalid colour")
)
