package domain

import "time"

// SearchRecord is one remembered lookup. Only metadata is kept; parcel
// geometry is never persisted.
type SearchRecord struct {
	// ID is the unique identifier for the record.
	ID string

	// RawInput is the text the user submitted.
	RawInput string

	// Jurisdictions lists the jurisdictions that were queried.
	Jurisdictions []Jurisdiction

	// ParcelCount is the number of parcels the lookup returned.
	ParcelCount int

	// SkippedCount is the number of entries no jurisdiction accepted.
	SkippedCount int

	// CreatedAt is when the lookup ran.
	CreatedAt time.Time
}
