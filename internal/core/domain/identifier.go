package domain

import (
	"fmt"
	"strconv"
)

// ParcelIdentifier is a normalised, jurisdiction-tagged lookup key.
//
// For NSW and QLD, Lot and Plan are always populated (Section is NSW-only
// and optional). For SA, exactly one of {Lot+Plan, Volume+Folio} is
// populated.
type ParcelIdentifier struct {
	// Jurisdiction tags which cadastre service this identifier targets.
	Jurisdiction Jurisdiction

	// Lot is the lot (NSW/QLD) or parcel (SA) number, e.g. "13".
	Lot string

	// Section is the optional section number (NSW only).
	Section string

	// Plan is the registered plan label, e.g. "DP1242624", "RP912949",
	// "D12345". Always populated for NSW/QLD.
	Plan string

	// Volume is the certificate-of-title volume (SA volume/folio form).
	Volume string

	// Folio is the certificate-of-title folio (SA volume/folio form).
	Folio string
}

// IsVolumeFolio reports whether this is an SA volume/folio identifier.
func (p ParcelIdentifier) IsVolumeFolio() bool {
	return p.Volume != "" && p.Folio != ""
}

// Canonical returns the canonical string form of the identifier.
// Re-parsing the canonical form yields an identical identifier.
func (p ParcelIdentifier) Canonical() string {
	switch {
	case p.IsVolumeFolio():
		return p.Volume + "/" + p.Folio
	case p.Jurisdiction == JurisdictionQLD:
		return p.Lot + p.Plan
	case p.Section != "":
		return p.Lot + "/" + p.Section + "//" + p.Plan
	default:
		return p.Lot + "//" + p.Plan
	}
}

// LotIDString returns the service-side lot identifier key.
// NSW stores lotidstring as "LOT/SECTION/PLAN" with an empty section slot
// ("13//DP1242624"); QLD stores lotplan as the concatenated form
// ("1RP912949"). SA has no lotidstring field.
func (p ParcelIdentifier) LotIDString() string {
	switch p.Jurisdiction {
	case JurisdictionQLD:
		return p.Lot + p.Plan
	default:
		return p.Lot + "/" + p.Section + "/" + p.Plan
	}
}

// String implements fmt.Stringer using the canonical form.
func (p ParcelIdentifier) String() string {
	return p.Canonical()
}

// LotRange is a transient expansion artifact for NSW range entries such as
// "1-3//DP131118". It is expanded into individual identifiers before any
// query is issued.
type LotRange struct {
	Start int
	End   int
	Plan  string
}

// Expand produces one identifier per lot in the inclusive range.
// Returns ErrInvalidRange (wrapped) when Start > End.
func (r LotRange) Expand() ([]ParcelIdentifier, error) {
	if r.Start > r.End {
		return nil, fmt.Errorf("%w: %d-%d", ErrInvalidRange, r.Start, r.End)
	}

	ids := make([]ParcelIdentifier, 0, r.End-r.Start+1)
	for lot := r.Start; lot <= r.End; lot++ {
		ids = append(ids, ParcelIdentifier{
			Jurisdiction: JurisdictionNSW,
			Lot:          strconv.Itoa(lot),
			Plan:         r.Plan,
		})
	}
	return ids, nil
}
