package domain

import "strings"

// Jurisdiction identifies a supported cadastre jurisdiction.
type Jurisdiction string

const (
	// JurisdictionNSW is New South Wales (Spatial Services cadastre).
	JurisdictionNSW Jurisdiction = "NSW"
	// JurisdictionQLD is Queensland (Land Parcel Property Framework).
	JurisdictionQLD Jurisdiction = "QLD"
	// JurisdictionSA is South Australia (ePlanning DAP parcels).
	JurisdictionSA Jurisdiction = "SA"
)

// AllJurisdictions lists every supported jurisdiction in display order.
func AllJurisdictions() []Jurisdiction {
	return []Jurisdiction{JurisdictionNSW, JurisdictionQLD, JurisdictionSA}
}

// ParseJurisdiction converts a string tag to a Jurisdiction.
// Matching is case-insensitive. Returns ErrUnsupportedJurisdiction for
// anything that is not NSW, QLD or SA.
func ParseJurisdiction(s string) (Jurisdiction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NSW":
		return JurisdictionNSW, nil
	case "QLD":
		return JurisdictionQLD, nil
	case "SA":
		return JurisdictionSA, nil
	default:
		return "", ErrUnsupportedJurisdiction
	}
}

// String returns the jurisdiction tag.
func (j Jurisdiction) String() string {
	return string(j)
}

// Valid reports whether the jurisdiction is one of the supported set.
func (j Jurisdiction) Valid() bool {
	switch j {
	case JurisdictionNSW, JurisdictionQLD, JurisdictionSA:
		return true
	default:
		return false
	}
}
