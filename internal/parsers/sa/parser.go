// Package sa parses South Australia parcel identifiers.
//
// Accepted grammars:
//
//	101//D12345    parcel // plan
//	5213/925       volume / folio
//
// The double slash selects the parcel/plan form; exactly one slash with no
// double slash selects volume/folio.
package sa

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driven"
	"github.com/mappingkml/mappingkml-cli/internal/parsers"
)

// Ensure Parser implements the interface.
var _ driven.EntryParser = (*Parser)(nil)

var (
	// parcel//plan, e.g. "101//D12345".
	parcelPlanRe = regexp.MustCompile(`(?i)^\s*([A-Z0-9]+)\s*//\s*([A-Z]+\s*\d+)\s*$`)

	// volume/folio, e.g. "5213/925". Bounds follow the title register.
	volumeFolioRe = regexp.MustCompile(`^\s*(\d{1,5})\s*/\s*(\d{1,6})\s*$`)

	planRe = regexp.MustCompile(`^[A-Z]{1,3}\d+$`)
)

// Parser parses SA entries.
type Parser struct{}

// New creates a new SA parser.
func New() *Parser {
	return &Parser{}
}

// Jurisdiction returns SA.
func (p *Parser) Jurisdiction() domain.Jurisdiction {
	return domain.JurisdictionSA
}

// Parse converts one entry into a single identifier. Exactly one of
// {parcel+plan, volume+folio} is populated on the result.
func (p *Parser) Parse(entry string) ([]domain.ParcelIdentifier, error) {
	if strings.Contains(entry, "//") {
		m := parcelPlanRe.FindStringSubmatch(entry)
		if m == nil {
			return nil, malformed(entry, "expected PARCEL//PLAN like 101//D12345")
		}

		plan := parsers.NormalizePlan(m[2])
		if !planRe.MatchString(plan) {
			return nil, malformed(entry, "plan label must be letters followed by digits")
		}

		return []domain.ParcelIdentifier{{
			Jurisdiction: domain.JurisdictionSA,
			Lot:          parsers.NormalizeLot(m[1]),
			Plan:         plan,
		}}, nil
	}

	if strings.Count(entry, "/") == 1 {
		m := volumeFolioRe.FindStringSubmatch(entry)
		if m == nil {
			return nil, malformed(entry, "expected VOLUME/FOLIO like 5213/925")
		}

		return []domain.ParcelIdentifier{{
			Jurisdiction: domain.JurisdictionSA,
			Volume:       m[1],
			Folio:        m[2],
		}}, nil
	}

	return nil, malformed(entry, "expected PARCEL//PLAN or VOLUME/FOLIO")
}

func malformed(entry, reason string) error {
	return &domain.ParseError{
		Entry:        entry,
		Jurisdiction: domain.JurisdictionSA,
		Err:          fmt.Errorf("%w: %s", domain.ErrMalformedIdentifier, reason),
	}
}
