// Package qld parses Queensland lotplan identifiers.
//
// QLD uses the concatenated, separator-free lotplan form: digits, a
// two-letter plan type code, then digits, e.g. "1RP912949", "13SP12345".
package qld

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.EntryParser = (*Parser)(nil)

// Internal whitespace is tolerated ("1 RP 912949") and stripped before
// matching; separators like "/" are not.
var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	lotplanRe    = regexp.MustCompile(`(?i)^(\d+)([A-Z]{2})(\d+)$`)
)

// Parser parses QLD entries.
type Parser struct{}

// New creates a new QLD parser.
func New() *Parser {
	return &Parser{}
}

// Jurisdiction returns QLD.
func (p *Parser) Jurisdiction() domain.Jurisdiction {
	return domain.JurisdictionQLD
}

// Parse converts one lotplan entry into a single identifier.
func (p *Parser) Parse(entry string) ([]domain.ParcelIdentifier, error) {
	compact := whitespaceRe.ReplaceAllString(entry, "")

	m := lotplanRe.FindStringSubmatch(compact)
	if m == nil {
		return nil, &domain.ParseError{
			Entry:        entry,
			Jurisdiction: domain.JurisdictionQLD,
			Err:          fmt.Errorf("%w: expected lotplan like 1RP912949", domain.ErrMalformedIdentifier),
		}
	}

	return []domain.ParcelIdentifier{{
		Jurisdiction: domain.JurisdictionQLD,
		Lot:          m[1],
		Plan:         strings.ToUpper(m[2]) + m[3],
	}}, nil
}
