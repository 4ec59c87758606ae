// Package nsw parses New South Wales parcel identifiers.
//
// Accepted grammars:
//
//	13//DP1242624        lot // plan
//	13/1//DP1242624      lot / section // plan
//	1-3//DP131118        lot range // plan (expands to one lot each)
//	LOT 13 DP1242624     free-text lotidstring, case-insensitive
package nsw

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driven"
	"github.com/mappingkml/mappingkml-cli/internal/parsers"
)

// Ensure Parser implements the interface.
var _ driven.EntryParser = (*Parser)(nil)

var (
	// lot(/section)//plan, e.g. "13//DP1242624", "13/1//DP1242624".
	structuredRe = regexp.MustCompile(`(?i)^\s*([A-Z0-9-]+)\s*(?:/\s*([A-Z0-9-]+)\s*)?//\s*([A-Z]+\s*\d+)\s*$`)

	// Numeric lot range inside the lot slot, e.g. "1-3".
	rangeRe = regexp.MustCompile(`^(\d+)-(\d+)$`)

	// Free-text lotidstring, e.g. "LOT 13 DP1242624", "lot 13 dp 1242624".
	freeTextRe = regexp.MustCompile(`(?i)^\s*LOTS?\s+([A-Z0-9]+)\s+([A-Z]{1,3}\s*\d+)\s*$`)

	// Plan labels are a letter prefix followed by digits, e.g. DP1242624.
	planRe = regexp.MustCompile(`^[A-Z]{1,3}\d+$`)
)

// Parser parses NSW entries.
type Parser struct{}

// New creates a new NSW parser.
func New() *Parser {
	return &Parser{}
}

// Jurisdiction returns NSW.
func (p *Parser) Jurisdiction() domain.Jurisdiction {
	return domain.JurisdictionNSW
}

// Parse converts one entry into identifiers. Range entries expand into one
// identifier per lot; all other grammars yield exactly one.
func (p *Parser) Parse(entry string) ([]domain.ParcelIdentifier, error) {
	if m := structuredRe.FindStringSubmatch(entry); m != nil {
		return p.parseStructured(entry, m)
	}

	if m := freeTextRe.FindStringSubmatch(entry); m != nil {
		return p.parseFreeText(entry, m)
	}

	return nil, malformed(entry, "expected LOT//PLAN, LOT/SECTION//PLAN, START-END//PLAN or LOT n PLAN")
}

func (p *Parser) parseStructured(entry string, m []string) ([]domain.ParcelIdentifier, error) {
	lot := parsers.NormalizeLot(m[1])
	section := parsers.NormalizeLot(m[2])
	plan := parsers.NormalizePlan(m[3])

	if !planRe.MatchString(plan) {
		return nil, malformed(entry, "plan label must be letters followed by digits")
	}

	if r := rangeRe.FindStringSubmatch(lot); r != nil {
		if section != "" {
			return nil, malformed(entry, "lot ranges cannot carry a section")
		}
		return p.expandRange(entry, r[1], r[2], plan)
	}

	if strings.Contains(lot, "-") {
		return nil, malformed(entry, "lot ranges must be numeric, e.g. 1-3")
	}

	return []domain.ParcelIdentifier{{
		Jurisdiction: domain.JurisdictionNSW,
		Lot:          lot,
		Section:      section,
		Plan:         plan,
	}}, nil
}

func (p *Parser) parseFreeText(entry string, m []string) ([]domain.ParcelIdentifier, error) {
	plan := parsers.NormalizePlan(m[2])
	if !planRe.MatchString(plan) {
		return nil, malformed(entry, "plan label must be letters followed by digits")
	}

	return []domain.ParcelIdentifier{{
		Jurisdiction: domain.JurisdictionNSW,
		Lot:          parsers.NormalizeLot(m[1]),
		Plan:         plan,
	}}, nil
}

func (p *Parser) expandRange(entry, startTok, endTok, plan string) ([]domain.ParcelIdentifier, error) {
	start, err := strconv.Atoi(startTok)
	if err != nil {
		return nil, malformed(entry, "range start is not a number")
	}
	end, err := strconv.Atoi(endTok)
	if err != nil {
		return nil, malformed(entry, "range end is not a number")
	}

	ids, err := domain.LotRange{Start: start, End: end, Plan: plan}.Expand()
	if err != nil {
		return nil, &domain.ParseError{
			Entry:        entry,
			Jurisdiction: domain.JurisdictionNSW,
			Err:          err,
		}
	}
	return ids, nil
}

func malformed(entry, reason string) error {
	return &domain.ParseError{
		Entry:        entry,
		Jurisdiction: domain.JurisdictionNSW,
		Err:          fmt.Errorf("%w: %s", domain.ErrMalformedIdentifier, reason),
	}
}
