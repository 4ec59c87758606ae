package parsers

import (
	"errors"
	"fmt"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driven"
)

// ParseBulk splits raw input into entries and applies the parser to each
// entry independently. One entry's failure never aborts the others; the
// returned slice preserves per-entry success or error in input order.
func ParseBulk(raw string, parser driven.EntryParser) []domain.ParseResult {
	entries := SplitEntries(raw)
	if len(entries) == 0 {
		return nil
	}

	results := make([]domain.ParseResult, 0, len(entries))
	for _, entry := range entries {
		ids, err := parser.Parse(entry)
		if err != nil {
			results = append(results, domain.ParseResult{
				Entry: entry,
				Err:   asParseError(entry, parser.Jurisdiction(), err),
			})
			continue
		}
		results = append(results, domain.ParseResult{
			Entry:       entry,
			Identifiers: ids,
		})
	}
	return results
}

// asParseError keeps typed parse errors intact and wraps anything else so
// callers always see a *domain.ParseError per failed entry.
func asParseError(entry string, j domain.Jurisdiction, err error) *domain.ParseError {
	var parseErr *domain.ParseError
	if errors.As(err, &parseErr) {
		return parseErr
	}
	return &domain.ParseError{
		Entry:        entry,
		Jurisdiction: j,
		Err:          fmt.Errorf("%w: %v", domain.ErrMalformedIdentifier, err),
	}
}
