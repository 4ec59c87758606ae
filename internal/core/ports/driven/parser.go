package driven

import "github.com/mappingkml/mappingkml-cli/internal/core/domain"

// EntryParser parses one raw entry into normalised identifiers for a
// single jurisdiction.
//
// Parse returns one identifier for plain entries and several for range
// entries. Failures are *domain.ParseError values wrapping
// domain.ErrMalformedIdentifier or domain.ErrInvalidRange.
// Implementations are pure functions over text.
type EntryParser interface {
	// Jurisdiction returns the jurisdiction this parser's grammars target.
	Jurisdiction() domain.Jurisdiction

	// Parse converts a single trimmed entry into identifiers.
	Parse(entry string) ([]domain.ParcelIdentifier, error)
}
