package domain

import "fmt"

// ParseError is a per-entry parse failure. It carries the offending raw
// entry so callers can report which entries were skipped and why, without
// aborting the rest of the batch.
type ParseError struct {
	// Entry is the raw input entry that failed to parse.
	Entry string

	// Jurisdiction is the jurisdiction whose grammars were attempted.
	Jurisdiction Jurisdiction

	// Err is the underlying cause, one of ErrMalformedIdentifier or
	// ErrInvalidRange.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q: %v", e.Jurisdiction, e.Entry, e.Err)
}

// Unwrap exposes the underlying sentinel for errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseResult is the outcome of parsing one input entry: either one or
// more identifiers (range entries expand to several) or a ParseError.
// Exactly one of Identifiers and Err is set.
type ParseResult struct {
	// Entry is the raw input entry this result came from.
	Entry string

	// Identifiers holds the normalised identifiers on success.
	Identifiers []ParcelIdentifier

	// Err holds the parse failure, if any.
	Err *ParseError
}

// OK reports whether the entry parsed successfully.
func (r ParseResult) OK() bool {
	return r.Err == nil
}
