// Package parsers converts free-form user text into normalised,
// jurisdiction-tagged parcel identifiers.
//
// Each jurisdiction has its own grammar set in a subpackage (nsw, qld, sa)
// implementing driven.EntryParser. The shared helpers here split bulk input
// into entries and normalise lot and plan tokens.
//
// Parsing is pure: no I/O, no shared state. A batch never hard-aborts;
// each entry resolves independently to identifiers or a typed error, in
// input order.
package parsers
