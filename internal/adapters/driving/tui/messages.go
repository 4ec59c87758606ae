package tui

import (
	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
)

// lookupDoneMsg carries the outcome of a background lookup.
type lookupDoneMsg struct {
	result *domain.LookupResult
	err    error
}

// exportDoneMsg carries the outcome of a background export.
type exportDoneMsg struct {
	path  string
	count int
	err   error
}
