package driving

import (
	"context"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
)

// HistoryService exposes the search history.
type HistoryService interface {
	// List returns the most recent records, newest first.
	List(ctx context.Context, limit int) ([]*domain.SearchRecord, error)

	// Clear removes all history records.
	Clear(ctx context.Context) error
}
