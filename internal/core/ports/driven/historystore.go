package driven

import (
	"context"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
)

// HistoryStore persists lookup metadata. Parcel geometry is never stored.
type HistoryStore interface {
	// Record saves one search record.
	Record(ctx context.Context, record *domain.SearchRecord) error

	// List returns the most recent records, newest first, up to limit.
	// A non-positive limit applies the store's default.
	List(ctx context.Context, limit int) ([]*domain.SearchRecord, error)

	// Clear removes all records.
	Clear(ctx context.Context) error

	// Close releases the underlying storage.
	Close() error
}
