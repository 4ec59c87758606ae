package services

import (
	"context"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driven"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// DefaultHistoryLimit is used when a caller asks for a listing without
// a limit.
const DefaultHistoryLimit = 20

// HistoryService exposes read and clear operations over the search
// history store.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a history service.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// List returns the most recent search records, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]*domain.SearchRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.store.List(ctx, limit)
}

// Clear removes all search records.
func (s *HistoryService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}
