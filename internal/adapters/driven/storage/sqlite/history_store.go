package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Record stores a search record.
func (s *historyStore) Record(ctx context.Context, record *domain.SearchRecord) error {
	if record.ID == "" {
		return domain.ErrInvalidInput
	}

	jurisdictionsJSON, err := json.Marshal(record.Jurisdictions)
	if err != nil {
		return fmt.Errorf("marshalling jurisdictions: %w", err)
	}

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO search_history (id, raw_input, jurisdictions, parcel_count, skipped_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, record.ID, record.RawInput, string(jurisdictionsJSON),
		record.ParcelCount, record.SkippedCount, createdAt)

	if err != nil {
		return fmt.Errorf("saving search record: %w", err)
	}
	return nil
}

// List returns the most recent search records, newest first.
func (s *historyStore) List(ctx context.Context, limit int) ([]*domain.SearchRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, raw_input, jurisdictions, parcel_count, skipped_count, created_at
		FROM search_history
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying search history: %w", err)
	}
	defer rows.Close()

	var records []*domain.SearchRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		record, err := scanSearchRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating search history: %w", err)
	}

	return records, nil
}

// Clear removes all search records.
func (s *historyStore) Clear(ctx context.Context) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM search_history")
	if err != nil {
		return fmt.Errorf("clearing search history: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *historyStore) Close() error {
	return s.store.Close()
}

// scanSearchRecord scans a search record from *sql.Rows.
func scanSearchRecord(rows *sql.Rows) (*domain.SearchRecord, error) {
	var record domain.SearchRecord
	var jurisdictionsJSON string
	var createdAt sql.NullTime

	if err := rows.Scan(&record.ID, &record.RawInput, &jurisdictionsJSON,
		&record.ParcelCount, &record.SkippedCount, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning search record: %w", err)
	}

	if jurisdictionsJSON != "" {
		if err := json.Unmarshal([]byte(jurisdictionsJSON), &record.Jurisdictions); err != nil {
			return nil, fmt.Errorf("unmarshalling jurisdictions: %w", err)
		}
	}
	if createdAt.Valid {
		record.CreatedAt = createdAt.Time
	}

	return &record, nil
}
