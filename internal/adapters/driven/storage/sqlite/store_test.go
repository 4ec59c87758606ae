package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestNewStore(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewStore(tmpDir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(tmpDir, "history.db"), store.Path())
}

// Re-opening the same database must not re-run applied migrations.
func TestStore_MigrationsIdempotent(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Close())

	store2, err := NewStore(tmpDir)
	require.NoError(t, err)
	defer store2.Close()
}

func TestHistoryStore_RecordAndList(t *testing.T) {
	store := newTestStore(t)
	history := store.HistoryStore()
	ctx := context.Background()

	base := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	for i, input := range []string{"13//DP1242624", "1RP912949", "5213/925"} {
		err := history.Record(ctx, &domain.SearchRecord{
			ID:            input,
			RawInput:      input,
			Jurisdictions: []domain.Jurisdiction{domain.JurisdictionNSW},
			ParcelCount:   i,
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	records, err := history.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Newest first.
	assert.Equal(t, "5213/925", records[0].RawInput)
	assert.Equal(t, "13//DP1242624", records[2].RawInput)
	assert.Equal(t, []domain.Jurisdiction{domain.JurisdictionNSW}, records[0].Jurisdictions)
	assert.Equal(t, 2, records[0].ParcelCount)
}

func TestHistoryStore_ListLimit(t *testing.T) {
	store := newTestStore(t)
	history := store.HistoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := history.Record(ctx, &domain.SearchRecord{
			ID:        string(rune('a' + i)),
			RawInput:  "input",
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	records, err := history.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestHistoryStore_RecordRequiresID(t *testing.T) {
	store := newTestStore(t)
	history := store.HistoryStore()

	err := history.Record(context.Background(), &domain.SearchRecord{RawInput: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryStore_Clear(t *testing.T) {
	store := newTestStore(t)
	history := store.HistoryStore()
	ctx := context.Background()

	require.NoError(t, history.Record(ctx, &domain.SearchRecord{ID: "r1", RawInput: "13//DP1"}))
	require.NoError(t, history.Clear(ctx))

	records, err := history.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

// Records persist across store instances.
func TestHistoryStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	ctx := context.Background()

	store1, err := NewStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.HistoryStore().Record(ctx, &domain.SearchRecord{
		ID:       "r1",
		RawInput: "13//DP1",
	}))
	require.NoError(t, store1.Close())

	store2, err := NewStore(tmpDir)
	require.NoError(t, err)
	defer store2.Close()

	records, err := store2.HistoryStore().List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "13//DP1", records[0].RawInput)
}
