package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
)

func TestHistoryCmd_ListsRecords(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	historyService = &mockHistoryService{
		records: []*domain.SearchRecord{
			{
				RawInput:      "13//DP1242624",
				Jurisdictions: []domain.Jurisdiction{domain.JurisdictionNSW, domain.JurisdictionQLD},
				ParcelCount:   2,
				SkippedCount:  1,
				CreatedAt:     time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
			},
		},
	}

	out, err := execute(t, "history")

	require.NoError(t, err)
	assert.Contains(t, out, "13//DP1242624")
	assert.Contains(t, out, "[NSW,QLD]")
	assert.Contains(t, out, "2 parcels")
	assert.Contains(t, out, "1 skipped")
}

func TestHistoryCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "history")

	require.NoError(t, err)
	assert.Contains(t, out, "No search history.")
}

func TestHistoryClearCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "history", "clear")

	require.NoError(t, err)
	assert.Contains(t, out, "Search history cleared.")
	assert.True(t, historyService.(*mockHistoryService).cleared)
}

func TestHistoryCmd_ServiceNotConfigured(t *testing.T) {
	oldHistory := historyService
	historyService = nil
	defer func() { historyService = oldHistory }()

	_, err := execute(t, "history")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "history service not configured")
}
