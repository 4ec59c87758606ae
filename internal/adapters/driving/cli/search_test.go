package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [references]", searchCmd.Use)
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := execute(t, "search")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_PrintsParcels(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "search", "13//DP1242624")

	assert.NoError(t, err)
	assert.Contains(t, out, "Parcels (1):")
	assert.Contains(t, out, "13//DP1242624")
	assert.Contains(t, out, "(NSW)")
}

func TestSearchCmd_JurisdictionFlags(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() {
		_ = searchCmd.Flags().Set("qld", "false")
		_ = searchCmd.Flags().Set("sa", "false")
	}()

	_, err := execute(t, "search", "--qld", "--sa", "1RP912949")
	require.NoError(t, err)

	mock := lookupService.(*mockLookupService)
	assert.Equal(t, []domain.Jurisdiction{domain.JurisdictionQLD, domain.JurisdictionSA}, mock.gotOpts.Jurisdictions)
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { searchJSON = false }()

	out, err := execute(t, "search", "--json", "13//DP1242624")

	assert.NoError(t, err)
	assert.Contains(t, out, `"jurisdiction": "NSW"`)
	assert.Contains(t, out, `"name": "13//DP1242624"`)
}

func TestSearchCmd_ReportsSkippedAndServiceErrors(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	lookupService = &mockLookupService{
		result: &domain.LookupResult{
			Skipped: []*domain.ParseError{
				{Entry: "garbage", Jurisdiction: domain.JurisdictionNSW, Err: domain.ErrMalformedIdentifier},
			},
			ServiceErrors: map[domain.Jurisdiction]error{
				domain.JurisdictionQLD: domain.ErrServiceUnavailable,
			},
		},
	}

	out, err := execute(t, "search", "garbage")

	assert.NoError(t, err)
	assert.Contains(t, out, "No parcels found.")
	assert.Contains(t, out, "garbage")
	assert.Contains(t, out, "QLD service failed")
}

func TestSearchCmd_ServiceNotConfigured(t *testing.T) {
	oldService := lookupService
	lookupService = nil
	defer func() { lookupService = oldService }()

	_, err := execute(t, "search", "13//DP1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "lookup service not configured")
}

func TestSearchCmd_LookupError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	lookupService = &mockLookupService{err: errors.New("boom")}

	_, err := execute(t, "search", "13//DP1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "lookup failed")
}
