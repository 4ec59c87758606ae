package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driven"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driving"
)

// acceptAll returns one identifier per entry, for any entry.
func acceptAll(j domain.Jurisdiction) func(string) ([]domain.ParcelIdentifier, error) {
	return func(entry string) ([]domain.ParcelIdentifier, error) {
		return []domain.ParcelIdentifier{{Jurisdiction: j, Lot: entry, Plan: "DP1"}}, nil
	}
}

// acceptContaining accepts only entries containing the given substring.
func acceptContaining(j domain.Jurisdiction, substr string) func(string) ([]domain.ParcelIdentifier, error) {
	return func(entry string) ([]domain.ParcelIdentifier, error) {
		if !strings.Contains(entry, substr) {
			return nil, &domain.ParseError{Entry: entry, Jurisdiction: j, Err: domain.ErrMalformedIdentifier}
		}
		return []domain.ParcelIdentifier{{Jurisdiction: j, Lot: entry, Plan: "DP1"}}, nil
	}
}

func TestLookup_EmptyInput(t *testing.T) {
	svc := NewLookupService(nil, nil)

	_, err := svc.Lookup(context.Background(), "   \n  ", driving.LookupOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLookup_NoJurisdictionsConfigured(t *testing.T) {
	svc := NewLookupService(nil, nil)

	_, err := svc.Lookup(context.Background(), "13//DP1", driving.LookupOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLookup_RequestedJurisdictionNotConfigured(t *testing.T) {
	parser := &mockParser{jurisdiction: domain.JurisdictionNSW, parseFunc: acceptAll(domain.JurisdictionNSW)}
	connector := &mockConnector{jurisdiction: domain.JurisdictionNSW}
	svc := NewLookupService(
		[]driven.EntryParser{parser},
		[]driven.CadastreConnector{connector},
	)

	_, err := svc.Lookup(context.Background(), "13//DP1", driving.LookupOptions{
		Jurisdictions: []domain.Jurisdiction{domain.JurisdictionQLD},
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedJurisdiction)
}

func TestLookup_SingleJurisdiction(t *testing.T) {
	parser := &mockParser{jurisdiction: domain.JurisdictionNSW, parseFunc: acceptAll(domain.JurisdictionNSW)}
	connector := &mockConnector{
		jurisdiction: domain.JurisdictionNSW,
		parcels: []domain.Parcel{
			{Jurisdiction: domain.JurisdictionNSW, Name: "13//DP1"},
			{Jurisdiction: domain.JurisdictionNSW, Name: "14//DP1"},
		},
	}
	svc := NewLookupService(
		[]driven.EntryParser{parser},
		[]driven.CadastreConnector{connector},
	)

	result, err := svc.Lookup(context.Background(), "13//DP1, 14//DP1", driving.LookupOptions{})
	require.NoError(t, err)

	assert.Len(t, result.Parcels, 2)
	assert.Empty(t, result.Skipped)
	assert.Empty(t, result.ServiceErrors)

	require.Len(t, connector.queried, 1)
	assert.Len(t, connector.queried[0], 2)
}

// An entry is skipped only when every enabled jurisdiction rejects it.
func TestLookup_SkipRequiresAllJurisdictionsToReject(t *testing.T) {
	nswParser := &mockParser{jurisdiction: domain.JurisdictionNSW, parseFunc: acceptContaining(domain.JurisdictionNSW, "//")}
	qldParser := &mockParser{jurisdiction: domain.JurisdictionQLD, parseFunc: acceptContaining(domain.JurisdictionQLD, "RP")}
	nswConn := &mockConnector{jurisdiction: domain.JurisdictionNSW}
	qldConn := &mockConnector{jurisdiction: domain.JurisdictionQLD}

	svc := NewLookupService(
		[]driven.EntryParser{nswParser, qldParser},
		[]driven.CadastreConnector{nswConn, qldConn},
	)

	// "13//DP1" parses only in NSW, "1RP912949" only in QLD, "garbage"
	// in neither.
	result, err := svc.Lookup(context.Background(), "13//DP1, 1RP912949, garbage", driving.LookupOptions{})
	require.NoError(t, err)

	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "garbage", result.Skipped[0].Entry)
	assert.ErrorIs(t, result.Skipped[0], domain.ErrMalformedIdentifier)
}

// A failing service is reported per jurisdiction and never aborts the
// other queries.
func TestLookup_ServiceErrorDoesNotAbortBatch(t *testing.T) {
	nswParser := &mockParser{jurisdiction: domain.JurisdictionNSW, parseFunc: acceptAll(domain.JurisdictionNSW)}
	qldParser := &mockParser{jurisdiction: domain.JurisdictionQLD, parseFunc: acceptAll(domain.JurisdictionQLD)}
	nswConn := &mockConnector{jurisdiction: domain.JurisdictionNSW, queryErr: domain.ErrServiceUnavailable}
	qldConn := &mockConnector{
		jurisdiction: domain.JurisdictionQLD,
		parcels:      []domain.Parcel{{Jurisdiction: domain.JurisdictionQLD, Name: "1RP912949"}},
	}

	svc := NewLookupService(
		[]driven.EntryParser{nswParser, qldParser},
		[]driven.CadastreConnector{nswConn, qldConn},
	)

	result, err := svc.Lookup(context.Background(), "13//DP1", driving.LookupOptions{})
	require.NoError(t, err)

	assert.Len(t, result.Parcels, 1)
	require.Contains(t, result.ServiceErrors, domain.JurisdictionNSW)
	assert.ErrorIs(t, result.ServiceErrors[domain.JurisdictionNSW], domain.ErrServiceUnavailable)
}

func TestLookup_RecordsHistory(t *testing.T) {
	parser := &mockParser{jurisdiction: domain.JurisdictionNSW, parseFunc: acceptAll(domain.JurisdictionNSW)}
	connector := &mockConnector{
		jurisdiction: domain.JurisdictionNSW,
		parcels:      []domain.Parcel{{Jurisdiction: domain.JurisdictionNSW, Name: "13//DP1"}},
	}
	store := &mockHistoryStore{}

	svc := NewLookupService(
		[]driven.EntryParser{parser},
		[]driven.CadastreConnector{connector},
	)
	svc.SetHistoryStore(store)

	_, err := svc.Lookup(context.Background(), "13//DP1", driving.LookupOptions{})
	require.NoError(t, err)

	require.Len(t, store.records, 1)
	record := store.records[0]
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "13//DP1", record.RawInput)
	assert.Equal(t, []domain.Jurisdiction{domain.JurisdictionNSW}, record.Jurisdictions)
	assert.Equal(t, 1, record.ParcelCount)
	assert.Zero(t, record.SkippedCount)
	assert.False(t, record.CreatedAt.IsZero())
}

// History store failures are logged, not surfaced.
func TestLookup_HistoryFailureIsNonFatal(t *testing.T) {
	parser := &mockParser{jurisdiction: domain.JurisdictionNSW, parseFunc: acceptAll(domain.JurisdictionNSW)}
	connector := &mockConnector{jurisdiction: domain.JurisdictionNSW}
	store := &mockHistoryStore{recordErr: errors.New("disk full")}

	svc := NewLookupService(
		[]driven.EntryParser{parser},
		[]driven.CadastreConnector{connector},
	)
	svc.SetHistoryStore(store)

	_, err := svc.Lookup(context.Background(), "13//DP1", driving.LookupOptions{})
	assert.NoError(t, err)
}

func TestParseOnly(t *testing.T) {
	parser := &mockParser{jurisdiction: domain.JurisdictionNSW, parseFunc: acceptContaining(domain.JurisdictionNSW, "//")}
	svc := NewLookupService([]driven.EntryParser{parser}, nil)

	results, err := svc.ParseOnly("13//DP1, garbage", domain.JurisdictionNSW)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.True(t, results[0].OK())
	assert.False(t, results[1].OK())
}

func TestParseOnly_UnknownJurisdiction(t *testing.T) {
	svc := NewLookupService(nil, nil)

	_, err := svc.ParseOnly("13//DP1", domain.JurisdictionNSW)
	assert.ErrorIs(t, err, domain.ErrUnsupportedJurisdiction)
}
