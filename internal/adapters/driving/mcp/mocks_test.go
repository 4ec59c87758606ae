package mcp

import (
	"context"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driving"
)

// mockLookupService returns canned lookup results.
type mockLookupService struct {
	result  *domain.LookupResult
	err     error
	gotRaw  string
	gotOpts driving.LookupOptions
}

func (m *mockLookupService) Lookup(_ context.Context, raw string, opts driving.LookupOptions) (*domain.LookupResult, error) {
	m.gotRaw = raw
	m.gotOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.result == nil {
		return &domain.LookupResult{}, nil
	}
	return m.result, nil
}

func (m *mockLookupService) ParseOnly(_ string, _ domain.Jurisdiction) ([]domain.ParseResult, error) {
	return nil, nil
}

// mockExportService records the export request.
type mockExportService struct {
	path   string
	err    error
	gotReq driving.ExportRequest
}

func (m *mockExportService) Export(_ context.Context, req driving.ExportRequest) (string, error) {
	m.gotReq = req
	if m.err != nil {
		return "", m.err
	}
	return m.path, nil
}

// mockHistoryService serves canned records.
type mockHistoryService struct {
	records []*domain.SearchRecord
	err     error
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]*domain.SearchRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	return nil
}
