package cli

import (
	"context"

	"github.com/paulmach/orb"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driving"
)

type mockLookupService struct {
	result  *domain.LookupResult
	err     error
	gotRaw  string
	gotOpts driving.LookupOptions

	parseResults []domain.ParseResult
	parseErr     error
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
	if m.parseErr != nil {
		return nil, m.parseErr
	}
	return m.parseResults, nil
}

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

type mockHistoryService struct {
	records  []*domain.SearchRecord
	listErr  error
	clearErr error
	cleared  bool
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]*domain.SearchRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.records, nil
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.cleared = true
	return nil
}

func nswParcel(name string) domain.Parcel {
	return domain.Parcel{
		Jurisdiction: domain.JurisdictionNSW,
		Source:       "NSW_Cadastre",
		Name:         name,
		Attributes:   map[string]any{"lotidstring": name},
		Geometry: orb.Polygon{
			{{151.0, -33.0}, {151.001, -33.0}, {151.001, -33.001}, {151.0, -33.001}, {151.0, -33.0}},
		},
	}
}

// setupTestServices wires mock services into the command tree and
// returns a cleanup restoring the previous wiring.
func setupTestServices() func() {
	oldLookup := lookupService
	oldExport := exportService
	oldHistory := historyService
	oldConfig := configStore

	lookupService = &mockLookupService{
		result: &domain.LookupResult{
			Parcels: []domain.Parcel{nswParcel("13//DP1242624")},
		},
	}
	exportService = &mockExportService{path: "parcels_export/parcels.kml"}
	historyService = &mockHistoryService{}
	configStore = nil

	return func() {
		lookupService = oldLookup
		exportService = oldExport
		historyService = oldHistory
		configStore = oldConfig
	}
}
