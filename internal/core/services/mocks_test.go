package services

import (
	"context"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
)

// mockParser accepts entries via a caller-supplied parse function.
type mockParser struct {
	jurisdiction domain.Jurisdiction
	parseFunc    func(entry string) ([]domain.ParcelIdentifier, error)
}

func (m *mockParser) Jurisdiction() domain.Jurisdiction {
	return m.jurisdiction
}

func (m *mockParser) Parse(entry string) ([]domain.ParcelIdentifier, error) {
	return m.parseFunc(entry)
}

// mockConnector records the identifiers it was queried with.
type mockConnector struct {
	jurisdiction domain.Jurisdiction
	queried      [][]domain.ParcelIdentifier
	parcels      []domain.Parcel
	queryErr     error
}

func (m *mockConnector) Jurisdiction() domain.Jurisdiction {
	return m.jurisdiction
}

func (m *mockConnector) Validate(_ context.Context) error {
	return nil
}

func (m *mockConnector) Query(_ context.Context, ids []domain.ParcelIdentifier) ([]domain.Parcel, error) {
	m.queried = append(m.queried, ids)
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	return m.parcels, nil
}

// mockHistoryStore captures recorded searches in memory.
type mockHistoryStore struct {
	records   []*domain.SearchRecord
	recordErr error
	clearErr  error
}

func (m *mockHistoryStore) Record(_ context.Context, record *domain.SearchRecord) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.records = append(m.records, record)
	return nil
}

func (m *mockHistoryStore) List(_ context.Context, limit int) ([]*domain.SearchRecord, error) {
	if limit > len(m.records) {
		limit = len(m.records)
	}
	return m.records[:limit], nil
}

func (m *mockHistoryStore) Clear(_ context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.records = nil
	return nil
}

func (m *mockHistoryStore) Close() error {
	return nil
}

// mockExporter records the style and path it was asked to write.
type mockExporter struct {
	gotParcels []domain.Parcel
	gotStyle   domain.ExportStyle
	gotPath    string
	exportErr  error
}

func (m *mockExporter) Export(_ context.Context, parcels []domain.Parcel, style domain.ExportStyle, path string) (string, error) {
	m.gotParcels = parcels
	m.gotStyle = style
	m.gotPath = path
	if m.exportErr != nil {
		return "", m.exportErr
	}
	return path, nil
}

// mockConfigStore is an in-memory config store backed by a map.
type mockConfigStore struct {
	values map[string]any
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if v, ok := m.values[key].(string); ok {
		return v
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	switch v := m.values[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

func (m *mockConfigStore) GetFloat(key string) float64 {
	switch v := m.values[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func (m *mockConfigStore) GetBool(key string) bool {
	v, _ := m.values[key].(bool)
	return v
}

func (m *mockConfigStore) GetStringSlice(key string) []string {
	v, _ := m.values[key].([]string)
	return v
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Save() error { return nil }
func (m *mockConfigStore) Load() error { return nil }
func (m *mockConfigStore) Path() string {
	return "mock"
}
