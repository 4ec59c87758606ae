package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driving"
)

type mockLookupService struct {
	result *domain.LookupResult
	err    error
}

func (m *mockLookupService) Lookup(_ context.Context, _ string, _ driving.LookupOptions) (*domain.LookupResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockLookupService) ParseOnly(_ string, _ domain.Jurisdiction) ([]domain.ParseResult, error) {
	return nil, nil
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

func twoParcelResult() *domain.LookupResult {
	return &domain.LookupResult{
		Parcels: []domain.Parcel{
			{Jurisdiction: domain.JurisdictionNSW, Name: "13//DP1"},
			{Jurisdiction: domain.JurisdictionNSW, Name: "14//DP1"},
		},
	}
}

func newTestApp(t *testing.T, lookup driving.LookupService, export driving.ExportService) *App {
	t.Helper()

	app, err := NewApp(&Ports{Lookup: lookup, Export: export})
	require.NoError(t, err)
	return app
}

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewApp_RequiresPorts(t *testing.T) {
	_, err := NewApp(&Ports{})
	assert.ErrorIs(t, err, ErrMissingLookupService)

	_, err = NewApp(&Ports{Lookup: &mockLookupService{}})
	assert.ErrorIs(t, err, ErrMissingExportService)
}

func TestApp_LookupTransitionsToPicker(t *testing.T) {
	app := newTestApp(t, &mockLookupService{result: twoParcelResult()}, &mockExportService{})

	model, _ := app.Update(lookupDoneMsg{result: twoParcelResult()})
	app = model.(*App)

	assert.Equal(t, phasePicking, app.phase)
	// Everything starts picked.
	assert.Equal(t, 2, app.pickedCount())
	assert.Contains(t, app.View(), "13//DP1")
}

func TestApp_LookupErrorReturnsToInput(t *testing.T) {
	app := newTestApp(t, &mockLookupService{}, &mockExportService{})
	app.phase = phaseSearching

	model, _ := app.Update(lookupDoneMsg{err: errors.New("service down")})
	app = model.(*App)

	assert.Equal(t, phaseInput, app.phase)
	assert.Contains(t, app.View(), "service down")
}

func TestApp_SpaceTogglesPick(t *testing.T) {
	app := newTestApp(t, &mockLookupService{}, &mockExportService{})
	model, _ := app.Update(lookupDoneMsg{result: twoParcelResult()})
	app = model.(*App)

	model, _ = app.Update(keyMsg(" "))
	app = model.(*App)

	assert.Equal(t, 1, app.pickedCount())
	assert.False(t, app.picked[0])
}

func TestApp_CursorNavigation(t *testing.T) {
	app := newTestApp(t, &mockLookupService{}, &mockExportService{})
	model, _ := app.Update(lookupDoneMsg{result: twoParcelResult()})
	app = model.(*App)

	model, _ = app.Update(keyMsg("j"))
	app = model.(*App)
	assert.Equal(t, 1, app.cursor)

	// Cursor stops at the last parcel.
	model, _ = app.Update(keyMsg("j"))
	app = model.(*App)
	assert.Equal(t, 1, app.cursor)

	model, _ = app.Update(keyMsg("k"))
	app = model.(*App)
	assert.Equal(t, 0, app.cursor)
}

func TestApp_ExportPickedParcels(t *testing.T) {
	export := &mockExportService{path: "parcels_export/parcels.kml"}
	app := newTestApp(t, &mockLookupService{}, export)
	model, _ := app.Update(lookupDoneMsg{result: twoParcelResult()})
	app = model.(*App)

	// Deselect the first parcel, then export.
	model, _ = app.Update(keyMsg(" "))
	app = model.(*App)
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)

	require.NotNil(t, cmd)
	assert.Equal(t, phaseExporting, app.phase)

	msg := cmd()
	done, ok := msg.(exportDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)

	require.Len(t, export.gotReq.Parcels, 1)
	assert.Equal(t, "14//DP1", export.gotReq.Parcels[0].Name)

	model, _ = app.Update(done)
	app = model.(*App)
	assert.Equal(t, phaseDone, app.phase)
	assert.Contains(t, app.View(), "parcels_export/parcels.kml")
}

func TestApp_PresetCycles(t *testing.T) {
	app := newTestApp(t, &mockLookupService{}, &mockExportService{})
	model, _ := app.Update(lookupDoneMsg{result: twoParcelResult()})
	app = model.(*App)

	require.Equal(t, 0, app.preset)
	model, _ = app.Update(keyMsg("p"))
	app = model.(*App)
	assert.Equal(t, 1, app.preset)
	assert.Contains(t, app.View(), domain.PresetNames()[1])
}

func TestApp_ExportErrorStaysInPicker(t *testing.T) {
	app := newTestApp(t, &mockLookupService{}, &mockExportService{})
	model, _ := app.Update(lookupDoneMsg{result: twoParcelResult()})
	app = model.(*App)

	model, _ = app.Update(exportDoneMsg{err: errors.New("disk full")})
	app = model.(*App)

	assert.Equal(t, phasePicking, app.phase)
	assert.Contains(t, app.View(), "disk full")
}
