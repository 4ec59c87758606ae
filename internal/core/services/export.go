package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driven"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driving"
	"github.com/mappingkml/mappingkml-cli/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// Config keys consulted for export defaults.
const (
	ConfigKeyExportDir       = "export.dir"
	ConfigKeyExportPreset    = "export.preset"
	ConfigKeyExportOpacity   = "export.opacity"
	ConfigKeyExportLineWidth = "export.line_width"
)

// DefaultExportDir is used when neither the request nor the config names
// an output directory.
const DefaultExportDir = "parcels_export"

// DefaultExportFilename is the default KML file name.
const DefaultExportFilename = "parcels.kml"

// ExportService resolves styles and writes parcels through the exporter.
type ExportService struct {
	exporter driven.Exporter
	config   driven.ConfigStore
}

// NewExportService creates an export service. The config store is
// optional (can be nil); it only supplies defaults.
func NewExportService(exporter driven.Exporter, config driven.ConfigStore) *ExportService {
	return &ExportService{
		exporter: exporter,
		config:   config,
	}
}

// Export resolves the style and writes the file, returning its path.
func (s *ExportService) Export(ctx context.Context, req driving.ExportRequest) (string, error) {
	if len(req.Parcels) == 0 {
		return "", domain.ErrNothingToExport
	}

	style, err := s.resolveStyle(req)
	if err != nil {
		return "", err
	}

	dir := req.Dir
	if dir == "" && s.config != nil {
		dir = s.config.GetString(ConfigKeyExportDir)
	}
	if dir == "" {
		dir = DefaultExportDir
	}

	filename := req.Filename
	if filename == "" {
		filename = DefaultExportFilename
	}

	logger.Section("KML Export")
	logger.Debug("Exporting %d parcels to %s (fill %s, opacity %d, line %.1f)",
		len(req.Parcels), filepath.Join(dir, filename), style.FillHex, style.Opacity, style.LineWidth)

	return s.exporter.Export(ctx, req.Parcels, style, filepath.Join(dir, filename))
}

// resolveStyle merges the request with config defaults. Precedence for
// the fill colour: explicit hex, request preset, configured preset,
// built-in default.
func (s *ExportService) resolveStyle(req driving.ExportRequest) (domain.ExportStyle, error) {
	style := domain.DefaultExportStyle()

	if s.config != nil {
		if preset := s.config.GetString(ConfigKeyExportPreset); preset != "" {
			hex, ok := domain.PresetColour(preset)
			if !ok {
				return domain.ExportStyle{}, fmt.Errorf("%w: configured preset %q", domain.ErrInvalidInput, preset)
			}
			style.FillHex = hex
		}
		if opacity := s.config.GetInt(ConfigKeyExportOpacity); opacity > 0 {
			style.Opacity = clampOpacity(opacity)
		}
		if width := s.config.GetFloat(ConfigKeyExportLineWidth); width > 0 {
			style.LineWidth = width
		}
	}

	if req.Preset != "" {
		hex, ok := domain.PresetColour(req.Preset)
		if !ok {
			return domain.ExportStyle{}, fmt.Errorf("%w: unknown preset %q", domain.ErrInvalidInput, req.Preset)
		}
		style.FillHex = hex
	}
	if req.ColourHex != "" {
		style.FillHex = req.ColourHex
	}
	if req.Opacity >= 0 {
		style.Opacity = clampOpacity(req.Opacity)
	}
	if req.LineWidth > 0 {
		style.LineWidth = req.LineWidth
	}

	// Validate the final colour once, wherever it came from.
	if _, err := domain.ParseHexColour(style.FillHex, style.Opacity); err != nil {
		return domain.ExportStyle{}, err
	}
	return style, nil
}

func clampOpacity(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
