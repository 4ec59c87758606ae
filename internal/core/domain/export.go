package domain

import (
	"fmt"
	"image/color"
	"strings"
)

// Export defaults, matching the historical MappingKML presets.
const (
	// DefaultOpacity is the default fill opacity (0-255).
	DefaultOpacity = 125

	// DefaultLineWidth is the default border width in pixels.
	DefaultLineWidth = 2.0

	// DefaultFillHex is the default fill colour when no preset is chosen.
	DefaultFillHex = "#00FF00"

	// DefaultLineHex is the border colour used for all exports.
	DefaultLineHex = "#AAAAAA"
)

// Preset names for the standard fill colours.
const (
	PresetSubjects = "subjects"
	PresetQuotes   = "quotes"
	PresetSales    = "sales"
	PresetForSales = "for-sales"
)

// presetHex maps preset names to their #RRGGBB fill colours.
var presetHex = map[string]string{
	PresetSubjects: "#009FDF",
	PresetQuotes:   "#A23F97",
	PresetSales:    "#FF0000",
	PresetForSales: "#ED7D31",
}

// PresetNames returns the preset names in display order.
func PresetNames() []string {
	return []string{PresetSubjects, PresetQuotes, PresetSales, PresetForSales}
}

// PresetColour resolves a preset name to its #RRGGBB hex colour.
func PresetColour(name string) (string, bool) {
	hex, ok := presetHex[strings.ToLower(strings.TrimSpace(name))]
	return hex, ok
}

// ExportStyle describes how exported parcels are drawn.
type ExportStyle struct {
	// FillHex is the fill colour as #RRGGBB.
	FillHex string

	// Opacity is the fill opacity, 0 (transparent) to 255 (opaque).
	Opacity uint8

	// LineWidth is the border width in pixels.
	LineWidth float64
}

// DefaultExportStyle returns the style used when nothing is configured.
func DefaultExportStyle() ExportStyle {
	return ExportStyle{
		FillHex:   DefaultFillHex,
		Opacity:   DefaultOpacity,
		LineWidth: DefaultLineWidth,
	}
}

// FillColour returns the fill colour with the style's opacity applied.
func (s ExportStyle) FillColour() (color.Color, error) {
	return ParseHexColour(s.FillHex, s.Opacity)
}

// LineColour returns the opaque border colour.
func (s ExportStyle) LineColour() color.Color {
	c, err := ParseHexColour(DefaultLineHex, 0xff)
	if err != nil {
		// DefaultLineHex is a constant; this cannot happen.
		return color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
	}
	return c
}

// ParseHexColour parses a #RRGGBB string and applies the given alpha.
// Returns ErrInvalidColour (wrapped) for anything else.
func ParseHexColour(hex string, alpha uint8) (color.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColour, hex)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(h, "%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColour, hex)
	}

	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
