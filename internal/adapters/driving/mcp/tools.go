package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driving"
)

// SearchInput is the input schema for the parcel_search tool.
type SearchInput struct {
	References    string   `json:"references" jsonschema:"lot and plan references separated by commas, semicolons or newlines"`
	Jurisdictions []string `json:"jurisdictions,omitempty" jsonschema:"jurisdictions to query (nsw, qld, sa); all when omitted"`
}

// SearchOutput is the output schema for the parcel_search tool.
type SearchOutput struct {
	Parcels []ParcelOutput  `json:"parcels"`
	Skipped []SkippedOutput `json:"skipped,omitempty"`
	Count   int             `json:"count"`
}

// ParcelOutput represents a single matched parcel.
type ParcelOutput struct {
	Jurisdiction string  `json:"jurisdiction"`
	Source       string  `json:"source"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude,omitempty"`
	Longitude    float64 `json:"longitude,omitempty"`
}

// SkippedOutput reports an input entry no jurisdiction accepted.
type SkippedOutput struct {
	Entry  string `json:"entry"`
	Reason string `json:"reason"`
}

// ExportInput is the input schema for the parcel_export tool.
type ExportInput struct {
	References    string   `json:"references" jsonschema:"lot and plan references separated by commas, semicolons or newlines"`
	Jurisdictions []string `json:"jurisdictions,omitempty" jsonschema:"jurisdictions to query (nsw, qld, sa); all when omitted"`
	Dir           string   `json:"dir,omitempty" jsonschema:"output directory for the KML file"`
	Filename      string   `json:"filename,omitempty" jsonschema:"output file name (default parcels.kml)"`
	Preset        string   `json:"preset,omitempty" jsonschema:"colour preset: subjects, quotes, sales or for-sales"`
	Colour        string   `json:"colour,omitempty" jsonschema:"custom fill colour as #RRGGBB"`
}

// ExportOutput is the output schema for the parcel_export tool.
type ExportOutput struct {
	Path        string `json:"path"`
	ParcelCount int    `json:"parcel_count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parcel_search",
		Description: "Look up land parcels in the NSW, QLD and SA cadastre services",
	}, s.handleSearch)

	if s.ports.Export != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "parcel_export",
			Description: "Look up land parcels and export their boundaries to a KML file",
		}, s.handleExport)
	}
}

// handleSearch handles the parcel_search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	result, err := s.lookup(ctx, input.References, input.Jurisdictions)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Parcels: make([]ParcelOutput, len(result.Parcels)),
		Count:   len(result.Parcels),
	}

	for i := range result.Parcels {
		p := result.Parcels[i]
		out := ParcelOutput{
			Jurisdiction: p.Jurisdiction.String(),
			Source:       p.Source,
			Name:         p.Name,
		}
		if centroid, ok := p.Centroid(); ok {
			out.Latitude = centroid.Lat()
			out.Longitude = centroid.Lon()
		}
		output.Parcels[i] = out
	}

	for _, skipped := range result.Skipped {
		output.Skipped = append(output.Skipped, SkippedOutput{
			Entry:  skipped.Entry,
			Reason: skipped.Err.Error(),
		})
	}

	return nil, output, nil
}

// handleExport handles the parcel_export tool invocation.
func (s *Server) handleExport(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExportInput,
) (*mcp.CallToolResult, ExportOutput, error) {
	result, err := s.lookup(ctx, input.References, input.Jurisdictions)
	if err != nil {
		return nil, ExportOutput{}, err
	}

	path, err := s.ports.Export.Export(ctx, driving.ExportRequest{
		Parcels:   result.Parcels,
		Dir:       input.Dir,
		Filename:  input.Filename,
		Preset:    input.Preset,
		ColourHex: input.Colour,
		Opacity:   -1,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNothingToExport) {
			return nil, ExportOutput{}, errors.New("no parcels matched the given references")
		}
		return nil, ExportOutput{}, err
	}

	return nil, ExportOutput{
		Path:        path,
		ParcelCount: len(result.Parcels),
	}, nil
}

// lookup resolves jurisdiction names and runs the lookup service.
func (s *Server) lookup(ctx context.Context, references string, names []string) (*domain.LookupResult, error) {
	jurisdictions := make([]domain.Jurisdiction, 0, len(names))
	for _, name := range names {
		j, err := domain.ParseJurisdiction(name)
		if err != nil {
			return nil, err
		}
		jurisdictions = append(jurisdictions, j)
	}

	return s.ports.Lookup.Lookup(ctx, references, driving.LookupOptions{
		Jurisdictions: jurisdictions,
	})
}
