package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for MappingKML resources.
	uriScheme = "mappingkml://"

	// historyResourceLimit caps the records exposed through the resource.
	historyResourceLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the colour presets.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "presets",
		Name:        "presets",
		Description: "Available KML fill colour presets",
		MIMEType:    "application/json",
	}, s.handlePresetsResource)

	// Static resource for recent searches.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recent parcel searches",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// handlePresetsResource returns the preset names and their colours.
func (s *Server) handlePresetsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type presetInfo struct {
		Name   string `json:"name"`
		Colour string `json:"colour"`
	}

	names := domain.PresetNames()
	infos := make([]presetInfo, 0, len(names))
	for _, name := range names {
		hex, _ := domain.PresetColour(name)
		infos = append(infos, presetInfo{Name: name, Colour: hex})
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling presets: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleHistoryResource returns recent search records.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	records, err := s.ports.History.List(ctx, historyResourceLimit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	type recordInfo struct {
		Input         string   `json:"input"`
		Jurisdictions []string `json:"jurisdictions"`
		ParcelCount   int      `json:"parcel_count"`
		SkippedCount  int      `json:"skipped_count,omitempty"`
		CreatedAt     string   `json:"created_at"`
	}

	infos := make([]recordInfo, len(records))
	for i, r := range records {
		jurisdictions := make([]string, 0, len(r.Jurisdictions))
		for _, j := range r.Jurisdictions {
			jurisdictions = append(jurisdictions, j.String())
		}
		infos[i] = recordInfo{
			Input:         r.RawInput,
			Jurisdictions: jurisdictions,
			ParcelCount:   r.ParcelCount,
			SkippedCount:  r.SkippedCount,
			CreatedAt:     r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
