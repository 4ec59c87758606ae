package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driving"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [references]",
	Short: "Look up parcels in the cadastre services",
	Long: `Parses lot and plan references and queries the enabled cadastre
services. References are separated by commas, semicolons or newlines;
"and" and "&" also act as separators.

With no jurisdiction flag every configured jurisdiction is queried and
each reference goes to whichever jurisdictions can parse it.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	addJurisdictionFlags(searchCmd)
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if lookupService == nil {
		return errors.New("lookup service not configured")
	}

	jurisdictions, err := jurisdictionsFromFlags(cmd)
	if err != nil {
		return err
	}

	result, err := lookupService.Lookup(cmd.Context(), args[0], driving.LookupOptions{
		Jurisdictions: jurisdictions,
	})
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	if searchJSON {
		return outputLookupJSON(cmd, result)
	}

	return outputLookupTable(cmd, result)
}

// lookupJSON is the stable JSON shape for --json output.
type lookupJSON struct {
	Parcels []parcelJSON      `json:"parcels"`
	Skipped []skippedJSON     `json:"skipped,omitempty"`
	Errors  map[string]string `json:"service_errors,omitempty"`
}

type parcelJSON struct {
	Jurisdiction string         `json:"jurisdiction"`
	Source       string         `json:"source"`
	Name         string         `json:"name"`
	Attributes   map[string]any `json:"attributes,omitempty"`
}

type skippedJSON struct {
	Entry  string `json:"entry"`
	Reason string `json:"reason"`
}

func outputLookupJSON(cmd *cobra.Command, result *domain.LookupResult) error {
	out := lookupJSON{
		Parcels: make([]parcelJSON, 0, len(result.Parcels)),
	}
	for _, p := range result.Parcels {
		out.Parcels = append(out.Parcels, parcelJSON{
			Jurisdiction: p.Jurisdiction.String(),
			Source:       p.Source,
			Name:         p.Name,
			Attributes:   p.Attributes,
		})
	}
	for _, skipped := range result.Skipped {
		out.Skipped = append(out.Skipped, skippedJSON{
			Entry:  skipped.Entry,
			Reason: skipped.Err.Error(),
		})
	}
	if len(result.ServiceErrors) > 0 {
		out.Errors = make(map[string]string, len(result.ServiceErrors))
		for j, err := range result.ServiceErrors {
			out.Errors[j.String()] = err.Error()
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputLookupTable(cmd *cobra.Command, result *domain.LookupResult) error {
	if len(result.Parcels) == 0 {
		cmd.Println("No parcels found.")
	} else {
		cmd.Printf("Parcels (%d):\n\n", len(result.Parcels))
		for i, p := range result.Parcels {
			cmd.Printf("  [%d] %s (%s)\n", i+1, p.Name, p.Jurisdiction)
			if centroid, ok := p.Centroid(); ok {
				cmd.Printf("      %.6f, %.6f\n", centroid.Lat(), centroid.Lon())
			}
		}
		cmd.Println()
	}

	if len(result.Skipped) > 0 {
		cmd.Printf("Skipped (%d):\n", len(result.Skipped))
		for _, skipped := range result.Skipped {
			cmd.Printf("  %s: %v\n", skipped.Entry, skipped.Err)
		}
		cmd.Println()
	}

	for _, j := range domain.AllJurisdictions() {
		if err, ok := result.ServiceErrors[j]; ok {
			cmd.Printf("Warning: %s service failed: %v\n", j, err)
		}
	}

	return nil
}
