package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driving"
)

var (
	exportDir       string
	exportFile      string
	exportPreset    string
	exportColour    string
	exportOpacity   int
	exportLineWidth float64
)

var exportCmd = &cobra.Command{
	Use:   "export [references]",
	Short: "Look up parcels and export them to a KML file",
	Long: `Looks up the given references and writes every matched parcel to a
styled KML file.

The fill colour comes from --colour, or from a preset:
  subjects   #009FDF
  quotes     #A23F97
  sales      #FF0000
  for-sales  #ED7D31`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	addJurisdictionFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "", "output directory")
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "output file name")
	exportCmd.Flags().StringVar(&exportPreset, "preset", "", "colour preset ("+strings.Join(domain.PresetNames(), ", ")+")")
	exportCmd.Flags().StringVar(&exportColour, "colour", "", "custom fill colour as #RRGGBB")
	exportCmd.Flags().IntVar(&exportOpacity, "opacity", -1, "fill opacity 0-255")
	exportCmd.Flags().Float64Var(&exportLineWidth, "line-width", 0, "border width in pixels")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if lookupService == nil || exportService == nil {
		return errors.New("export service not configured")
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

	for _, skipped := range result.Skipped {
		cmd.Printf("Skipping %s: %v\n", skipped.Entry, skipped.Err)
	}
	for j, err := range result.ServiceErrors {
		cmd.Printf("Warning: %s service failed: %v\n", j, err)
	}

	path, err := exportService.Export(cmd.Context(), driving.ExportRequest{
		Parcels:   result.Parcels,
		Dir:       exportDir,
		Filename:  exportFile,
		Preset:    exportPreset,
		ColourHex: exportColour,
		Opacity:   exportOpacity,
		LineWidth: exportLineWidth,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNothingToExport) {
			cmd.Println("No parcels found; nothing to export.")
			return nil
		}
		return fmt.Errorf("export failed: %w", err)
	}

	cmd.Printf("Exported %d parcels to %s\n", len(result.Parcels), path)
	return nil
}
