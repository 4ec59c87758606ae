// Package cli implements the command line driving adapter. Commands are
// thin wrappers over the core services; all parcel parsing and querying
// lives behind the driving ports.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driven"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driving"
	"github.com/mappingkml/mappingkml-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Injected services. Set once from main before Execute.
var (
	lookupService  driving.LookupService
	exportService  driving.ExportService
	historyService driving.HistoryService
	configStore    driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "mappingkml",
	Short: "Search Australian cadastre services and export parcels to KML",
	Long: `MappingKML looks up land parcels in the NSW, QLD and SA cadastre
services from free-text lot and plan references, then exports the
matching boundaries to styled KML files.

Input accepts comma, semicolon or newline separated references, for
example:
  13//DP1242624          NSW lot and plan
  13/2//DP1242624        NSW lot, section and plan
  1-5//DP1242624         NSW lot range
  1RP912949              QLD lot/plan
  101//D12345            SA parcel and plan
  5213/925               SA volume/folio`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

// Services bundles everything the commands need.
type Services struct {
	Lookup  driving.LookupService
	Export  driving.ExportService
	History driving.HistoryService
	Config  driven.ConfigStore
}

// SetServices injects the core services into the command tree.
func SetServices(s Services) {
	lookupService = s.Lookup
	exportService = s.Export
	historyService = s.History
	configStore = s.Config
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
