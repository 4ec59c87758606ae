package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
)

var parseJurisdiction string

var parseCmd = &cobra.Command{
	Use:   "parse [references]",
	Short: "Parse references without querying any service",
	Long: `Runs the input parsing layer for one jurisdiction and reports the
canonical identifiers, without any network calls. Useful for checking
how a batch of references will be interpreted before searching.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseJurisdiction, "jurisdiction", "j", "nsw", "jurisdiction grammar to use (nsw, qld, sa)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if lookupService == nil {
		return errors.New("lookup service not configured")
	}

	jurisdiction, err := domain.ParseJurisdiction(parseJurisdiction)
	if err != nil {
		return fmt.Errorf("%w: %q", err, parseJurisdiction)
	}

	results, err := lookupService.ParseOnly(args[0], jurisdiction)
	if err != nil {
		return err
	}

	for _, r := range results {
		if !r.OK() {
			cmd.Printf("  %-24s -> error: %v\n", r.Entry, r.Err.Err)
			continue
		}
		for _, id := range r.Identifiers {
			cmd.Printf("  %-24s -> %s\n", r.Entry, id.Canonical())
		}
	}

	return nil
}
