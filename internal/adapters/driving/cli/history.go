package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all search history",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "maximum number of records (0 = default)")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	records, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No search history.")
		return nil
	}

	for _, r := range records {
		jurisdictions := make([]string, 0, len(r.Jurisdictions))
		for _, j := range r.Jurisdictions {
			jurisdictions = append(jurisdictions, j.String())
		}

		cmd.Printf("  %s  [%s]  %d parcels", r.CreatedAt.Local().Format("2006-01-02 15:04"),
			strings.Join(jurisdictions, ","), r.ParcelCount)
		if r.SkippedCount > 0 {
			cmd.Printf(", %d skipped", r.SkippedCount)
		}
		cmd.Println()
		cmd.Printf("      %s\n", r.RawInput)
	}

	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if err := historyService.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}

	cmd.Println("Search history cleared.")
	return nil
}
