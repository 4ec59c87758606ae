package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mappingkml/mappingkml-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [references]",
	Short: "Launch the interactive parcel picker",
	Long: `Launch the interactive terminal interface. Enter references, pick the
parcels you want from the results, choose a colour preset and export
them to KML.

Controls:
  up/k, down/j - Navigate parcels
  space        - Pick / unpick
  a            - Pick all / none
  p            - Cycle colour preset
  Enter        - Search / Export picked
  Esc          - Back / Quit
  q            - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if lookupService == nil || exportService == nil {
		return errors.New("services not configured")
	}

	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(&tui.Ports{
		Lookup: lookupService,
		Export: exportService,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())
	if len(args) > 0 {
		app.WithQuery(args[0])
	}

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
