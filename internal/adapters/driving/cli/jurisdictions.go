package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
)

// ConfigKeyJurisdictions lists the jurisdictions queried when no flag
// is given.
const ConfigKeyJurisdictions = "jurisdictions.enabled"

// addJurisdictionFlags registers one boolean flag per jurisdiction.
func addJurisdictionFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("nsw", false, "query the NSW cadastre")
	cmd.Flags().Bool("qld", false, "query the QLD cadastre")
	cmd.Flags().Bool("sa", false, "query the SA cadastre")
}

// jurisdictionsFromFlags resolves the jurisdictions to query. Flags win;
// with no flags set, the configured default applies; with neither, nil
// is returned and the lookup service queries everything.
func jurisdictionsFromFlags(cmd *cobra.Command) ([]domain.Jurisdiction, error) {
	var selected []domain.Jurisdiction
	for _, j := range domain.AllJurisdictions() {
		on, err := cmd.Flags().GetBool(strings.ToLower(string(j)))
		if err != nil {
			return nil, fmt.Errorf("reading %s flag: %w", j, err)
		}
		if on {
			selected = append(selected, j)
		}
	}
	if len(selected) > 0 {
		return selected, nil
	}

	if configStore != nil {
		for _, name := range configStore.GetStringSlice(ConfigKeyJurisdictions) {
			j, err := domain.ParseJurisdiction(name)
			if err != nil {
				return nil, fmt.Errorf("configured jurisdiction %q: %w", name, err)
			}
			selected = append(selected, j)
		}
	}
	return selected, nil
}
