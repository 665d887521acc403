package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/fedtax/pkg/tax"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display fedtax version and the tax year its brackets cover.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "fedtax v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Federal income tax estimator (%d brackets)\n", tax.TaxYear)
		},
	}
}
