package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/fedtax/internal/cli/output"
	"github.com/leapstack-labs/fedtax/pkg/tax"
)

// CheckOutput is the JSON output for the check command.
type CheckOutput struct {
	TaxYear       int               `json:"tax_year"`
	Tables        []TableCheck      `json:"tables"`
	Discrepancies []tax.Discrepancy `json:"discrepancies"`
}

// TableCheck summarizes the audit of one table.
type TableCheck struct {
	Status        tax.FilingStatus `json:"status"`
	Consistent    bool             `json:"consistent"`
	Discrepancies int              `json:"discrepancies"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check bracket tables for internal consistency",
		Long: `Recompute the cumulative tax at every bracket threshold from the marginal
rates and compare it with the stored base tax used for estimates.

Findings are informational: estimates always use the stored values, so the
command exits successfully either way.`,
		Example: `  fedtax check
  fedtax check -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd)
		},
	}
}

func runCheck(cmd *cobra.Command) error {
	cc := NewCommandContext(cmd)
	r := cc.Renderer

	found := cc.Engine.Audit()
	out := CheckOutput{TaxYear: tax.TaxYear, Discrepancies: found}
	if out.Discrepancies == nil {
		out.Discrepancies = []tax.Discrepancy{}
	}
	for _, status := range tax.Statuses() {
		n := 0
		for _, d := range found {
			if d.Status == status {
				n++
			}
		}
		out.Tables = append(out.Tables, TableCheck{Status: status, Consistent: n == 0, Discrepancies: n})
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(out)
	}

	r.Header(1, fmt.Sprintf("Bracket Table Check (%d)", out.TaxYear))
	r.Println("")
	for _, tc := range out.Tables {
		if tc.Consistent {
			r.StatusLine(tc.Status.Title(), "success", "consistent")
			continue
		}
		r.StatusLine(tc.Status.Title(), "failed", pluralize(tc.Discrepancies, "discrepancy", "discrepancies"))
	}

	if len(found) == 0 {
		return nil
	}

	r.Println("")
	r.Header(2, "Discrepancies")
	r.Println("")
	for _, d := range found {
		r.Printf("- %s at %s: stored %s, schedule gives %s (%+.2f)\n",
			d.Status.Title(),
			output.FormatMoney(d.Threshold),
			output.FormatMoney(d.Stored),
			output.FormatMoney(d.Expected),
			d.Difference())
	}
	return nil
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
