package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/fedtax/internal/cli/output"
	"github.com/leapstack-labs/fedtax/pkg/tax"
)

// BracketsOptions holds options for the brackets command.
type BracketsOptions struct {
	Status string
}

// BracketsOutput is the JSON output for one bracket table.
type BracketsOutput struct {
	TaxYear  int              `json:"tax_year"`
	Status   tax.FilingStatus `json:"status"`
	Brackets []tax.Bracket    `json:"brackets"`
}

// NewBracketsCommand creates the brackets command.
func NewBracketsCommand() *cobra.Command {
	opts := &BracketsOptions{}
	cmd := &cobra.Command{
		Use:   "brackets",
		Short: "Show the federal tax bracket tables",
		Long: `Show the 2021 federal tax brackets used for estimates: the income range of
each bracket, its marginal rate, and the tax owed on all income below it.`,
		Example: `  # Both tables
  fedtax brackets

  # Married filing jointly only, as JSON
  fedtax brackets --status married -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrackets(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Status, "status", "", "Only show the table for this filing status")

	return cmd
}

func runBrackets(cmd *cobra.Command, opts *BracketsOptions) error {
	cc := NewCommandContext(cmd)
	r := cc.Renderer

	statuses := tax.Statuses()
	if opts.Status != "" {
		status, err := tax.ParseFilingStatus(opts.Status)
		if err != nil {
			return fmt.Errorf("invalid --status: %w", err)
		}
		statuses = []tax.FilingStatus{status}
	}

	outputs := make([]BracketsOutput, 0, len(statuses))
	for _, status := range statuses {
		t, _ := tax.TableFor(status)
		outputs = append(outputs, BracketsOutput{
			TaxYear:  tax.TaxYear,
			Status:   status,
			Brackets: t.Brackets(),
		})
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(outputs)
	}

	for i, out := range outputs {
		if i > 0 {
			r.Println("")
		}
		r.Header(2, fmt.Sprintf("%s (%d)", out.Status.Title(), out.TaxYear))
		if r.EffectiveMode() == output.ModeMarkdown {
			r.Println("")
		}
		renderBracketTable(r, out.Brackets)
	}
	return nil
}

// renderBracketTable writes a go-pretty table: boxed in text mode, a
// markdown table otherwise.
func renderBracketTable(r *output.Renderer, brackets []tax.Bracket) {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Over", "But not over", "Rate", "Tax on income below"})
	for _, b := range brackets {
		upper := output.FormatMoney(b.Upper)
		if b.OpenEnded {
			upper = "-"
		}
		t.AppendRow(table.Row{
			output.FormatMoney(b.Lower),
			upper,
			output.FormatPercent(b.Rate),
			output.FormatMoney(b.BaseTax),
		})
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}
