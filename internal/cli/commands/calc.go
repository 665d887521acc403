package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/fedtax/internal/cli/output"
	"github.com/leapstack-labs/fedtax/internal/engine"
	"github.com/leapstack-labs/fedtax/pkg/tax"
)

// CalcOptions holds options for the calc command.
type CalcOptions struct {
	Income string
	Status string
}

// NewCalcCommand creates the calc command.
func NewCalcCommand() *cobra.Command {
	opts := &CalcOptions{}
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Estimate federal income tax and net income",
		Long: `Estimate annual federal income tax and resulting net income from your
taxable income and filing status, using the 2021 tax brackets.

Values not given as flags (or, for the status, in fedtax.yaml) are asked for
interactively. Invalid answers are re-prompted.

Output adapts to environment:
  - Terminal: Styled text
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format (--output json)`,
		Example: `  # Interactive
  fedtax calc

  # Non-interactive
  fedtax calc --income 45000 --status single

  # JSON output for scripts
  fedtax calc --income 600000 --status married -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunCalc(cmd, opts)
		},
	}

	AddCalcFlags(cmd, opts)
	return cmd
}

// AddCalcFlags registers the calc flags on cmd. The root command uses it
// too, so running fedtax with no subcommand behaves like calc.
func AddCalcFlags(cmd *cobra.Command, opts *CalcOptions) {
	cmd.Flags().StringVar(&opts.Income, "income", "", "Taxable income as a whole number")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Filing status: single or married")
	cmd.Flags().String("history-file", "", "File to keep interactive prompt history in")

	_ = cmd.RegisterFlagCompletionFunc("status", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(tax.Statuses()))
		for _, s := range tax.Statuses() {
			names = append(names, s.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// RunCalc collects inputs, computes the estimate and renders it.
func RunCalc(cmd *cobra.Command, opts *CalcOptions) error {
	cc := NewCommandContext(cmd)

	var (
		income    float64
		incomeSet bool
		status    tax.FilingStatus
		statusSet bool
	)

	if cmd.Flags().Changed("income") {
		v, err := ParseIncome(opts.Income)
		if err != nil {
			return fmt.Errorf("invalid --income: %w", err)
		}
		income, incomeSet = v, true
	}

	switch {
	case cmd.Flags().Changed("status"):
		v, err := tax.ParseFilingStatus(opts.Status)
		if err != nil {
			return fmt.Errorf("invalid --status: %w", err)
		}
		status, statusSet = v, true
	default:
		status, statusSet = cc.Cfg.FilingStatus()
	}

	if !incomeSet || !statusSet {
		reader, err := newLineReader(cmd, cc.Cfg.HistoryFile)
		if err != nil {
			return err
		}
		defer func() { _ = reader.Close() }()

		p := NewPrompter(reader, cmd.OutOrStdout())
		if !incomeSet {
			if income, err = p.Income(); err != nil {
				return err
			}
		}
		if !statusSet {
			if status, err = p.FilingStatus(); err != nil {
				return err
			}
		}
	}

	cc.Logger.Debug("calculating estimate", "status", status.String(), "income", income)
	est := cc.Engine.Estimate(status, income)

	return RenderEstimate(cc.Renderer, est)
}

// RenderEstimate writes an estimate in the renderer's effective mode.
func RenderEstimate(r *output.Renderer, est engine.Estimate) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(est)
	case output.ModeMarkdown:
		renderEstimateMarkdown(r, est)
	default:
		renderEstimateText(r, est)
	}
	return nil
}

// renderEstimateText prints the classic calculator report.
func renderEstimateText(r *output.Renderer, est engine.Estimate) {
	styles := r.Styles()
	money := func(v float64) string { return styles.Money.Render(output.FormatMoney(v)) }

	r.Println("Annual Gross Income: " + money(est.TaxableIncome))
	r.Println("Filing status: " + styles.Bold.Render(est.FilingStatus.Title()))
	r.Println(styles.Muted.Render("__________"))
	r.Println("")
	r.Println("Your estimated federal income taxes are " + money(est.AnnualTax))
	r.Println("Your yearly net income is " + money(est.AnnualNetIncome))
	r.Println("Your monthly net income is " + money(est.MonthlyNetIncome))
}

func renderEstimateMarkdown(r *output.Renderer, est engine.Estimate) {
	r.Println(output.FormatHeader(1, fmt.Sprintf("Federal Tax Estimate (%d)", est.TaxYear)))
	r.Println("")
	r.Println(output.FormatKeyValue("Annual Gross Income", output.FormatMoney(est.TaxableIncome)))
	r.Println(output.FormatKeyValue("Filing Status", est.FilingStatus.Title()))
	r.Println(output.FormatKeyValue("Estimated Federal Tax", output.FormatMoney(est.AnnualTax)))
	r.Println(output.FormatKeyValue("Yearly Net Income", output.FormatMoney(est.AnnualNetIncome)))
	r.Println(output.FormatKeyValue("Monthly Net Income", output.FormatMoney(est.MonthlyNetIncome)))
	r.Println(output.FormatKeyValue("Marginal Rate", output.FormatPercent(est.MarginalRate)))
	r.Println(output.FormatKeyValue("Effective Rate", output.FormatPercent(est.EffectiveRate)))
}
