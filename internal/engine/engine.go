// Package engine provides the tax estimation engine used by the CLI.
// It wraps the pure calculations in pkg/tax with logging and assembles the
// figures shown to the user.
package engine

import (
	"log/slog"

	"github.com/leapstack-labs/fedtax/pkg/tax"
)

// Engine computes federal tax estimates.
type Engine struct {
	// Structured logger
	logger *slog.Logger
}

// Config holds engine configuration.
type Config struct {
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// Estimate is the full result of one calculation.
type Estimate struct {
	TaxYear          int              `json:"tax_year"`
	TaxableIncome    float64          `json:"taxable_income"`
	FilingStatus     tax.FilingStatus `json:"filing_status"`
	AnnualTax        float64          `json:"annual_federal_tax"`
	AnnualNetIncome  float64          `json:"annual_net_income"`
	MonthlyNetIncome float64          `json:"monthly_net_income"`
	MarginalRate     float64          `json:"marginal_rate"`
	EffectiveRate    float64          `json:"effective_rate"`
}

// New creates a new engine.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{logger: logger}
}

// AnnualFederalTax returns the annual tax for income under status.
// An unsupported status yields 0 and logs a warning.
func (e *Engine) AnnualFederalTax(status tax.FilingStatus, income float64) float64 {
	if !status.Valid() {
		e.logger.Warn("Unknown filing status.", "status", string(status))
		return 0
	}
	return tax.AnnualFederalTax(status, income)
}

// Estimate computes every figure reported for one income and status.
func (e *Engine) Estimate(status tax.FilingStatus, income float64) Estimate {
	annual := e.AnnualFederalTax(status, income)
	monthly := tax.MonthlyNetIncome(income, annual)

	est := Estimate{
		TaxYear:          tax.TaxYear,
		TaxableIncome:    income,
		FilingStatus:     status,
		AnnualTax:        annual,
		AnnualNetIncome:  monthly * tax.MonthsPerYear,
		MonthlyNetIncome: monthly,
		EffectiveRate:    tax.EffectiveRate(income, annual),
	}
	if table, ok := tax.TableFor(status); ok {
		est.MarginalRate = table.MarginalRate(income)
	}

	e.logger.Debug("computed estimate",
		"status", string(status),
		"income", income,
		"annual_tax", annual,
		"monthly_net", monthly)

	return est
}

// Audit reports base-tax discrepancies across all bracket tables.
func (e *Engine) Audit() []tax.Discrepancy {
	var found []tax.Discrepancy
	for _, status := range tax.Statuses() {
		table, _ := tax.TableFor(status)
		d := table.Audit()
		e.logger.Debug("audited bracket table", "status", string(status), "discrepancies", len(d))
		found = append(found, d...)
	}
	return found
}
