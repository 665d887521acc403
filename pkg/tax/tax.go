package tax

// MonthsPerYear converts annual amounts to monthly ones.
const MonthsPerYear = 12

// AnnualFederalTax returns the estimated annual federal tax on taxableIncome.
//
// Unsupported statuses return 0 rather than an error; callers that accept
// user input should validate with ParseFilingStatus first. No rounding is
// applied.
func AnnualFederalTax(status FilingStatus, taxableIncome float64) float64 {
	t, ok := TableFor(status)
	if !ok {
		return 0
	}
	return t.Tax(taxableIncome)
}

// MonthlyNetIncome returns income left per month after annual tax.
// The result may be negative.
func MonthlyNetIncome(taxableIncome, annualTax float64) float64 {
	return (taxableIncome - annualTax) / MonthsPerYear
}

// EffectiveRate returns annualTax as a fraction of taxableIncome, or 0 when
// there is no income.
func EffectiveRate(taxableIncome, annualTax float64) float64 {
	if taxableIncome == 0 {
		return 0
	}
	return annualTax / taxableIncome
}
