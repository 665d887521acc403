package tax

import "sort"

// TaxYear is the tax year the bracket tables describe.
const TaxYear = 2021

// marginalRates is shared by every table. The first rate applies below the
// first threshold, the last rate above the last threshold.
var marginalRates = []float64{.10, .12, .22, .24, .32, .35, .37}

// Table is a progressive bracket schedule for one filing status.
// Tables are package-level values and are never modified.
type Table struct {
	status     FilingStatus
	thresholds []float64
	baseTax    []float64
}

var (
	singleTable = &Table{
		status:     Single,
		thresholds: []float64{9950, 40525, 86375, 164925, 209425, 523600},
		baseTax:    []float64{995, 4464, 14751, 33603, 47843, 157804.25},
	}

	marriedTable = &Table{
		status:     Married,
		thresholds: []float64{19900, 81050, 172750, 329850, 418850, 628300},
		baseTax:    []float64{1990, 9328, 29502, 67206, 95686, 168993.50},
	}
)

// TableFor returns the bracket table for a filing status.
// Returns nil and false for unsupported statuses.
func TableFor(status FilingStatus) (*Table, bool) {
	switch status {
	case Single:
		return singleTable, true
	case Married:
		return marriedTable, true
	default:
		return nil, false
	}
}

// Status returns the filing status the table applies to.
func (t *Table) Status() FilingStatus {
	return t.status
}

// Thresholds returns a copy of the ascending bracket thresholds.
func (t *Table) Thresholds() []float64 {
	return append([]float64(nil), t.thresholds...)
}

// Rates returns a copy of the marginal rates. It has one more entry than Thresholds.
func (t *Table) Rates() []float64 {
	return append([]float64(nil), marginalRates...)
}

// BaseTax returns a copy of the cumulative tax owed at each threshold.
func (t *Table) BaseTax() []float64 {
	return append([]float64(nil), t.baseTax...)
}

// index returns the number of thresholds <= income (bisect-right), so an
// income exactly on a threshold belongs to the bracket above it.
func (t *Table) index(income float64) int {
	return sort.Search(len(t.thresholds), func(i int) bool {
		return t.thresholds[i] > income
	})
}

// Tax returns the annual tax owed on income under this table.
func (t *Table) Tax(income float64) float64 {
	i := t.index(income)
	if i == 0 {
		return income * marginalRates[0]
	}
	// The explicit conversions keep each step individually rounded; without
	// them the compiler may fuse the multiply-add on some architectures.
	inBracket := float64((income - t.thresholds[i-1]) * marginalRates[i])
	return float64(t.baseTax[i-1] + inBracket)
}

// MarginalRate returns the rate applied to the last dollar of income.
func (t *Table) MarginalRate(income float64) float64 {
	return marginalRates[t.index(income)]
}

// Bracket is one row of a table: income in [Lower, Upper) is taxed at Rate
// on top of BaseTax. The top bracket has no upper bound.
type Bracket struct {
	Lower     float64 `json:"lower"`
	Upper     float64 `json:"upper,omitempty"`
	OpenEnded bool    `json:"open_ended,omitempty"`
	Rate      float64 `json:"rate"`
	BaseTax   float64 `json:"base_tax"`
}

// Brackets expands the table into display rows, lowest bracket first.
func (t *Table) Brackets() []Bracket {
	rows := make([]Bracket, 0, len(marginalRates))
	rows = append(rows, Bracket{
		Lower: 0,
		Upper: t.thresholds[0],
		Rate:  marginalRates[0],
	})
	for i := 1; i <= len(t.thresholds); i++ {
		b := Bracket{
			Lower:   t.thresholds[i-1],
			Rate:    marginalRates[i],
			BaseTax: t.baseTax[i-1],
		}
		if i < len(t.thresholds) {
			b.Upper = t.thresholds[i]
		} else {
			b.OpenEnded = true
		}
		rows = append(rows, b)
	}
	return rows
}
