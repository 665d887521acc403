package tax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnualFederalTax(t *testing.T) {
	tests := []struct {
		status   FilingStatus
		income   float64
		expected float64
	}{
		{Single, 45000, 5448.5},
		{Single, 100000, 18021},
		{Single, 0, 0},
		{Single, 100000000, 36964072.25},
		{Married, 10000, 1000},
		{Married, 600000, 159088.5},
		{Married, 0, 0},
		{Married, 100000000, 36936522.5},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := AnnualFederalTax(tt.status, tt.income)
			assert.Equal(t, tt.expected, got, "AnnualFederalTax(%s, %v)", tt.status, tt.income)
		})
	}
}

func TestAnnualFederalTax_UnknownStatus(t *testing.T) {
	for _, status := range []FilingStatus{"other", "", "SINGLE", "head_of_household"} {
		assert.Equal(t, 0.0, AnnualFederalTax(status, 50000), "status %q", status)
	}
}

func TestAnnualFederalTax_ThresholdBelongsToUpperBracket(t *testing.T) {
	// 19900 is the first married threshold: tax is the stored base, and the
	// next dollar is taxed at the second rate.
	assert.Equal(t, 1990.0, AnnualFederalTax(Married, 19900))
	assert.InDelta(t, 1990.12, AnnualFederalTax(Married, 19901), 1e-9)
	assert.InDelta(t, 0.12, marriedTable.MarginalRate(19900), 1e-12)
	assert.InDelta(t, 0.10, marriedTable.MarginalRate(19899.99), 1e-12)
}

func TestAnnualFederalTax_DoesNotPanic(t *testing.T) {
	inputs := []float64{-50000, -0.5, 0.01, 1e15, math.MaxFloat64, math.Inf(1), math.NaN()}
	for _, status := range Statuses() {
		for _, income := range inputs {
			assert.NotPanics(t, func() { _ = AnnualFederalTax(status, income) })
		}
	}
	assert.Equal(t, -5000.0, AnnualFederalTax(Single, -50000))
}

func TestMonthlyNetIncome(t *testing.T) {
	tests := []struct {
		income   float64
		tax      float64
		expected float64
	}{
		{45000, 5448.5, 3295.9583333333335},
		{100000, 18021, 6831.583333333333},
		{0, 0, 0},
		{100000000, 36964072.25, 5252993.979166667},
		{10000, 1000, 750},
		{600000, 159088.5, 36742.625},
		{100000000, 36936522.5, 5255289.791666667},
	}

	for _, tt := range tests {
		got := MonthlyNetIncome(tt.income, tt.tax)
		assert.Equal(t, tt.expected, got, "MonthlyNetIncome(%v, %v)", tt.income, tt.tax)
	}
}

func TestMonthlyNetIncome_TimesTwelve(t *testing.T) {
	pairs := [][2]float64{{45000, 5448.5}, {1, 2}, {123456.78, 0}, {-10, 5}, {1e9, 3.7e8}}
	for _, p := range pairs {
		got := MonthlyNetIncome(p[0], p[1]) * MonthsPerYear
		assert.InDelta(t, p[0]-p[1], got, math.Abs(p[0]-p[1])*1e-15+1e-12)
	}
	assert.Less(t, MonthlyNetIncome(100, 200), 0.0)
}

func TestEffectiveRate(t *testing.T) {
	assert.Equal(t, 0.0, EffectiveRate(0, 0))
	assert.InDelta(t, 0.1, EffectiveRate(10000, 1000), 1e-12)
}

func TestAnnualFederalTax_NonNegativeAndMonotonic(t *testing.T) {
	for _, status := range Statuses() {
		table, _ := TableFor(status)
		audited := map[float64]bool{}
		for _, d := range table.Audit() {
			audited[d.Threshold] = true
		}

		prevIncome, prevTax := 0.0, 0.0
		for income := 0.0; income <= 800000; income += 25 {
			got := AnnualFederalTax(status, income)
			assert.GreaterOrEqual(t, got, 0.0, "%s at %v", status, income)
			if got < prevTax {
				// A drop is only allowed where the stored base tax is known to
				// disagree with the schedule.
				crossed := false
				for th := range audited {
					if prevIncome < th && th <= income {
						crossed = true
					}
				}
				assert.True(t, crossed, "%s: tax fell from %v at %v to %v at %v",
					status, prevTax, prevIncome, got, income)
			}
			prevIncome, prevTax = income, got
		}
	}
}

// leftLimit evaluates the bracket below threshold i at the threshold itself.
func leftLimit(t *Table, i int) float64 {
	th := t.thresholds[i]
	if i == 0 {
		return th * marginalRates[0]
	}
	return t.baseTax[i-1] + (th-t.thresholds[i-1])*marginalRates[i]
}

func TestTable_ContinuityAtThresholds(t *testing.T) {
	t.Run("married", func(t *testing.T) {
		for i, th := range marriedTable.thresholds {
			assert.InDelta(t, leftLimit(marriedTable, i), marriedTable.Tax(th), 1e-6, "threshold %v", th)
		}
	})

	t.Run("single", func(t *testing.T) {
		// The stored 4464 at 40525 is 200 below the schedule, which shows up
		// as a drop entering that bracket and a matching rise leaving it.
		jumps := map[float64]float64{40525: -200, 86375: 200}
		for i, th := range singleTable.thresholds {
			jump := singleTable.Tax(th) - leftLimit(singleTable, i)
			assert.InDelta(t, jumps[th], jump, 1e-6, "threshold %v", th)
		}
	})
}
