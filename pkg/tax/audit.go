package tax

import "math"

// auditTolerance is half a cent; smaller differences are float noise.
const auditTolerance = 0.005

// Discrepancy describes a stored base-tax value that does not match the
// cumulative tax implied by the marginal schedule.
type Discrepancy struct {
	Status    FilingStatus `json:"status"`
	Index     int          `json:"index"`
	Threshold float64      `json:"threshold"`
	Stored    float64      `json:"stored"`
	Expected  float64      `json:"expected"`
}

// Difference returns Stored - Expected.
func (d Discrepancy) Difference() float64 {
	return d.Stored - d.Expected
}

// Audit recomputes the cumulative tax at each threshold and reports every
// stored base-tax entry that differs from it. Lookups keep using the stored
// values; the audit only reports.
func (t *Table) Audit() []Discrepancy {
	var found []Discrepancy
	expected := 0.0
	lower := 0.0
	for i, threshold := range t.thresholds {
		expected += float64((threshold - lower) * marginalRates[i])
		lower = threshold
		if math.Abs(t.baseTax[i]-expected) > auditTolerance {
			found = append(found, Discrepancy{
				Status:    t.status,
				Index:     i,
				Threshold: threshold,
				Stored:    t.baseTax[i],
				Expected:  expected,
			})
		}
	}
	return found
}
