package engine

import (
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/fedtax/internal/testutil"
	"github.com/leapstack-labs/fedtax/pkg/tax"
)

func TestNew_NilLogger(t *testing.T) {
	e := New(Config{})
	require.NotNil(t, e)
	assert.Equal(t, 0.0, e.AnnualFederalTax("other", 1000))
}

func TestEngine_AnnualFederalTax(t *testing.T) {
	e := New(Config{Logger: testutil.NewTestLogger(t)})

	assert.Equal(t, 5448.5, e.AnnualFederalTax(tax.Single, 45000))
	assert.Equal(t, 159088.5, e.AnnualFederalTax(tax.Married, 600000))
}

func TestEngine_UnknownStatusLogsDiagnostic(t *testing.T) {
	logger, buf := testutil.NewCapturingLogger(slog.LevelWarn)
	e := New(Config{Logger: logger})

	got := e.AnnualFederalTax("other", 50000)

	assert.Equal(t, 0.0, got)
	assert.Contains(t, buf.String(), "Unknown filing status.")
	assert.Contains(t, buf.String(), "status=other")
}

func TestEngine_Estimate(t *testing.T) {
	e := New(Config{Logger: testutil.NewTestLogger(t)})

	tests := []struct {
		name   string
		status tax.FilingStatus
		income float64
		want   Estimate
	}{
		{
			name:   "single middle bracket",
			status: tax.Single,
			income: 45000,
			want: Estimate{
				TaxYear:          2021,
				TaxableIncome:    45000,
				FilingStatus:     tax.Single,
				AnnualTax:        5448.5,
				AnnualNetIncome:  39551.5,
				MonthlyNetIncome: 3295.9583333333335,
				MarginalRate:     .22,
				EffectiveRate:    5448.5 / 45000,
			},
		},
		{
			name:   "married first bracket",
			status: tax.Married,
			income: 10000,
			want: Estimate{
				TaxYear:          2021,
				TaxableIncome:    10000,
				FilingStatus:     tax.Married,
				AnnualTax:        1000,
				AnnualNetIncome:  9000,
				MonthlyNetIncome: 750,
				MarginalRate:     .10,
				EffectiveRate:    .1,
			},
		},
		{
			name:   "zero income",
			status: tax.Single,
			income: 0,
			want: Estimate{
				TaxYear:      2021,
				FilingStatus: tax.Single,
				MarginalRate: .10,
			},
		},
		{
			name:   "unknown status",
			status: "other",
			income: 1200,
			want: Estimate{
				TaxYear:          2021,
				TaxableIncome:    1200,
				FilingStatus:     "other",
				AnnualNetIncome:  1200,
				MonthlyNetIncome: 100,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Estimate(tt.status, tt.income)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("Estimate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEngine_Audit(t *testing.T) {
	e := New(Config{Logger: testutil.NewTestLogger(t)})

	found := e.Audit()
	require.Len(t, found, 1)
	assert.Equal(t, tax.Single, found[0].Status)
	assert.Equal(t, 40525.0, found[0].Threshold)
}
