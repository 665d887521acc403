package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/fedtax/internal/cli/testutil"
	"github.com/leapstack-labs/fedtax/internal/engine"
	"github.com/leapstack-labs/fedtax/pkg/tax"
)

func runCalcCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewCalcCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestCalcCommand_Flags(t *testing.T) {
	out, err := runCalcCommand(t, "", "--income", "45000", "--status", "single")
	require.NoError(t, err)

	testutil.AssertContainsAll(t, out,
		"# Federal Tax Estimate (2021)",
		"- **Annual Gross Income:** $ 45000.00",
		"- **Filing Status:** Single",
		"- **Estimated Federal Tax:** $ 5448.50",
		"- **Yearly Net Income:** $ 39551.50",
		"- **Monthly Net Income:** $ 3295.96",
		"- **Marginal Rate:** 22.00%",
	)
	assert.NotContains(t, out, IncomePrompt, "no prompt expected when flags are given")
}

func TestCalcCommand_LargeAndGroupedIncome(t *testing.T) {
	out, err := runCalcCommand(t, "", "--income", "1_000_000", "--status", "married")
	require.NoError(t, err)
	assert.Contains(t, out, "- **Annual Gross Income:** $ 1000000.00")

	out, err = runCalcCommand(t, "", "--income", "100000000000000000000", "--status", "single")
	require.NoError(t, err)
	assert.Contains(t, out, "- **Annual Gross Income:** $ 100000000000000000000.00")
	assert.Contains(t, out, "- **Marginal Rate:** 37.00%")
}

func TestCalcCommand_PromptsForMissingValues(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		wantTax  string
		prompted []string
	}{
		{
			name:     "both prompted",
			stdin:    "100000\nmarried\n",
			wantTax:  "$ 13497.00",
			prompted: []string{IncomePrompt, StatusPrompt},
		},
		{
			name:     "income from flag",
			stdin:    "Single\n",
			args:     []string{"--income", "100000"},
			wantTax:  "$ 18021.00",
			prompted: []string{StatusPrompt},
		},
		{
			name:     "status from flag",
			stdin:    "x\n9950\n",
			args:     []string{"--status", "single"},
			wantTax:  "$ 995.00",
			prompted: []string{IncomePrompt, IncomeRetryMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCalcCommand(t, tt.stdin, tt.args...)
			require.NoError(t, err)

			assert.Contains(t, out, "- **Estimated Federal Tax:** "+tt.wantTax)
			testutil.AssertContainsAll(t, out, tt.prompted...)
		})
	}
}

func TestCalcCommand_Errors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		is    error
	}{
		{name: "bad income flag", args: []string{"--income", "ten", "--status", "single"}},
		{name: "bad status flag", args: []string{"--income", "10", "--status", "head"}, is: tax.ErrUnknownFilingStatus},
		{name: "input closed", stdin: "", is: ErrInputAborted},
		{name: "input closed before status", stdin: "500\n", is: ErrInputAborted},
		{name: "unexpected argument", args: []string{"500"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCalcCommand(t, tt.stdin, tt.args...)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func sampleEstimate() engine.Estimate {
	return engine.New(engine.Config{}).Estimate(tax.Single, 45000)
}

func TestRenderEstimate_Text(t *testing.T) {
	tr := testutil.NewTestRendererText()
	require.NoError(t, RenderEstimate(tr.Renderer, sampleEstimate()))

	lines := strings.Split(strings.TrimRight(testutil.StripANSI(tr.Output()), "\n"), "\n")
	assert.Equal(t, []string{
		"Annual Gross Income: $ 45000.00",
		"Filing status: Single",
		"__________",
		"",
		"Your estimated federal income taxes are $ 5448.50",
		"Your yearly net income is $ 39551.50",
		"Your monthly net income is $ 3295.96",
	}, lines)
}

func TestRenderEstimate_TextWithoutTTY(t *testing.T) {
	tr := testutil.NewTestRenderer("text", false)
	require.NoError(t, RenderEstimate(tr.Renderer, sampleEstimate()))

	testutil.AssertNoANSI(t, tr.Output())
	assert.Contains(t, tr.Output(), "Your monthly net income is $ 3295.96")
}

func TestRenderEstimate_Markdown(t *testing.T) {
	tr := testutil.NewTestRendererMarkdown()
	require.NoError(t, RenderEstimate(tr.Renderer, sampleEstimate()))

	out := tr.Output()
	testutil.AssertNoANSI(t, out)
	testutil.AssertValidMarkdown(t, out)
	testutil.AssertContainsAll(t, out,
		"# Federal Tax Estimate (2021)",
		"- **Effective Rate:** 12.11%",
	)
}

func TestRenderEstimate_JSON(t *testing.T) {
	tr := testutil.NewTestRendererJSON()
	require.NoError(t, RenderEstimate(tr.Renderer, sampleEstimate()))

	var got engine.Estimate
	require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &got))
	assert.Equal(t, sampleEstimate(), got)
	assert.Contains(t, tr.Output(), `"filing_status": "single"`)
}
