package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/fedtax/internal/cli/testutil"
	"github.com/leapstack-labs/fedtax/pkg/tax"
)

func TestCheckCommand_Markdown(t *testing.T) {
	cmd := NewCheckCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute(), "findings are informational")

	out := buf.String()
	testutil.AssertValidMarkdown(t, out)
	testutil.AssertContainsAll(t, out,
		"# Bracket Table Check (2021)",
		"- [ ] Single  1 discrepancy",
		"- [x] Married  consistent",
		"## Discrepancies",
		"- Single at $ 40525.00: stored $ 4464.00, schedule gives $ 4664.00 (-200.00)",
	)
}

func TestCheckCommand_JSON(t *testing.T) {
	cmd := NewCheckCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.ExecuteContext(jsonContext()))

	var got CheckOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, tax.TaxYear, got.TaxYear)
	assert.Equal(t, []TableCheck{
		{Status: tax.Single, Consistent: false, Discrepancies: 1},
		{Status: tax.Married, Consistent: true, Discrepancies: 0},
	}, got.Tables)

	require.Len(t, got.Discrepancies, 1)
	d := got.Discrepancies[0]
	assert.Equal(t, tax.Single, d.Status)
	assert.Equal(t, 40525.0, d.Threshold)
	assert.Equal(t, 4464.0, d.Stored)
	assert.InDelta(t, 4664.0, d.Expected, 1e-9)
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "0 discrepancies", pluralize(0, "discrepancy", "discrepancies"))
	assert.Equal(t, "1 discrepancy", pluralize(1, "discrepancy", "discrepancies"))
	assert.Equal(t, "3 discrepancies", pluralize(3, "discrepancy", "discrepancies"))
}
