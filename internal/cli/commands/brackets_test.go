package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/fedtax/internal/cli/config"
	"github.com/leapstack-labs/fedtax/internal/cli/testutil"
	"github.com/leapstack-labs/fedtax/pkg/tax"
)

// jsonContext returns a command context whose config selects JSON output.
func jsonContext() context.Context {
	cfg := config.Default()
	cfg.OutputFormat = "json"
	return config.WithConfig(context.Background(), cfg)
}

func TestBracketsCommand_Markdown(t *testing.T) {
	cmd := NewBracketsCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	testutil.AssertNoANSI(t, out)
	testutil.AssertValidMarkdown(t, out)
	testutil.AssertContainsAll(t, out,
		"## Single (2021)",
		"## Married (2021)",
		"Tax on income below",
		"$ 523600.00",
		"$ 628300.00",
		"$ 168993.50",
		"37.00%",
	)
}

func TestBracketsCommand_StatusFilter(t *testing.T) {
	cmd := NewBracketsCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--status", "Married"})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "## Married (2021)")
	assert.NotContains(t, buf.String(), "Single")
}

func TestBracketsCommand_InvalidStatus(t *testing.T) {
	cmd := NewBracketsCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--status", "joint"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, tax.ErrUnknownFilingStatus)
}

func TestBracketsCommand_JSON(t *testing.T) {
	cmd := NewBracketsCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--status", "single"})

	require.NoError(t, cmd.ExecuteContext(jsonContext()))

	var outputs []BracketsOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &outputs))
	require.Len(t, outputs, 1)

	got := outputs[0]
	assert.Equal(t, tax.TaxYear, got.TaxYear)
	assert.Equal(t, tax.Single, got.Status)
	require.Len(t, got.Brackets, 7)
	assert.Equal(t, tax.Bracket{Lower: 0, Upper: 9950, Rate: 0.10}, got.Brackets[0])
	assert.Equal(t, 4464.0, got.Brackets[2].BaseTax)
	assert.True(t, got.Brackets[6].OpenEnded)
	assert.Zero(t, got.Brackets[6].Upper)
}
