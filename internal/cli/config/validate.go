package config

import (
	"fmt"

	"github.com/leapstack-labs/fedtax/internal/cli/output"
	"github.com/leapstack-labs/fedtax/pkg/tax"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		return fmt.Errorf("invalid output setting: %w", err)
	}
	if c.Status != "" {
		if _, err := tax.ParseFilingStatus(c.Status); err != nil {
			return fmt.Errorf("invalid status setting: %w", err)
		}
	}
	return nil
}

// FilingStatus returns the configured default status and whether one is set.
// Call Validate first; an invalid status reports false.
func (c *Config) FilingStatus() (tax.FilingStatus, bool) {
	if c.Status == "" {
		return "", false
	}
	status, err := tax.ParseFilingStatus(c.Status)
	if err != nil {
		return "", false
	}
	return status, true
}

// Mode returns the configured output mode, falling back to auto.
func (c *Config) Mode() output.Mode {
	mode, err := output.ParseMode(c.OutputFormat)
	if err != nil {
		return output.ModeAuto
	}
	return mode
}
