package tax

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownFilingStatus is returned when a filing status is not supported.
var ErrUnknownFilingStatus = errors.New("unknown filing status")

// FilingStatus is the taxpayer category that selects a bracket table.
type FilingStatus string

// Supported filing statuses.
const (
	Single  FilingStatus = "single"
	Married FilingStatus = "married"
)

// Statuses returns the supported filing statuses in display order.
func Statuses() []FilingStatus {
	return []FilingStatus{Single, Married}
}

// Valid reports whether s is a supported filing status.
func (s FilingStatus) Valid() bool {
	return s == Single || s == Married
}

// String returns the lowercase status name.
func (s FilingStatus) String() string {
	return string(s)
}

// Title returns the status name title-cased for display ("Single").
func (s FilingStatus) Title() string {
	return cases.Title(language.English).String(string(s))
}

// ParseFilingStatus converts user input to a FilingStatus.
// Input is trimmed and case-folded, so "  MARRIED" parses as Married.
func ParseFilingStatus(input string) (FilingStatus, error) {
	folded := cases.Fold().String(strings.TrimSpace(input))
	status := FilingStatus(folded)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q (expected single or married)", ErrUnknownFilingStatus, input)
	}
	return status, nil
}
