// Package tax estimates U.S. federal income tax from a fixed progressive
// bracket schedule.
//
// This package contains:
//   - Filing statuses and their parsing
//   - The bracket tables for a single tax year
//   - The bracket lookup (AnnualFederalTax) and net income arithmetic
//   - A consistency audit of the stored base-tax values
//
// Everything here is pure: no I/O, no logging, no package state beyond the
// immutable tables. Callers that need diagnostics wrap it (see internal/engine).
package tax
