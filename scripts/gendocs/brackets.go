package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/fedtax/internal/cli/output"
	"github.com/leapstack-labs/fedtax/pkg/tax"
)

// generateBracketDocs writes the tax bracket reference page.
func generateBracketDocs(outDir string) error {
	log.Printf("Generating bracket docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(outDir, "brackets.md"), bracketsPage(), 0600); err != nil {
		return fmt.Errorf("failed to generate brackets.md: %w", err)
	}
	log.Printf("  Generated brackets.md")

	return nil
}

func bracketsPage() []byte {
	w := NewMarkdownWriter()

	title := fmt.Sprintf("%d Tax Brackets", tax.TaxYear)
	w.Frontmatter(title, "Federal income tax brackets used by fedtax")
	w.GeneratedMarker()

	w.Header(1, title)
	w.Paragraph("Income up to the first threshold is taxed at the lowest rate. Above it, the tax is the " +
		"stored tax on all income below the bracket plus the bracket rate on the excess. " +
		"An income exactly at a threshold falls in the higher bracket.")

	for _, status := range tax.Statuses() {
		t, _ := tax.TableFor(status)

		w.Header(2, status.Title())
		var rows [][]string
		for _, b := range t.Brackets() {
			upper := output.FormatMoney(b.Upper)
			if b.OpenEnded {
				upper = "-"
			}
			rows = append(rows, []string{
				output.FormatMoney(b.Lower),
				upper,
				output.FormatPercent(b.Rate),
				output.FormatMoney(b.BaseTax),
			})
		}
		w.Table([]string{"Over", "But not over", "Rate", "Tax on income below"}, rows)
	}

	if found := auditAll(); len(found) > 0 {
		w.Header(2, "Known Discrepancies")
		w.Paragraph("These stored values differ from the cumulative tax computed from the rates. " +
			"Estimates use the stored values; see " + InlineCode("fedtax check") + ".")
		var items []string
		for _, d := range found {
			items = append(items, fmt.Sprintf("%s at %s: stored %s, schedule gives %s",
				d.Status.Title(),
				output.FormatMoney(d.Threshold),
				output.FormatMoney(d.Stored),
				output.FormatMoney(d.Expected)))
		}
		w.BulletList(items)
	}

	return w.Bytes()
}

func auditAll() []tax.Discrepancy {
	var found []tax.Discrepancy
	for _, status := range tax.Statuses() {
		t, _ := tax.TableFor(status)
		found = append(found, t.Audit()...)
	}
	return found
}
