package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/fedtax/internal/cli/config"
	"github.com/leapstack-labs/fedtax/internal/cli/output"
)

// ConfigField describes one fedtax.yaml key.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
}

// getConfigSchema returns the configuration keys.
// This is based on internal/cli/config/types.go Config.
func getConfigSchema() []ConfigField {
	return []ConfigField{
		{Name: "status", Type: "string", Default: config.DefaultStatus, Description: "Default filing status: single or married. Empty means ask"},
		{Name: "output", Type: "string", Default: config.DefaultOutput, Description: "Output format: " + strings.Join(output.Modes(), ", ")},
		{Name: "verbose", Type: "bool", Default: "false", Description: "Log debug details to stderr"},
		{Name: "history_file", Type: "string", Default: config.DefaultHistoryFile, Description: "Interactive prompt history file. Empty disables history"},
	}
}

// generateConfigDocs writes the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(outDir, "configuration.md"), configurationPage(), 0600); err != nil {
		return fmt.Errorf("failed to generate configuration.md: %w", err)
	}
	log.Printf("  Generated configuration.md")

	return nil
}

func configurationPage() []byte {
	w := NewMarkdownWriter()

	w.Frontmatter("Configuration", "fedtax configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("fedtax reads %s from the working directory, falling back to %s in the user config directory. Run %s to write one with the defaults.",
		InlineCode(config.ConfigFileName),
		InlineCode(filepath.Join("fedtax", config.ConfigFileName)),
		InlineCode("fedtax init")))

	w.Header(2, "Keys")
	headers := []string{"Key", "Type", "Default", "Environment", "Description"}
	var rows [][]string
	for _, f := range getConfigSchema() {
		defVal := f.Default
		if defVal == "" {
			defVal = "-"
		}
		rows = append(rows, []string{
			InlineCode(f.Name),
			f.Type,
			InlineCode(defVal),
			InlineCode(config.EnvPrefix + strings.ToUpper(f.Name)),
			f.Description,
		})
	}
	w.Table(headers, rows)

	w.Header(2, "Precedence")
	w.Paragraph("Later sources override earlier ones:")
	w.BulletList([]string{
		"Built-in defaults",
		"Config file",
		"Environment variables",
		"Command-line flags",
	})

	return w.Bytes()
}
