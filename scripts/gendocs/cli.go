package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/fedtax/internal/cli"
	"github.com/leapstack-labs/fedtax/internal/cli/commands"
	"github.com/leapstack-labs/fedtax/internal/cli/config"
)

// generateCLIDocs writes the CLI index and one page per command.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()

	names := []string{"index.md"}
	pages := map[string][]byte{"index.md": cliIndexPage(root)}
	for _, cmd := range documentedCommands(root) {
		name := cmd.Name() + ".md"
		names = append(names, name)
		pages[name] = commandPage(cmd)
	}

	for _, name := range names {
		if err := os.WriteFile(filepath.Join(outDir, name), pages[name], 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		log.Printf("  Generated %s", name)
	}
	return nil
}

func documentedCommands(root *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Hidden || cmd.Name() == "help" {
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

// setsConfig reports whether cmd's own flags override config keys. Only the
// calculator's do; the root shares them.
func setsConfig(cmd *cobra.Command) bool {
	return cmd.Name() == "calc"
}

func cliIndexPage(root *cobra.Command) []byte {
	w := NewMarkdownWriter()

	w.Frontmatter("CLI Reference", "Command-line reference for fedtax")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(root.Long)

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range documentedCommands(root) {
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name()),
			InlineCode(cmd.UseLine()),
			cleanDescription(cmd.Short),
		})
	}
	w.Table([]string{"Command", "Usage", "Description"}, rows)

	w.Header(2, "Supplying Inputs")
	w.Paragraph("Running " + InlineCode("fedtax") + " without a subcommand is the same as " +
		InlineCode("fedtax calc") + ". Each input is taken from the first source that has it:")
	w.BulletList([]string{
		"income: " + InlineCode("--income") + ", otherwise the income prompt",
		"filing status: " + InlineCode("--status") + ", then " +
			InlineCode(config.EnvPrefix+"STATUS") + ", then " + InlineCode("status") +
			" in " + InlineCode(config.ConfigFileName) + ", otherwise the status prompt",
	})
	writePromptSection(w)

	w.Header(2, "Global Options")
	w.Paragraph("Available on every command. Options with an environment variable can also be set in " +
		InlineCode(config.ConfigFileName) + "; flags win over environment variables, which win over the file.")
	writeFlagsTable(w, root.PersistentFlags(), true)

	w.Header(2, "Exit Codes")
	w.Table([]string{"Code", "Meaning"}, [][]string{
		{InlineCode("0"), "Estimate printed, or the command completed"},
		{InlineCode("1"), fmt.Sprintf("Invalid flag, setting or argument, or %s (input closed before a valid answer)",
			InlineCode(commands.ErrInputAborted.Error()))},
	})

	return w.Bytes()
}

func commandPage(cmd *cobra.Command) []byte {
	w := NewMarkdownWriter()

	w.Frontmatter(cmd.Name(), cleanDescription(cmd.Short))
	w.GeneratedMarker()

	w.Header(1, cmd.CommandPath())
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}

	w.Header(2, "Usage")
	w.CodeBlock("bash", cmd.UseLine())

	if cmd.HasAvailableLocalFlags() {
		w.Header(2, "Options")
		writeFlagsTable(w, cmd.LocalFlags(), setsConfig(cmd))
	}

	if setsConfig(cmd) {
		writePromptSection(w)
	}

	var globals []string
	cmd.Root().PersistentFlags().VisitAll(func(f *pflag.Flag) {
		globals = append(globals, InlineCode("--"+f.Name))
	})
	w.Paragraph("Global options (" + strings.Join(globals, ", ") + ") are listed in the [CLI reference](/cli).")

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", dedentExample(cmd.Example))
	}

	return w.Bytes()
}

// writePromptSection documents the interactive prompts with their exact text.
func writePromptSection(w *MarkdownWriter) {
	w.Header(3, "Interactive Prompts")
	w.Paragraph("Missing inputs are asked for on the terminal. Invalid answers are asked again; " +
		"closing the input ends the run with exit code 1.")
	w.Table([]string{"Input", "Prompt", "On invalid answer"}, [][]string{
		{"Income", InlineCode(strings.TrimSpace(commands.IncomePrompt)), InlineCode(commands.IncomeRetryMessage)},
		{"Filing status", InlineCode(strings.TrimSpace(commands.StatusQuestion)) + " " +
			InlineCode(strings.TrimSpace(commands.StatusPrompt)), "The question is repeated"},
	})
}

// writeFlagsTable lists flags. When bindsConfig is set, flags that override
// a config key show the matching environment variable.
func writeFlagsTable(w *MarkdownWriter, flags *pflag.FlagSet, bindsConfig bool) {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Name == "help" {
			return
		}

		option := InlineCode("--" + f.Name)
		if f.Shorthand != "" {
			option += ", " + InlineCode("-"+f.Shorthand)
		}

		def := "-"
		if f.DefValue != "" {
			def = InlineCode(f.DefValue)
		}

		env := "-"
		if key, ok := config.FlagKey(f.Name); ok && bindsConfig {
			env = InlineCode(config.EnvPrefix + strings.ToUpper(key))
		}

		rows = append(rows, []string{option, def, env, cleanDescription(f.Usage)})
	})
	w.Table([]string{"Option", "Default", "Environment", "Description"}, rows)
}

// dedentExample strips the two-space indent cobra examples are written with.
func dedentExample(example string) string {
	lines := strings.Split(example, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, "  ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
