package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/fedtax/internal/cli/config"
)

const configHeader = `# fedtax configuration.
#
# status:       default filing status (single or married); leave empty to be asked
# output:       auto, text, markdown or json
# verbose:      log debug details to stderr
# history_file: keep interactive prompt history here; leave empty to disable
#
# Every key can be overridden with FEDTAX_<KEY> environment variables and flags.
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter fedtax.yaml",
		Long: `Write a fedtax.yaml configuration file with the default settings and a short
description of each key.`,
		Example: `  # In the current directory
  fedtax init

  # Overwrite an existing file
  fedtax init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			cc := NewCommandContext(cmd)
			path, err := writeStarterConfig(dir, force)
			if err != nil {
				return err
			}
			cc.Logger.Debug("wrote config", "path", path)
			cc.Renderer.StatusLine(path, "success", "")
			cc.Renderer.Println("")
			cc.Renderer.Success("fedtax configured!")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

// writeStarterConfig writes the default config to dir/fedtax.yaml and
// returns the path written.
func writeStarterConfig(dir string, force bool) (string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, config.ConfigFileName)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists. Use --force to overwrite", path)
	}

	body, err := yaml.Marshal(config.Default())
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(configHeader+"\n"), body...), 0600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
