// Package cli provides the command-line interface for fedtax.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/fedtax/internal/cli/commands"
	"github.com/leapstack-labs/fedtax/internal/cli/config"
	"github.com/leapstack-labs/fedtax/internal/cli/output"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string
	calcOpts := &commands.CalcOptions{}

	rootCmd := &cobra.Command{
		Use:   "fedtax",
		Short: "fedtax - Federal income tax estimator",
		Long: `fedtax estimates U.S. federal income tax and net income from your taxable
income and filing status, using the 2021 progressive tax brackets.

Run it without a subcommand to be asked for your income and filing status.`,
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, loadErr := loadValidConfig(cfgFile, configFlags(cmd))
			if loadErr != nil {
				// init --force exists to replace a broken config, so it runs on defaults.
				if cmd.Name() != "init" {
					return loadErr
				}
				cfg = config.Default()
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if loadErr != nil {
				logger.Warn("Ignoring invalid configuration.", "error", loadErr)
			}
			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)

			if configFile := config.GetConfigFileUsed(); configFile != "" {
				logger.Debug("using config file", "path", configFile)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return commands.RunCalc(cmd, calcOpts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Federal income tax estimator
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./fedtax.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|markdown|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.Modes(), cobra.ShellCompDirectiveNoFileComp
	})

	// Running fedtax with no subcommand behaves like calc
	commands.AddCalcFlags(rootCmd, calcOpts)

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewCalcCommand())
	rootCmd.AddCommand(commands.NewBracketsCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// loadValidConfig loads the layered configuration and validates it.
func loadValidConfig(cfgFile string, flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.LoadConfig(cfgFile, flags)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configFlags returns the flags that may override configuration for cmd.
// Only the calculator's own --status and --history-file set config keys;
// other subcommands contribute just the global flags.
func configFlags(cmd *cobra.Command) *pflag.FlagSet {
	if cmd == cmd.Root() || cmd.Name() == "calc" {
		return cmd.Flags()
	}
	return cmd.Root().PersistentFlags()
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for fedtax.

To load completions:

Bash:
  $ source <(fedtax completion bash)

Zsh:
  $ fedtax completion zsh > "${fpath[1]}/_fedtax"

Fish:
  $ fedtax completion fish | source

PowerShell:
  PS> fedtax completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
