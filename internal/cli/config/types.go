// Package config provides configuration management for the fedtax CLI.
//
// Values are layered, lowest to highest precedence: built-in defaults,
// fedtax.yaml, FEDTAX_* environment variables, and explicitly set flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	// Status is the default filing status. Empty means prompt for it.
	Status       string `koanf:"status" yaml:"status"`
	OutputFormat string `koanf:"output" yaml:"output"`
	Verbose      bool   `koanf:"verbose" yaml:"verbose"`
	// HistoryFile keeps interactive prompt history. Empty disables history.
	HistoryFile string `koanf:"history_file" yaml:"history_file"`
}

// Default configuration values.
const (
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultStatus      = ""
	DefaultHistoryFile = ""

	// ConfigFileName is the name of the config file.
	ConfigFileName = "fedtax.yaml"
	// ConfigFileNameAlt is the alternate name of the config file.
	ConfigFileNameAlt = "fedtax.yml"

	// EnvPrefix prefixes environment variable overrides (FEDTAX_STATUS).
	EnvPrefix = "FEDTAX_"
)

// Default returns a Config holding the built-in defaults.
func Default() *Config {
	return &Config{
		Status:       DefaultStatus,
		OutputFormat: DefaultOutput,
		HistoryFile:  DefaultHistoryFile,
	}
}
