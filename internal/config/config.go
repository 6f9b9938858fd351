package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/compozy/getversion/internal/logger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Manifest readers.
const (
	ReaderCargo = "cargo"
	ReaderToml  = "toml"
)

type Config struct {
	ManifestPath string `mapstructure:"manifest_path"`
	Reader       string `mapstructure:"reader"`
	CargoBin     string `mapstructure:"cargo_bin"`
	LogLevel     string `mapstructure:"log_level"`
	RepoRoot     bool   `mapstructure:"repo_root"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ManifestPath: filepath.Join("botw-freecam", "Cargo.toml"),
		Reader:       ReaderCargo,
		CargoBin:     "cargo",
		LogLevel:     "warn",
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ManifestPath) == "" {
		return fmt.Errorf("manifest_path cannot be empty")
	}
	switch c.Reader {
	case ReaderCargo:
		if strings.TrimSpace(c.CargoBin) == "" {
			return fmt.Errorf("cargo_bin cannot be empty when reader is %q", ReaderCargo)
		}
	case ReaderToml:
	default:
		return fmt.Errorf("invalid reader: %q (expected %q or %q)", c.Reader, ReaderCargo, ReaderToml)
	}
	if _, ok := logger.ParseLogLevel(c.LogLevel); !ok {
		return fmt.Errorf("invalid log_level: %q", c.LogLevel)
	}
	return nil
}

// BindFlags registers the command line flags that override configuration values.
func BindFlags(flags *pflag.FlagSet) {
	defaults := DefaultConfig()
	flags.String("manifest-path", defaults.ManifestPath, "Path to the Cargo.toml to read")
	flags.String("reader", defaults.Reader, "Manifest reader: cargo or toml")
	flags.String("cargo-bin", defaults.CargoBin, "Cargo executable used by the cargo reader")
	flags.String("log-level", defaults.LogLevel, "Log level for diagnostics on stderr")
	flags.Bool("repo-root", defaults.RepoRoot, "Resolve a relative manifest path against the git worktree root")
}

// LoadConfig reads .get-version.yaml, GET_VERSION_* environment variables and the
// given flags, in increasing order of precedence. flags may be nil.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".get-version")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	// Configure environment variables
	v.SetEnvPrefix("GET_VERSION")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	// CARGO is the variable cargo itself exports to build scripts and subcommands
	if err := v.BindEnv("cargo_bin", "GET_VERSION_CARGO_BIN", "CARGO"); err != nil {
		return nil, fmt.Errorf("failed to bind cargo_bin env: %w", err)
	}
	defaults := DefaultConfig()
	v.SetDefault("manifest_path", defaults.ManifestPath)
	v.SetDefault("reader", defaults.Reader)
	v.SetDefault("cargo_bin", defaults.CargoBin)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("repo_root", defaults.RepoRoot)
	if flags != nil {
		for key, name := range map[string]string{
			"manifest_path": "manifest-path",
			"reader":        "reader",
			"cargo_bin":     "cargo-bin",
			"log_level":     "log-level",
			"repo_root":     "repo-root",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind %s flag: %w", name, err)
				}
			}
		}
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	config.Reader = strings.ToLower(strings.TrimSpace(config.Reader))
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
