package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/osgamelist/internal/types"
)

// Validate validates the configuration
func Validate(cfg *Config) error {
	// Version check
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (only version 1 is supported)", cfg.Version)
	}

	if cfg.Output != nil && cfg.Output.Format != "" {
		switch cfg.Output.Format {
		case "text", "json", "yaml":
			// valid
		default:
			return fmt.Errorf("invalid output format: %s (must be 'text', 'json' or 'yaml')", cfg.Output.Format)
		}
	}

	if cfg.Output != nil && cfg.Output.Color != "" {
		switch cfg.Output.Color {
		case "auto", "always", "never":
			// valid
		default:
			return fmt.Errorf("invalid color mode: %s (must be 'auto', 'always', or 'never')", cfg.Output.Color)
		}
	}

	if cfg.Log != nil && cfg.Log.Level != "" {
		if !ValidLogLevel(cfg.Log.Level) {
			return fmt.Errorf("invalid log level: %s (must be 'trace', 'debug', 'info', 'warn', 'error' or 'off')", cfg.Log.Level)
		}
	}

	if cfg.Check != nil && cfg.Check.FailOn != "" {
		if _, err := types.ParseSeverity(cfg.Check.FailOn); err != nil {
			return fmt.Errorf("invalid fail_on severity: %s (must be 'ERROR', 'WARNING', or 'NOTICE')", cfg.Check.FailOn)
		}
	}

	for name := range cfg.values {
		if name == "" {
			return fmt.Errorf("config section name must not be empty")
		}
	}

	return nil
}

// ValidLogLevel reports whether level names an hclog level
func ValidLogLevel(level string) bool {
	return hclog.LevelFromString(strings.TrimSpace(level)) != hclog.NoLevel
}
