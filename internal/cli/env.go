package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/osgamelist/internal/config"
	"github.com/jokarl/osgamelist/internal/output"
	"github.com/jokarl/osgamelist/internal/vocab"
)

// env is what every command needs: configuration, logger and vocabularies.
// It is built once per command invocation.
type env struct {
	cfg      *config.Config
	logger   hclog.Logger
	registry *vocab.Registry
}

func loadEnv() (*env, error) {
	cfg, err := config.Load(configFlag, rootFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	for _, s := range setFlags {
		section, key, value, err := parseOverride(s)
		if err != nil {
			return nil, err
		}
		cfg.Set(section, key, value)
	}

	level := cfg.LogLevel()
	if logLevelFlag != "" {
		if !config.ValidLogLevel(logLevelFlag) {
			return nil, fmt.Errorf("invalid --log-level value: %s", logLevelFlag)
		}
		level = hclog.LevelFromString(logLevelFlag)
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "osgamelist",
		Level:  level,
		Output: os.Stderr,
	})
	if path := cfg.ConfigPath(); path != "" {
		logger.Debug("loaded config", "path", path)
	}

	return &env{
		cfg:      cfg,
		logger:   logger,
		registry: vocab.NewRegistryWithLogger(logger.Named("vocab")),
	}, nil
}

// renderer picks the output format from the flag, falling back to config
func (e *env) renderer(w io.Writer, formatFlag, colorFlag string) (output.Renderer, error) {
	format := formatFlag
	if format == "" {
		format = e.cfg.Output.Format
	}
	if !output.IsValidFormat(format) {
		return nil, fmt.Errorf("invalid --format value: %s (must be one of %v)", format, output.ValidFormats())
	}

	mode := colorFlag
	if mode == "" {
		mode = e.cfg.Output.Color
	}
	colorEnabled, err := shouldUseColor(w, mode)
	if err != nil {
		return nil, err
	}
	return output.NewRenderer(output.Format(format), colorEnabled), nil
}

// parseOverride splits a --set value of the form section.key=value
func parseOverride(s string) (section, key, value string, err error) {
	name, value, ok := strings.Cut(s, "=")
	if ok {
		section, key, ok = strings.Cut(name, ".")
	}
	if !ok || section == "" || key == "" {
		return "", "", "", fmt.Errorf("invalid --set value %q (must be section.key=value)", s)
	}
	return section, key, value, nil
}

func shouldUseColor(w io.Writer, mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		// Only color terminals
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		stat, err := f.Stat()
		if err != nil {
			return false, nil
		}
		return (stat.Mode() & os.ModeCharDevice) != 0, nil
	default:
		return false, fmt.Errorf("invalid --color value: %s (must be 'auto', 'always', or 'never')", mode)
	}
}
