// Package config handles loading and validating osgamelist configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// FileName is the name of the local configuration file in the database root
const FileName = "local-config.hcl"

// SectionGeneral is the section holding general settings
const SectionGeneral = "general"

// ErrMissingConfigKey is matched by every MissingConfigKeyError
var ErrMissingConfigKey = errors.New("missing config key")

// MissingConfigKeyError is returned when a section or key is not configured
type MissingConfigKeyError struct {
	Section string
	Key     string
	Path    string // Config file consulted, empty when running on defaults
}

func (e *MissingConfigKeyError) Error() string {
	where := "default configuration"
	if e.Path != "" {
		where = e.Path
	}
	return fmt.Sprintf("missing config key %q in section %q of %s", e.Key, e.Section, where)
}

// Is reports whether target is ErrMissingConfigKey
func (e *MissingConfigKeyError) Is(target error) bool {
	return target == ErrMissingConfigKey
}

// Config represents the osgamelist configuration
type Config struct {
	Version  int              `hcl:"version,attr"`
	Sections []*SectionConfig `hcl:"section,block"`
	Output   *OutputConfig    `hcl:"output,block"`
	Log      *LogConfig       `hcl:"log,block"`
	Check    *CheckConfig     `hcl:"check,block"`

	// Internal: path to the loaded config file (empty if using defaults)
	configPath string
	// Internal: evaluated section attributes
	values map[string]map[string]string
}

// SectionConfig is a free-form block of key/value settings
type SectionConfig struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// OutputConfig defines output settings
type OutputConfig struct {
	Format string `hcl:"format,optional"`
	Color  string `hcl:"color,optional"`
}

// LogConfig defines logging settings
type LogConfig struct {
	Level string `hcl:"level,optional"`
}

// CheckConfig defines data-quality check settings
type CheckConfig struct {
	FailOn string `hcl:"fail_on,optional"`
}

// ConfigPath returns the path to the loaded config file, or empty if using defaults
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Get returns the value of key in section. It fails with a
// *MissingConfigKeyError if either is absent.
func (c *Config) Get(section, key string) (string, error) {
	if values, ok := c.values[section]; ok {
		if v, ok := values[key]; ok {
			return v, nil
		}
	}
	return "", &MissingConfigKeyError{Section: section, Key: key, Path: c.configPath}
}

// GetGeneral returns key from the general section
func (c *Config) GetGeneral(key string) (string, error) {
	return c.Get(SectionGeneral, key)
}

// Section returns a copy of the settings of a section
func (c *Config) Section(name string) (map[string]string, bool) {
	values, ok := c.values[name]
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out, true
}

// SectionNames returns the configured section names, sorted
func (c *Config) SectionNames() []string {
	names := make([]string, 0, len(c.values))
	for name := range c.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set stores a value, creating the section if needed. It is meant for
// command line overrides applied after loading.
func (c *Config) Set(section, key, value string) {
	if c.values == nil {
		c.values = make(map[string]map[string]string)
	}
	if c.values[section] == nil {
		c.values[section] = make(map[string]string)
	}
	c.values[section][key] = value
}

// LogLevel returns the configured log level
func (c *Config) LogLevel() hclog.Level {
	if c.Log == nil || c.Log.Level == "" {
		return hclog.Warn
	}
	return hclog.LevelFromString(c.Log.Level)
}

// Load loads configuration from the specified path or searches for it
// Search order: configPath (if provided), local-config.hcl in rootDir
func Load(configPath, rootDir string) (*Config, error) {
	var path string

	if configPath != "" {
		path = configPath
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		path = findConfigFile(rootDir)
	}

	if path == "" {
		// No config found, use defaults
		return Default(), nil
	}

	return loadFromFile(path)
}

// findConfigFile looks for local-config.hcl in the database root
func findConfigFile(rootDir string) string {
	if rootDir == "" {
		return ""
	}
	path := filepath.Join(rootDir, FileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// loadFromFile loads and parses a configuration file
func loadFromFile(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", formatDiagnostics(diags))
	}

	var config Config
	decodeDiags := gohcl.DecodeBody(file.Body, nil, &config)
	if decodeDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", formatDiagnostics(decodeDiags))
	}

	config.configPath = path

	values, err := evalSections(config.Sections)
	if err != nil {
		return nil, err
	}
	config.values = values

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// evalSections evaluates the attributes of every section block to strings
func evalSections(sections []*SectionConfig) (map[string]map[string]string, error) {
	out := make(map[string]map[string]string, len(sections))
	for _, s := range sections {
		if _, dup := out[s.Name]; dup {
			return nil, fmt.Errorf("duplicate config section: %s", s.Name)
		}
		attrs, diags := s.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid section %q: %s", s.Name, formatDiagnostics(diags))
		}

		values := make(map[string]string, len(attrs))
		for name, attr := range attrs {
			v, err := attrString(attr)
			if err != nil {
				return nil, fmt.Errorf("section %q: %w", s.Name, err)
			}
			values[name] = v
		}
		out[s.Name] = values
	}
	return out, nil
}

// attrString evaluates an attribute without variables and converts it to a string
func attrString(attr *hcl.Attribute) (string, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf("attribute %q: %s", attr.Name, formatDiagnostics(diags))
	}
	if val.IsNull() || !val.IsKnown() {
		return "", fmt.Errorf("attribute %q has no value", attr.Name)
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("attribute %q must be a string, number or bool: %w", attr.Name, err)
	}
	return str.AsString(), nil
}

// formatDiagnostics formats HCL diagnostics into a readable error string
func formatDiagnostics(diags hcl.Diagnostics) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, diag := range diags {
		if i > 0 {
			b.WriteString("; ")
		}
		if diag.Subject != nil {
			fmt.Fprintf(&b, "%s:%d: ", diag.Subject.Filename, diag.Subject.Start.Line)
		}
		b.WriteString(diag.Summary)
		if diag.Detail != "" {
			b.WriteString(": ")
			b.WriteString(diag.Detail)
		}
	}
	return b.String()
}

// applyDefaults fills in default values for missing optional config blocks
func applyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.values == nil {
		cfg.values = make(map[string]map[string]string)
	}

	if cfg.Output == nil {
		cfg.Output = defaults.Output
	} else {
		if cfg.Output.Format == "" {
			cfg.Output.Format = defaults.Output.Format
		}
		if cfg.Output.Color == "" {
			cfg.Output.Color = defaults.Output.Color
		}
	}

	if cfg.Log == nil {
		cfg.Log = defaults.Log
	} else if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	if cfg.Check == nil {
		cfg.Check = defaults.Check
	} else if cfg.Check.FailOn == "" {
		cfg.Check.FailOn = defaults.Check.FailOn
	}
}
