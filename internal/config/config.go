// Package config loads esgfocus settings from ~/.esgfocus/config.yaml (or
// $ESGFOCUS_HOME/config.yaml) and the factor-set files it points at.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/esgfocus/internal/logging"
)

// ConfigFileName is the name of the config file inside the config directory.
const ConfigFileName = "config.yaml"

// Defaults.
const (
	DefaultOutputFormat = "json,md"
	DefaultPrecision    = 2
	DefaultOutDir       = "."
	DefaultLogLevel     = "info"
	DefaultLogFormat    = logging.FormatConsole

	outputTypeFile = logging.OutputFile
	maxPrecision   = 6
)

// ErrInvalidConfig is returned when a config file has unusable values.
const ErrInvalidConfig = constError("invalid configuration")

// Config is the esgfocus configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"  json:"output"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Factors FactorsConfig `yaml:"factors" json:"factors"`

	// path is the file the config was loaded from, if any.
	path string
}

// OutputConfig controls report export.
type OutputConfig struct {
	// DefaultFormat is a comma-separated export format list, e.g. "json,md".
	DefaultFormat string `yaml:"default_format" json:"default_format"`
	// Precision is the number of decimals shown in terminal tables.
	Precision int `yaml:"precision" json:"precision"`
	// OutDir is where exported reports are written.
	OutDir string `yaml:"out_dir" json:"out_dir"`
}

// LoggingConfig controls the application logger.
type LoggingConfig struct {
	Level  string `yaml:"level"  json:"level"`
	Format string `yaml:"format" json:"format"`
	File   string `yaml:"file"   json:"file,omitempty"`
}

// FactorsConfig selects the emission factor set.
type FactorsConfig struct {
	// Path is a factor-set YAML file. Empty means the built-in set.
	Path string `yaml:"path" json:"path,omitempty"`
}

// Default returns a Config populated with built-in defaults only.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
			Precision:     DefaultPrecision,
			OutDir:        DefaultOutDir,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// New returns the defaults overlaid with the user's config file, if present,
// and then with ESGFOCUS_LOG_LEVEL / ESGFOCUS_LOG_FORMAT. A config file that
// cannot be parsed is ignored so the CLI still starts; Load reports the error.
func New() *Config {
	cfg := Default()
	if dir, err := GetConfigDir(); err == nil {
		path := filepath.Join(dir, ConfigFileName)
		if loaded, loadErr := Load(path); loadErr == nil {
			cfg = loaded
		}
	}
	cfg.applyEnv()
	return cfg
}

// Load reads a config file on top of the defaults. A missing file yields the
// defaults with no error.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	c.path = path
	return nil
}

// Path returns the file the config was loaded from or saved to.
func (c *Config) Path() string {
	return c.path
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		return fmt.Errorf("%w: output.precision must be between 0 and %d, got %d",
			ErrInvalidConfig, maxPrecision, c.Output.Precision)
	}
	for _, f := range strings.Split(c.Output.DefaultFormat, ",") {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "", "json", "md", "markdown":
		default:
			return fmt.Errorf("%w: output.default_format has unknown format %q", ErrInvalidConfig, f)
		}
	}
	switch c.Logging.Format {
	case "", logging.FormatJSON, logging.FormatConsole:
	default:
		return fmt.Errorf("%w: logging.format must be %q or %q, got %q",
			ErrInvalidConfig, logging.FormatJSON, logging.FormatConsole, c.Logging.Format)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ESGFOCUS_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ESGFOCUS_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
}
