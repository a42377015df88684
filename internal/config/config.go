package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the command-line tool configuration.
type Config struct {
	LogLevel   string `yaml:"log_level"`  // debug, info, warn or error
	LogFormat  string `yaml:"log_format"` // "text" or "json"
	CrossLayer bool   `yaml:"cross_layer"`
	TempDir    string `yaml:"temp_dir"`  // repacked raw tag files (empty = OS default)
	CacheDir   string `yaml:"cache_dir"` // fetched schematics
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		LogFormat:  "text",
		CrossLayer: true,
		CacheDir:   ".",
	}
}

// Load reads a YAML config file. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}
	if !explicitFlags["log-format"] {
		cfg.LogFormat = fromFile.LogFormat
	}
	if !explicitFlags["cross-layer"] {
		cfg.CrossLayer = fromFile.CrossLayer
	}
	if !explicitFlags["temp-dir"] {
		cfg.TempDir = fromFile.TempDir
	}
	if !explicitFlags["cache-dir"] {
		cfg.CacheDir = fromFile.CacheDir
	}
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
}

func (c *Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return l, nil
}

// Logger builds the logger described by c, writing to w.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	level, _ := c.level()
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
