// Package config provides loading and parsing of graphscope.yaml files.
// The configuration bounds scope nesting, selects the log level, toggles
// telemetry and seeds the attribute defaults of every new creation scope.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/zero-day-ai/graphscope/attr"
	"gopkg.in/yaml.v3"
)

// File names searched for when Load is given a directory.
const (
	FileName    = "graphscope.yaml"
	AltFileName = "graphscope.yml"
)

// Config represents a graphscope.yaml configuration file.
type Config struct {
	// MaxDepth limits how many scopes may be nested on one stack.
	// Zero means unlimited.
	MaxDepth int `yaml:"max_depth,omitempty"`

	// LogLevel is one of debug, info, warn or error.
	// Default: info
	LogLevel string `yaml:"log_level,omitempty"`

	// Telemetry toggles OpenTelemetry instrumentation.
	Telemetry *TelemetryConfig `yaml:"telemetry,omitempty"`

	// Defaults seeds the attribute defaults of each new scope.
	Defaults *DefaultsConfig `yaml:"defaults,omitempty"`
}

// TelemetryConfig toggles tracing and metrics.
type TelemetryConfig struct {
	Tracing bool `yaml:"tracing"`
	Metrics bool `yaml:"metrics"`
}

// DefaultsConfig holds the attribute defaults copied into every new scope.
type DefaultsConfig struct {
	Node  map[string]any `yaml:"node,omitempty"`
	Link  map[string]any `yaml:"link,omitempty"`
	Graph map[string]any `yaml:"graph,omitempty"`
}

// GetMaxDepth returns the configured depth limit, or 0 (unlimited).
func (c *Config) GetMaxDepth() int {
	if c == nil || c.MaxDepth < 0 {
		return 0
	}
	return c.MaxDepth
}

// GetLogLevel parses the log level. Returns slog.LevelInfo if not set or invalid.
func (c *Config) GetLogLevel() slog.Level {
	if c == nil {
		return slog.LevelInfo
	}
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// TracingEnabled reports whether spans should be recorded.
func (c *Config) TracingEnabled() bool {
	return c != nil && c.Telemetry != nil && c.Telemetry.Tracing
}

// MetricsEnabled reports whether metric instruments should be recorded.
func (c *Config) MetricsEnabled() bool {
	return c != nil && c.Telemetry != nil && c.Telemetry.Metrics
}

// NodeDefaults returns a fresh copy of the configured node defaults.
func (c *Config) NodeDefaults() attr.Attributes {
	if c == nil || c.Defaults == nil {
		return attr.New()
	}
	return attr.Attributes(c.Defaults.Node).Clone()
}

// LinkDefaults returns a fresh copy of the configured link defaults.
func (c *Config) LinkDefaults() attr.Attributes {
	if c == nil || c.Defaults == nil {
		return attr.New()
	}
	return attr.Attributes(c.Defaults.Link).Clone()
}

// GraphDefaults returns a fresh copy of the configured graph defaults.
func (c *Config) GraphDefaults() attr.Attributes {
	if c == nil || c.Defaults == nil {
		return attr.New()
	}
	return attr.Attributes(c.Defaults.Graph).Clone()
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.LogLevel != "" {
		if _, err := parseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	if c.Defaults != nil {
		for name, set := range map[string]map[string]any{
			"node":  c.Defaults.Node,
			"link":  c.Defaults.Link,
			"graph": c.Defaults.Graph,
		} {
			if err := attr.Attributes(set).Validate(); err != nil {
				return fmt.Errorf("defaults.%s: %w", name, err)
			}
		}
	}
	return nil
}

// Parse decodes and validates YAML configuration data.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &config, nil
}

// Load reads and parses a graphscope.yaml file from the given path.
// If the path is a directory, it looks for graphscope.yaml or graphscope.yml in that directory.
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	configPath := path
	if info.IsDir() {
		configPath = ""
		for _, name := range []string{FileName, AltFileName} {
			candidate := filepath.Join(path, name)
			if _, err := os.Stat(candidate); err == nil {
				configPath = candidate
				break
			}
		}
		if configPath == "" {
			return nil, fmt.Errorf("no %s or %s found in %s", FileName, AltFileName, path)
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", s)
	}
	return level, nil
}
