package config

import (
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// Default values applied after unmarshal.
const (
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultUndoLimit        = 0
	DefaultMetricsNamespace = "molkit"
)

// Config is the top-level YAML structure.
type Config struct {
	Log     LogConf     `yaml:"log"`
	Undo    UndoConf    `yaml:"undo"`
	Metrics MetricsConf `yaml:"metrics"`
}

// LogConf selects the slog handler and level.
type LogConf struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// UndoConf bounds and tunes the edit history.
type UndoConf struct {
	Limit            int   `yaml:"limit"` // 0 = unbounded
	MergeInteractive *bool `yaml:"merge_interactive"`
}

// MetricsConf toggles the Prometheus recorder.
type MetricsConf struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Parse decodes YAML and applies defaults. It does not validate.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Undo.MergeInteractive == nil {
		on := true
		c.Undo.MergeInteractive = &on
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsNamespace
	}
}

// Merge reports whether interactive edits coalesce.
func (u UndoConf) Merge() bool {
	return u.MergeInteractive == nil || *u.MergeInteractive
}

// SlogLevel maps Level to a slog.Level. Unknown names map to info;
// Validate rejects them.
func (l LogConf) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
