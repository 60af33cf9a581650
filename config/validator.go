package config

import (
	"fmt"
	"regexp"
	"strings"
)

var metricName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Validate checks the config for:
//   - Known log level and format names
//   - A non-negative undo limit
//   - A namespace usable as a Prometheus metric prefix
func Validate(cfg *Config) error {
	var errs []string

	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level: unknown level %q", cfg.Log.Level))
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format: must be text or json, got %q", cfg.Log.Format))
	}
	if cfg.Undo.Limit < 0 {
		errs = append(errs, fmt.Sprintf("undo.limit: must be >= 0, got %d", cfg.Undo.Limit))
	}
	if cfg.Metrics.Enabled && !metricName.MatchString(cfg.Metrics.Namespace) {
		errs = append(errs, fmt.Sprintf("metrics.namespace: %q is not a valid metric name prefix", cfg.Metrics.Namespace))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
