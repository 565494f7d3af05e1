// Package config provides configuration management for the Value Edge engine.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load reads and parses the configuration from file and environment variables.
// It expands environment variable placeholders in the YAML file (${VAR_NAME})
// and falls back to built-in defaults when the file is absent.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath == "" {
		configPath = "config/config.yaml"
	}

	v.SetConfigType("yaml")

	// Set environment variable prefix
	v.SetEnvPrefix("VALUE_EDGE")

	// Enable automatic binding of environment variables
	v.AutomaticEnv()

	// Replace dots with underscores in environment variable names
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// Read and expand the configuration file if it exists
	if data, err := os.ReadFile(configPath); err == nil {
		// Expand environment variables in the configuration (${VAR} syntax)
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(bytes.NewBuffer([]byte(expanded))); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	// If file doesn't exist, continue with defaults and environment variables

	// Unmarshal configuration into Config struct
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults registers the built-in defaults for optional settings. The
// decision thresholds and weights mirror the documented defaults: minimum EV
// 5%, minimum confidence 60%.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "value-edge")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("analysis.min_expected_value", 0.05)
	v.SetDefault("analysis.min_confidence", 0.60)
	v.SetDefault("analysis.draw_band", 0.25)
	v.SetDefault("analysis.strength_weights.form", 0.35)
	v.SetDefault("analysis.strength_weights.record", 0.30)
	v.SetDefault("analysis.strength_weights.head_to_head", 0.20)
	v.SetDefault("analysis.strength_weights.home", 0.15)

	v.SetDefault("narrative.enabled", false)
	v.SetDefault("narrative.model", "gemini-pro")
	v.SetDefault("narrative.request_timeout_seconds", 20)
	v.SetDefault("narrative.max_retries", 3)
	v.SetDefault("narrative.rate_limit", 2.0)
	v.SetDefault("narrative.cache_ttl_seconds", 300)
	v.SetDefault("narrative.cache_max_size", 1000)

	v.SetDefault("server.port", 8090)
	v.SetDefault("server.timeout_seconds", 30)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}
