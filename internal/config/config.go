// Package config provides configuration management for the Value Edge engine.
package config

import (
	"fmt"

	"github.com/yourusername/value-edge/internal/scoring"
)

// Config represents the complete application configuration. It is read once
// at process start and immutable thereafter.
type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	Analysis  AnalysisConfig  `mapstructure:"analysis" validate:"required"`
	Narrative NarrativeConfig `mapstructure:"narrative"`
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Metrics   MetricsConfig   `mapstructure:"metrics" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// AnalysisConfig holds the scoring weights and decision thresholds.
type AnalysisConfig struct {
	MinExpectedValue float64         `mapstructure:"min_expected_value" validate:"gte=0"`
	MinConfidence    float64         `mapstructure:"min_confidence" validate:"gte=0,lte=1"`
	DrawBand         float64         `mapstructure:"draw_band" validate:"gte=0,lte=1"`
	StrengthWeights  scoring.Weights `mapstructure:"strength_weights"`
}

// NarrativeConfig configures the external reasoning service integration. The
// service is optional; the engine works without it.
type NarrativeConfig struct {
	Enabled               bool    `mapstructure:"enabled"`
	BaseURL               string  `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey                string  `mapstructure:"api_key"`
	Model                 string  `mapstructure:"model"`
	RequestTimeoutSeconds int     `mapstructure:"request_timeout_seconds" validate:"omitempty,gt=0"`
	MaxRetries            int     `mapstructure:"max_retries" validate:"gte=0"`
	RateLimit             float64 `mapstructure:"rate_limit" validate:"omitempty,gt=0"`
	CacheTTLSeconds       int     `mapstructure:"cache_ttl_seconds" validate:"omitempty,gt=0"`
	CacheMaxSize          int     `mapstructure:"cache_max_size" validate:"omitempty,gt=0"`
}

// ServerConfig configures the HTTP analysis API.
type ServerConfig struct {
	Port           int `mapstructure:"port" validate:"required,min=1,max=65535"`
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"required,gt=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// NarrativeEnabled reports whether a usable reasoning service is configured.
func (c *Config) NarrativeEnabled() bool {
	return c.Narrative.Enabled && c.Narrative.BaseURL != ""
}

// String renders the configuration with the API key redacted.
func (c *Config) String() string {
	return fmt.Sprintf("app=%s env=%s narrative_enabled=%t server_port=%d",
		c.App.Name, c.App.Environment, c.NarrativeEnabled(), c.Server.Port)
}
