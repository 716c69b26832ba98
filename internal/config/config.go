// Package config provides application configuration management with multi-source priority.
//
// Configuration sources (highest to lowest priority):
//  1. Environment variables (runtime override)
//  2. Config file (~/.jarvis/config.yaml)
//  3. Default values (sensible defaults for quick start)
//
// Main configuration categories:
//   - Server: name reported by the MCP server
//   - Logging: level, format and source annotation
//   - Assistant: default briefing location and timezone
//   - Simulation: seed for the weather and diagnostics generators
//   - Tracing: OTLP trace export (see observability.go)
//
// Error Handling:
//   - Uses sentinel errors for Go-idiomatic error checking with errors.Is()
//   - Wrap with context using fmt.Errorf("%w: details", ErrXxx)
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	// ErrConfigNil indicates the configuration is nil.
	ErrConfigNil = errors.New("configuration is nil")

	// ErrInvalidServerName indicates the server name is empty.
	ErrInvalidServerName = errors.New("invalid server name")

	// ErrInvalidLogLevel indicates the log level is not recognised.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidTimezone indicates the timezone cannot be loaded.
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrInvalidTracingEndpoint indicates tracing is enabled without an endpoint.
	ErrInvalidTracingEndpoint = errors.New("invalid tracing endpoint")

	// ErrInvalidTracingService indicates tracing is enabled without a service name.
	ErrInvalidTracingService = errors.New("invalid tracing service name")
)

// Config stores application configuration.
type Config struct {
	// ServerName is the identity the MCP server reports to clients.
	ServerName string `mapstructure:"server_name" json:"server_name"`

	// Logging configuration
	LogLevel  string `mapstructure:"log_level" json:"log_level"` // "debug", "info", "warn", "error"
	LogJSON   bool   `mapstructure:"log_json" json:"log_json"`
	LogSource bool   `mapstructure:"log_source" json:"log_source"`

	// Assistant behavior
	DefaultLocation string `mapstructure:"default_location" json:"default_location"`
	Timezone        string `mapstructure:"timezone" json:"timezone"` // IANA name; empty means system local

	// SimulationSeed seeds the weather and diagnostics generators.
	// Zero selects a time-based seed on every start.
	SimulationSeed int64 `mapstructure:"simulation_seed" json:"simulation_seed"`

	// Tracing configuration (see observability.go for type definition)
	Tracing TracingConfig `mapstructure:"tracing" json:"tracing"`
}

// Load loads configuration.
// Priority: Environment variables > Configuration file > Default values
func Load() (*Config, error) {
	// Configuration directory: ~/.jarvis/
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting user home directory: %w", err)
	}

	configDir := filepath.Join(home, ".jarvis")

	// Ensure directory exists (use 0750 permission for better security)
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	// Configure Viper
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)
	viper.AddConfigPath(".") // Also support current directory

	// Set default values
	setDefaults()

	// Bind environment variables
	bindEnvVariables()

	// Read configuration file (if exists)
	if err := viper.ReadInConfig(); err != nil {
		// Configuration file not found is not an error, use default values
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		slog.Debug("configuration file not found, using default values",
			"search_paths", []string{configDir, "."},
			"config_name", "config.yaml")
	}

	// Use Unmarshal to automatically map to struct (type-safe)
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	// CRITICAL: Validate immediately (fail-fast)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets all default configuration values.
func setDefaults() {
	// Server defaults
	viper.SetDefault("server_name", "jarvis")

	// Logging defaults
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_json", false)
	viper.SetDefault("log_source", false)

	// Assistant defaults
	viper.SetDefault("default_location", "home")
	viper.SetDefault("timezone", "")

	// Simulation defaults (0 = time-based seed)
	viper.SetDefault("simulation_seed", 0)

	// Tracing defaults
	viper.SetDefault("tracing.enabled", false)
	viper.SetDefault("tracing.endpoint", "localhost:4318")
	viper.SetDefault("tracing.environment", "dev")
	viper.SetDefault("tracing.service_name", "jarvis-mcp")
}

// bindEnvVariables binds runtime override environment variables explicitly.
// Everything else stays file- or default-driven so the surface is easy to audit.
func bindEnvVariables() {
	// Helper to panic on unexpected bind errors (hardcoded strings can't fail)
	// If this panics, it's a BUG in our code, not a runtime error
	mustBind := func(key, envVar string) {
		if err := viper.BindEnv(key, envVar); err != nil {
			panic(fmt.Sprintf("BUG: failed to bind %q to %q: %v", key, envVar, err))
		}
	}

	mustBind("log_level", "JARVIS_LOG_LEVEL")
	mustBind("log_json", "JARVIS_LOG_JSON")
	mustBind("default_location", "JARVIS_DEFAULT_LOCATION")
	mustBind("timezone", "JARVIS_TIMEZONE")
	mustBind("simulation_seed", "JARVIS_SIMULATION_SEED")
	mustBind("tracing.enabled", "JARVIS_TRACING_ENABLED")
	mustBind("tracing.endpoint", "JARVIS_OTLP_ENDPOINT")
}

// SlogLevel maps the configured log level onto slog's scale.
// Unknown values fall back to info; Validate rejects them before this runs.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Location resolves the configured timezone.
// An empty timezone means the system local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, c.Timezone, err)
	}
	return loc, nil
}
