package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// validLogLevels are the accepted log_level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates configuration values.
// Returns sentinel errors that can be checked with errors.Is().
func (c *Config) Validate() error {
	// 0. Check for nil config (defensive programming)
	if c == nil {
		return ErrConfigNil
	}

	// 1. Server identity validation
	if strings.TrimSpace(c.ServerName) == "" {
		return fmt.Errorf("%w: server_name cannot be empty", ErrInvalidServerName)
	}

	// 2. Logging validation
	if !slices.Contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("%w: %q is not valid, must be one of: %v",
			ErrInvalidLogLevel, c.LogLevel, validLogLevels)
	}

	// 3. Timezone validation (empty means system local)
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("%w: %q is not an IANA timezone name", ErrInvalidTimezone, c.Timezone)
		}
	}

	// 4. Tracing validation (only when enabled; a disabled exporter needs nothing)
	if c.Tracing.Enabled {
		if strings.TrimSpace(c.Tracing.Endpoint) == "" {
			return fmt.Errorf("%w: tracing.endpoint cannot be empty when tracing is enabled",
				ErrInvalidTracingEndpoint)
		}
		if strings.TrimSpace(c.Tracing.ServiceName) == "" {
			return fmt.Errorf("%w: tracing.service_name cannot be empty when tracing is enabled",
				ErrInvalidTracingService)
		}
	}

	return nil
}
