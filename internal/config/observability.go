package config

// TracingConfig holds OTLP trace export configuration.
//
// Tracing is opt-in: the server runs fully without a collector.
// See internal/observability/tracing.go for the exporter setup.
type TracingConfig struct {
	// Enabled turns OTLP trace export on (default: false)
	Enabled bool `mapstructure:"enabled"`
	// Endpoint is the OTLP/HTTP collector endpoint (default: localhost:4318)
	Endpoint string `mapstructure:"endpoint"`
	// Environment is the deployment environment tag (default: dev)
	Environment string `mapstructure:"environment"`
	// ServiceName is the service name on exported spans (default: jarvis-mcp)
	ServiceName string `mapstructure:"service_name"`
}
