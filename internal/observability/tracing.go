// Package observability provides OpenTelemetry integration for distributed tracing.
//
// # Architecture
//
// Tool invocations are wrapped in spans by the tool registry. This package
// wires the export side: an OTLP/HTTP exporter pointing at a local collector
// (Grafana Alloy, Jaeger, the otel-collector, or any vendor agent that
// speaks OTLP on 4318) behind a batching span processor.
//
// Export is opt-in and degrades gracefully: if the exporter cannot be
// created the server keeps running without tracing rather than failing
// startup. A collector that is configured but unreachable simply drops
// spans; the tools themselves are unaffected.
//
// # Configuration
//
// Config file (~/.jarvis/config.yaml):
//
//	tracing:
//	  enabled: true
//	  endpoint: "localhost:4318"
//	  environment: "dev"
//	  service_name: "jarvis-mcp"
//
// Environment overrides: JARVIS_TRACING_ENABLED, JARVIS_OTLP_ENDPOINT.
//
// # Verify
//
// Test the collector endpoint:
//
//	curl -v http://localhost:4318/v1/traces
//
// Spans appear under the configured service name within a minute of
// shutdown (the batch processor flushes on Shutdown).
package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kelleyblackmore/jarvis-mcp/internal/log"
)

// Config for OTLP trace export setup.
type Config struct {
	// Endpoint is the OTLP/HTTP collector endpoint (default: localhost:4318)
	Endpoint string
	// Environment is the deployment environment (dev, staging, prod)
	Environment string
	// ServiceName is the service name on exported spans
	ServiceName string
	// Logger receives setup diagnostics
	Logger log.Logger
}

// DefaultEndpoint is the default OTLP HTTP collector endpoint.
const DefaultEndpoint = "localhost:4318"

// Setup installs a tracer provider that exports spans to the configured
// OTLP collector and registers it as the global provider, so the tool
// registry's spans flow through it.
//
// Returns a shutdown function that flushes pending spans. If the exporter
// cannot be created, Setup logs a warning and returns a no-op shutdown:
// a broken collector must not take the server down with it.
func Setup(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	// Local collectors speak plain HTTP; the collector handles any
	// authentication and forwarding to a backend.
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		cfg.Logger.Warn("failed to create OTLP exporter, tracing disabled", "error", err)
		return func(context.Context) error { return nil }, nil
	}

	attrs := []attribute.KeyValue{
		attribute.String("service.name", cfg.ServiceName),
	}
	if cfg.Environment != "" {
		attrs = append(attrs, attribute.String("deployment.environment", cfg.Environment))
	}
	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(attrs...))
	if err != nil {
		return nil, fmt.Errorf("building trace resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	cfg.Logger.Debug("tracing enabled",
		"endpoint", endpoint,
		"service", cfg.ServiceName,
		"environment", cfg.Environment,
	)

	return provider.Shutdown, nil
}
