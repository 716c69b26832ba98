package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kelleyblackmore/jarvis-mcp/internal/log"
)

// Definition describes one registered tool for discovery.
type Definition struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
}

// Handler is a typed tool implementation. It returns a Result in all
// cases; recoverable failures belong in Result.Error.
type Handler[In any] func(ctx context.Context, in In) Result

type entry struct {
	def      Definition
	resolved *jsonschema.Resolved
	invoke   func(ctx context.Context, raw json.RawMessage) Result
}

// Registry maps tool names to schema-validated handlers. Register
// everything during setup; Invoke is safe for concurrent use once
// registration is done.
type Registry struct {
	logger  log.Logger
	tracer  trace.Tracer
	entries map[string]*entry
	order   []string
}

// NewRegistry creates an empty registry.
func NewRegistry(logger log.Logger) (*Registry, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Registry{
		logger:  logger,
		tracer:  otel.Tracer("jarvis/tools"),
		entries: make(map[string]*entry),
	}, nil
}

// Add registers a typed handler under name. The schema gates raw
// arguments before they are decoded into In.
func Add[In any](r *Registry, name, description string, schema *jsonschema.Schema, h Handler[In]) error {
	if r == nil {
		return fmt.Errorf("registry is required")
	}
	if name == "" {
		return fmt.Errorf("tool name is required")
	}
	if schema == nil {
		return fmt.Errorf("input schema for %s is required", name)
	}
	if h == nil {
		return fmt.Errorf("handler for %s is required", name)
	}
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("tool %s already registered", name)
	}

	resolved, err := schema.Resolve(nil)
	if err != nil {
		return fmt.Errorf("resolving schema for %s: %w", name, err)
	}

	r.entries[name] = &entry{
		def:      Definition{Name: name, Description: description, InputSchema: schema},
		resolved: resolved,
		invoke: func(ctx context.Context, raw json.RawMessage) Result {
			var in In
			if err := json.Unmarshal(raw, &in); err != nil {
				return errorResult(ErrCodeValidation, fmt.Sprintf("decoding arguments: %v", err))
			}
			return h(ctx, in)
		},
	}
	r.order = append(r.order, name)
	return nil
}

// Invoke dispatches raw JSON arguments to the named tool. Every call
// yields exactly one Result: unknown names, rejected arguments and
// handler panics all come back as error results, never as Go errors.
func (r *Registry) Invoke(ctx context.Context, name string, raw json.RawMessage) (result Result) {
	ent, ok := r.entries[name]
	if !ok {
		r.logger.Warn("unknown tool invoked", "tool", name)
		return errorResult(ErrCodeUnknownTool, fmt.Sprintf("unknown tool: %s", name))
	}

	ctx, span := r.tracer.Start(ctx, "tool."+name,
		trace.WithAttributes(attribute.String("tool.name", name)))
	defer span.End()
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("tool panicked", "tool", name, "panic", rec)
			result = errorResult(ErrCodeExecution, fmt.Sprintf("tool %s panicked: %v", name, rec))
		}
		if result.Status == StatusError && result.Error != nil {
			span.SetStatus(codes.Error, string(result.Error.Code))
		}
	}()

	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}

	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return errorResult(ErrCodeValidation, fmt.Sprintf("arguments are not valid JSON: %v", err))
	}
	if err := ent.resolved.Validate(instance); err != nil {
		r.logger.Warn("arguments rejected", "tool", name, "error", err)
		return errorResult(ErrCodeValidation, err.Error())
	}

	r.logger.Debug("tool invoked", "tool", name)
	return ent.invoke(ctx, raw)
}

// Definitions lists registered tools in registration order.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.entries[name].def)
	}
	return defs
}

// Len reports how many tools are registered.
func (r *Registry) Len() int {
	return len(r.entries)
}
