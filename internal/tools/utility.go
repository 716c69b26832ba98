package tools

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/kelleyblackmore/jarvis-mcp/internal/calc"
	"github.com/kelleyblackmore/jarvis-mcp/internal/log"
	"github.com/kelleyblackmore/jarvis-mcp/internal/units"
	"github.com/kelleyblackmore/jarvis-mcp/internal/weather"
)

// Tool name constants for the utility toolset.
const (
	// WeatherName is the tool name for the weather snapshot.
	WeatherName = "jarvis_weather"
	// CalculateName is the tool name for expression evaluation.
	CalculateName = "jarvis_calculate"
	// ConvertName is the tool name for unit conversion.
	ConvertName = "jarvis_convert"
)

// Utility implements the weather, calculator and conversion tools.
type Utility struct {
	weather *weather.Simulator
	logger  log.Logger
}

// NewUtility creates a Utility toolset instance.
func NewUtility(sim *weather.Simulator, logger log.Logger) (*Utility, error) {
	if sim == nil {
		return nil, fmt.Errorf("weather simulator is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Utility{weather: sim, logger: logger}, nil
}

// Weather reports a simulated weather snapshot for a location.
func (u *Utility) Weather(_ context.Context, in WeatherInput) Result {
	u.logger.Debug("Weather called", "location", in.Location)
	return Result{
		Status: StatusSuccess,
		Data:   u.weather.Snapshot(in.Location),
	}
}

// Calculate evaluates an arithmetic expression. A malformed expression
// or a division by zero comes back as an execution error result.
func (u *Utility) Calculate(_ context.Context, in CalculateInput) Result {
	u.logger.Debug("Calculate called", "expression", in.Expression)

	expression := strings.TrimSpace(in.Expression)
	if expression == "" {
		return errorResult(ErrCodeValidation, "expression is required")
	}

	value, err := calc.Evaluate(expression)
	if err != nil {
		u.logger.Warn("expression rejected", "expression", expression, "error", err)
		return errorResult(ErrCodeExecution, fmt.Sprintf("cannot evaluate %q: %v", expression, err))
	}

	u.logger.Debug("Calculate succeeded", "result", value)
	return Result{
		Status: StatusSuccess,
		Data: map[string]any{
			"expression": expression,
			"result":     value,
			"formatted":  strconv.FormatFloat(value, 'f', -1, 64),
		},
	}
}

// Convert converts a value between units of the same category.
func (u *Utility) Convert(_ context.Context, in ConvertInput) Result {
	u.logger.Debug("Convert called", "value", in.Value, "from", in.From, "to", in.To)

	conversion, err := units.Convert(in.Value, in.From, in.To)
	if err != nil {
		u.logger.Warn("conversion rejected", "from", in.From, "to", in.To, "error", err)
		return errorResult(ErrCodeValidation, err.Error())
	}

	u.logger.Debug("Convert succeeded", "result", conversion.Result)
	return Result{
		Status: StatusSuccess,
		Data:   conversion,
	}
}

// RegisterUtility adds the utility tools to the registry.
func RegisterUtility(r *Registry, u *Utility) error {
	if r == nil {
		return fmt.Errorf("registry is required")
	}
	if u == nil {
		return fmt.Errorf("utility toolset is required")
	}

	weatherSchema, err := inputSchema[WeatherInput]()
	if err != nil {
		return fmt.Errorf("schema for %s: %w", WeatherName, err)
	}
	if err := Add(r, WeatherName,
		"Get a simulated weather snapshot for a location: condition, temperature, humidity and wind.",
		weatherSchema, u.Weather); err != nil {
		return err
	}

	calculateSchema, err := inputSchema[CalculateInput]()
	if err != nil {
		return fmt.Errorf("schema for %s: %w", CalculateName, err)
	}
	if err := Add(r, CalculateName,
		"Evaluate an arithmetic expression over numbers with + - * / % and parentheses. Standard precedence applies.",
		calculateSchema, u.Calculate); err != nil {
		return err
	}

	convertSchema, err := inputSchema[ConvertInput]()
	if err != nil {
		return fmt.Errorf("schema for %s: %w", ConvertName, err)
	}
	if err := Add(r, ConvertName,
		"Convert a value between units of temperature (celsius, fahrenheit, kelvin), length (meters, km, miles, feet, inches, yards) or mass (kg, grams, pounds, ounces).",
		convertSchema, u.Convert); err != nil {
		return err
	}

	return nil
}
