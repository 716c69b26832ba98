package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kelleyblackmore/jarvis-mcp/internal/briefing"
	"github.com/kelleyblackmore/jarvis-mcp/internal/home"
	"github.com/kelleyblackmore/jarvis-mcp/internal/log"
	"github.com/kelleyblackmore/jarvis-mcp/internal/planner"
	"github.com/kelleyblackmore/jarvis-mcp/internal/sysinfo"
)

// Tool name constants for the assistant toolset.
const (
	// GreetName is the tool name for the signature greeting.
	GreetName = "jarvis_greet"
	// StatusName is the tool name for the server status overview.
	StatusName = "jarvis_status"
	// TimeName is the tool name for the current time.
	TimeName = "jarvis_time"
	// DailyBriefingName is the tool name for the composed daily briefing.
	DailyBriefingName = "jarvis_daily_briefing"
)

// AssistantConfig holds dependencies for the assistant toolset.
type AssistantConfig struct {
	Composer  *briefing.Composer
	Monitor   *sysinfo.Monitor
	Tasks     *planner.Tasks
	Reminders *planner.Reminders
	Schedule  *planner.Schedule
	Devices   *home.Devices

	// DefaultLocation is used when a briefing request omits one.
	DefaultLocation string
	ServerName      string
	Version         string

	// Clock defaults to time.Now; tests pin it.
	Clock  func() time.Time
	Logger log.Logger
}

// Assistant implements the greeting, status, time and briefing tools.
type Assistant struct {
	cfg AssistantConfig
}

// NewAssistant creates an Assistant instance.
func NewAssistant(cfg AssistantConfig) (*Assistant, error) {
	if cfg.Composer == nil {
		return nil, fmt.Errorf("briefing composer is required")
	}
	if cfg.Monitor == nil {
		return nil, fmt.Errorf("system monitor is required")
	}
	if cfg.Tasks == nil || cfg.Reminders == nil || cfg.Schedule == nil {
		return nil, fmt.Errorf("planner collections are required")
	}
	if cfg.Devices == nil {
		return nil, fmt.Errorf("device inventory is required")
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Assistant{cfg: cfg}, nil
}

// Greet returns the signature greeting.
func (a *Assistant) Greet(_ context.Context, _ GreetInput) Result {
	a.cfg.Logger.Debug("Greet called")
	return Result{
		Status: StatusSuccess,
		Data: map[string]any{
			"greeting": a.cfg.Composer.Greet(),
			"server":   a.cfg.ServerName,
			"version":  a.cfg.Version,
		},
	}
}

// ServerStatus reports operational state, diagnostics and store sizes.
func (a *Assistant) ServerStatus(_ context.Context, _ StatusInput) Result {
	a.cfg.Logger.Debug("ServerStatus called")
	return Result{
		Status: StatusSuccess,
		Data: map[string]any{
			"status":      "operational",
			"server":      a.cfg.ServerName,
			"version":     a.cfg.Version,
			"diagnostics": a.cfg.Monitor.Snapshot(),
			"stores": map[string]any{
				"tasks":     a.cfg.Tasks.Len(),
				"reminders": a.cfg.Reminders.Len(),
				"events":    a.cfg.Schedule.Len(),
				"devices":   a.cfg.Devices.Len(),
			},
		},
	}
}

// CurrentTime reports the current time, optionally in a requested zone.
func (a *Assistant) CurrentTime(_ context.Context, in TimeInput) Result {
	a.cfg.Logger.Debug("CurrentTime called", "timezone", in.Timezone)
	now := a.cfg.Clock()
	if tz := strings.TrimSpace(in.Timezone); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			a.cfg.Logger.Warn("unknown timezone requested", "timezone", tz)
			return errorResult(ErrCodeValidation, fmt.Sprintf("unknown timezone %q", tz))
		}
		now = now.In(loc)
	}
	a.cfg.Logger.Debug("CurrentTime succeeded")
	return Result{
		Status: StatusSuccess,
		Data: map[string]any{
			"time":      now.Format("2006-01-02 15:04:05"),
			"timestamp": now.Unix(),
			"iso8601":   now.Format(time.RFC3339),
			"timezone":  now.Location().String(),
		},
	}
}

// DailyBriefing composes the daily overview.
func (a *Assistant) DailyBriefing(_ context.Context, in BriefingInput) Result {
	location := strings.TrimSpace(in.Location)
	if location == "" {
		location = a.cfg.DefaultLocation
	}
	a.cfg.Logger.Debug("DailyBriefing called", "location", location)
	return Result{
		Status: StatusSuccess,
		Data:   a.cfg.Composer.Compose(location),
	}
}

// RegisterAssistant adds the assistant tools to the registry.
func RegisterAssistant(r *Registry, a *Assistant) error {
	if r == nil {
		return fmt.Errorf("registry is required")
	}
	if a == nil {
		return fmt.Errorf("assistant toolset is required")
	}

	greetSchema, err := inputSchema[GreetInput]()
	if err != nil {
		return fmt.Errorf("schema for %s: %w", GreetName, err)
	}
	if err := Add(r, GreetName,
		"Greet the user. Returns a time-of-day greeting in JARVIS style plus the server name and version.",
		greetSchema, a.Greet); err != nil {
		return err
	}

	statusSchema, err := inputSchema[StatusInput]()
	if err != nil {
		return fmt.Errorf("schema for %s: %w", StatusName, err)
	}
	if err := Add(r, StatusName,
		"Report server status: operational state, simulated host diagnostics and how many tasks, reminders, events and devices are tracked.",
		statusSchema, a.ServerStatus); err != nil {
		return err
	}

	timeSchema, err := inputSchema[TimeInput]()
	if err != nil {
		return fmt.Errorf("schema for %s: %w", TimeName, err)
	}
	if err := Add(r, TimeName,
		"Get the current date and time, optionally converted to an IANA timezone. Returns formatted time, Unix timestamp and ISO 8601.",
		timeSchema, a.CurrentTime); err != nil {
		return err
	}

	briefingSchema, err := inputSchema[BriefingInput]()
	if err != nil {
		return fmt.Errorf("schema for %s: %w", DailyBriefingName, err)
	}
	if err := Add(r, DailyBriefingName,
		"Compose the daily briefing: greeting, weather, host diagnostics, open task counts by priority, today's schedule and the security posture.",
		briefingSchema, a.DailyBriefing); err != nil {
		return err
	}

	return nil
}
