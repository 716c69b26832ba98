package app

import (
	"context"
	"fmt"
	"time"

	"github.com/kelleyblackmore/jarvis-mcp/internal/briefing"
	"github.com/kelleyblackmore/jarvis-mcp/internal/config"
	"github.com/kelleyblackmore/jarvis-mcp/internal/home"
	"github.com/kelleyblackmore/jarvis-mcp/internal/log"
	"github.com/kelleyblackmore/jarvis-mcp/internal/observability"
	"github.com/kelleyblackmore/jarvis-mcp/internal/planner"
	"github.com/kelleyblackmore/jarvis-mcp/internal/sysinfo"
	"github.com/kelleyblackmore/jarvis-mcp/internal/tools"
	"github.com/kelleyblackmore/jarvis-mcp/internal/weather"
)

// Setup creates and initializes the application.
// Returns an App with embedded cleanup; call Close() to release.
func Setup(ctx context.Context, cfg *config.Config, version string) (_ *App, retErr error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	a := &App{Config: cfg, Version: version}
	a.Logger = provideLogger(cfg)

	// On error, clean up everything already initialized.
	defer func() {
		if retErr != nil {
			if err := a.Close(); err != nil {
				a.Logger.Warn("cleanup during setup failure", "error", err)
			}
		}
	}()

	if cfg.Tracing.Enabled {
		shutdown, err := observability.Setup(ctx, observability.Config{
			Endpoint:    cfg.Tracing.Endpoint,
			Environment: cfg.Tracing.Environment,
			ServiceName: cfg.Tracing.ServiceName,
			Logger:      a.Logger,
		})
		if err != nil {
			return nil, fmt.Errorf("setting up tracing: %w", err)
		}
		a.tracingShutdown = shutdown
	}

	clock, err := provideClock(cfg)
	if err != nil {
		return nil, err
	}

	if err := provideState(a); err != nil {
		return nil, err
	}

	provideSimulators(a)

	if err := provideComposer(a, clock); err != nil {
		return nil, err
	}

	if err := provideRegistry(a, clock); err != nil {
		return nil, err
	}

	return a, nil
}

// provideLogger builds the stderr logger from the configured level and
// format. Stdout stays reserved for the MCP protocol stream.
func provideLogger(cfg *config.Config) log.Logger {
	return log.New(log.Config{
		Level:     cfg.SlogLevel(),
		JSON:      cfg.LogJSON,
		AddSource: cfg.LogSource,
	})
}

// provideClock derives the wall clock the handlers observe. With a
// configured timezone every timestamp, greeting bucket and briefing date
// is computed in that zone; otherwise the host zone applies.
func provideClock(cfg *config.Config) (func() time.Time, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return func() time.Time { return time.Now().In(loc) }, nil
}

// provideState creates the in-memory stores, the security journal and the
// device controller, then seeds the default device inventory.
func provideState(a *App) error {
	tasks, err := planner.NewTasks()
	if err != nil {
		return fmt.Errorf("creating task store: %w", err)
	}
	a.Tasks = tasks

	reminders, err := planner.NewReminders()
	if err != nil {
		return fmt.Errorf("creating reminder store: %w", err)
	}
	a.Reminders = reminders

	schedule, err := planner.NewSchedule()
	if err != nil {
		return fmt.Errorf("creating schedule: %w", err)
	}
	a.Schedule = schedule

	devices, err := home.NewDevices()
	if err != nil {
		return fmt.Errorf("creating device inventory: %w", err)
	}
	a.Devices = devices

	a.Journal = home.NewSecurityLog()

	controller, err := home.NewController(devices, a.Journal, a.Logger)
	if err != nil {
		return fmt.Errorf("creating device controller: %w", err)
	}
	a.Controller = controller

	for _, dev := range home.DefaultInventory() {
		devices.Create(dev)
	}
	a.Logger.Debug("device inventory seeded", "devices", devices.Len())

	return nil
}

// provideSimulators creates the weather and diagnostics simulators. A
// non-zero simulation seed makes their readings reproducible across runs.
func provideSimulators(a *App) {
	a.Weather = weather.NewSimulator(a.Config.SimulationSeed)
	a.Monitor = sysinfo.NewMonitor(a.Config.SimulationSeed)
}

// provideComposer wires the briefing composer over the assembled state.
func provideComposer(a *App, clock func() time.Time) error {
	composer, err := briefing.NewComposer(briefing.Config{
		Tasks:      a.Tasks,
		Schedule:   a.Schedule,
		Controller: a.Controller,
		Weather:    a.Weather,
		Monitor:    a.Monitor,
		Clock:      clock,
		Seed:       a.Config.SimulationSeed,
		Logger:     a.Logger,
	})
	if err != nil {
		return fmt.Errorf("creating briefing composer: %w", err)
	}
	a.Composer = composer

	return nil
}

// provideRegistry creates the four toolsets and registers them in
// catalogue order: assistant, planner, home, utility.
func provideRegistry(a *App, clock func() time.Time) error {
	cfg := a.Config

	registry, err := tools.NewRegistry(a.Logger)
	if err != nil {
		return fmt.Errorf("creating tool registry: %w", err)
	}

	assistant, err := tools.NewAssistant(tools.AssistantConfig{
		Composer:        a.Composer,
		Monitor:         a.Monitor,
		Tasks:           a.Tasks,
		Reminders:       a.Reminders,
		Schedule:        a.Schedule,
		Devices:         a.Devices,
		DefaultLocation: cfg.DefaultLocation,
		ServerName:      cfg.ServerName,
		Version:         a.Version,
		Clock:           clock,
		Logger:          a.Logger,
	})
	if err != nil {
		return fmt.Errorf("creating assistant tools: %w", err)
	}
	if err := tools.RegisterAssistant(registry, assistant); err != nil {
		return fmt.Errorf("registering assistant tools: %w", err)
	}

	plannerSet, err := tools.NewPlanner(tools.PlannerConfig{
		Tasks:     a.Tasks,
		Reminders: a.Reminders,
		Schedule:  a.Schedule,
		Journal:   a.Journal,
		Clock:     clock,
		Logger:    a.Logger,
	})
	if err != nil {
		return fmt.Errorf("creating planner tools: %w", err)
	}
	if err := tools.RegisterPlanner(registry, plannerSet); err != nil {
		return fmt.Errorf("registering planner tools: %w", err)
	}

	homeSet, err := tools.NewHome(a.Controller, a.Devices, a.Logger)
	if err != nil {
		return fmt.Errorf("creating home tools: %w", err)
	}
	if err := tools.RegisterHome(registry, homeSet); err != nil {
		return fmt.Errorf("registering home tools: %w", err)
	}

	utility, err := tools.NewUtility(a.Weather, a.Logger)
	if err != nil {
		return fmt.Errorf("creating utility tools: %w", err)
	}
	if err := tools.RegisterUtility(registry, utility); err != nil {
		return fmt.Errorf("registering utility tools: %w", err)
	}

	a.Registry = registry
	a.Logger.Info("tools registered at construction", "count", registry.Len())

	return nil
}
