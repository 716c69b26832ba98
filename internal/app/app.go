// Package app provides application initialization and dependency injection.
//
// App is the central container that wires the assistant together: the
// entity stores, the security journal, the device controller, the
// simulators, the briefing composer and the tool registry. Entry points
// call Setup once, hand App.Registry to the MCP server, and Close on the
// way out.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/kelleyblackmore/jarvis-mcp/internal/briefing"
	"github.com/kelleyblackmore/jarvis-mcp/internal/config"
	"github.com/kelleyblackmore/jarvis-mcp/internal/home"
	"github.com/kelleyblackmore/jarvis-mcp/internal/log"
	"github.com/kelleyblackmore/jarvis-mcp/internal/planner"
	"github.com/kelleyblackmore/jarvis-mcp/internal/sysinfo"
	"github.com/kelleyblackmore/jarvis-mcp/internal/tools"
	"github.com/kelleyblackmore/jarvis-mcp/internal/weather"
)

// App is the core application container holding every initialized component.
type App struct {
	// Configuration
	Config *config.Config

	// Planner state
	Tasks     *planner.Tasks
	Reminders *planner.Reminders
	Schedule  *planner.Schedule

	// Smart home state
	Devices    *home.Devices
	Journal    *home.SecurityLog
	Controller *home.Controller

	// Simulators
	Weather *weather.Simulator
	Monitor *sysinfo.Monitor

	// Composition
	Composer *briefing.Composer
	Registry *tools.Registry

	Logger  log.Logger
	Version string

	// Lifecycle management
	tracingShutdown func(context.Context) error
}

// Close gracefully releases application resources. It is safe to call on a
// partially initialized App, as Setup does when a later stage fails.
func (a *App) Close() error {
	if a.Logger != nil {
		a.Logger.Info("shutting down application")
	}

	if a.tracingShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := a.tracingShutdown(ctx); err != nil {
			return fmt.Errorf("flushing traces: %w", err)
		}
	}

	return nil
}
