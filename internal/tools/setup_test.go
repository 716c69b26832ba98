package tools

import (
	"testing"
	"time"

	"github.com/kelleyblackmore/jarvis-mcp/internal/briefing"
	"github.com/kelleyblackmore/jarvis-mcp/internal/home"
	"github.com/kelleyblackmore/jarvis-mcp/internal/log"
	"github.com/kelleyblackmore/jarvis-mcp/internal/planner"
	"github.com/kelleyblackmore/jarvis-mcp/internal/sysinfo"
	"github.com/kelleyblackmore/jarvis-mcp/internal/weather"
)

// testClock pins handler timestamps to a known Friday morning.
func testClock() time.Time {
	return time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)
}

// fixture wires every toolset into one registry over fresh stores,
// with the default device inventory seeded.
type fixture struct {
	registry  *Registry
	tasks     *planner.Tasks
	reminders *planner.Reminders
	schedule  *planner.Schedule
	devices   *home.Devices
	journal   *home.SecurityLog
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := log.NewNop()

	tasks, err := planner.NewTasks()
	if err != nil {
		t.Fatalf("NewTasks() error = %v", err)
	}
	reminders, err := planner.NewReminders()
	if err != nil {
		t.Fatalf("NewReminders() error = %v", err)
	}
	schedule, err := planner.NewSchedule()
	if err != nil {
		t.Fatalf("NewSchedule() error = %v", err)
	}
	devices, err := home.NewDevices()
	if err != nil {
		t.Fatalf("NewDevices() error = %v", err)
	}
	journal := home.NewSecurityLog()
	controller, err := home.NewController(devices, journal, logger)
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	for _, dev := range home.DefaultInventory() {
		devices.Create(dev)
	}

	sim := weather.NewSimulator(42)
	monitor := sysinfo.NewMonitor(42)
	composer, err := briefing.NewComposer(briefing.Config{
		Tasks:      tasks,
		Schedule:   schedule,
		Controller: controller,
		Weather:    sim,
		Monitor:    monitor,
		Clock:      testClock,
		Seed:       42,
		Logger:     logger,
	})
	if err != nil {
		t.Fatalf("NewComposer() error = %v", err)
	}

	registry, err := NewRegistry(logger)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	assistant, err := NewAssistant(AssistantConfig{
		Composer:        composer,
		Monitor:         monitor,
		Tasks:           tasks,
		Reminders:       reminders,
		Schedule:        schedule,
		Devices:         devices,
		DefaultLocation: "home",
		ServerName:      "jarvis",
		Version:         "test",
		Clock:           testClock,
		Logger:          logger,
	})
	if err != nil {
		t.Fatalf("NewAssistant() error = %v", err)
	}
	if err := RegisterAssistant(registry, assistant); err != nil {
		t.Fatalf("RegisterAssistant() error = %v", err)
	}

	plannerSet, err := NewPlanner(PlannerConfig{
		Tasks:     tasks,
		Reminders: reminders,
		Schedule:  schedule,
		Journal:   journal,
		Clock:     testClock,
		Logger:    logger,
	})
	if err != nil {
		t.Fatalf("NewPlanner() error = %v", err)
	}
	if err := RegisterPlanner(registry, plannerSet); err != nil {
		t.Fatalf("RegisterPlanner() error = %v", err)
	}

	homeSet, err := NewHome(controller, devices, logger)
	if err != nil {
		t.Fatalf("NewHome() error = %v", err)
	}
	if err := RegisterHome(registry, homeSet); err != nil {
		t.Fatalf("RegisterHome() error = %v", err)
	}

	utility, err := NewUtility(sim, logger)
	if err != nil {
		t.Fatalf("NewUtility() error = %v", err)
	}
	if err := RegisterUtility(registry, utility); err != nil {
		t.Fatalf("RegisterUtility() error = %v", err)
	}

	return &fixture{
		registry:  registry,
		tasks:     tasks,
		reminders: reminders,
		schedule:  schedule,
		devices:   devices,
		journal:   journal,
	}
}

// dataMap asserts a successful result and returns its map payload.
func dataMap(t *testing.T, result Result) map[string]any {
	t.Helper()
	if result.Status != StatusSuccess {
		t.Fatalf("result status = %q, error = %+v; want success", result.Status, result.Error)
	}
	m, ok := result.Data.(map[string]any)
	if !ok {
		t.Fatalf("result data type = %T, want map[string]any", result.Data)
	}
	return m
}
