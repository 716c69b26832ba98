package briefing

import (
	"strings"
	"testing"
	"time"

	"github.com/kelleyblackmore/jarvis-mcp/internal/home"
	"github.com/kelleyblackmore/jarvis-mcp/internal/log"
	"github.com/kelleyblackmore/jarvis-mcp/internal/planner"
	"github.com/kelleyblackmore/jarvis-mcp/internal/sysinfo"
	"github.com/kelleyblackmore/jarvis-mcp/internal/weather"
)

func newTestComposer(t *testing.T, clock func() time.Time) (*Composer, *planner.Tasks, *planner.Schedule, *home.Devices) {
	t.Helper()

	tasks, err := planner.NewTasks()
	if err != nil {
		t.Fatalf("NewTasks() error = %v", err)
	}
	schedule, err := planner.NewSchedule()
	if err != nil {
		t.Fatalf("NewSchedule() error = %v", err)
	}
	devices, err := home.NewDevices()
	if err != nil {
		t.Fatalf("NewDevices() error = %v", err)
	}
	controller, err := home.NewController(devices, home.NewSecurityLog(), log.NewNop())
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}

	composer, err := NewComposer(Config{
		Tasks:      tasks,
		Schedule:   schedule,
		Controller: controller,
		Weather:    weather.NewSimulator(42),
		Monitor:    sysinfo.NewMonitor(42),
		Clock:      clock,
		Seed:       42,
		Logger:     log.NewNop(),
	})
	if err != nil {
		t.Fatalf("NewComposer() error = %v", err)
	}
	return composer, tasks, schedule, devices
}

func TestNewComposer_Validation(t *testing.T) {
	if _, err := NewComposer(Config{}); err == nil {
		t.Error("NewComposer(empty) succeeded, want error")
	}
}

func TestGreet_TimeOfDay(t *testing.T) {
	tests := []struct {
		name string
		hour int
		want string
	}{
		{name: "morning", hour: 7, want: "orning"},
		{name: "noon boundary", hour: 12, want: "afternoon"},
		{name: "afternoon", hour: 15, want: "afternoon"},
		{name: "evening", hour: 19, want: "evening"},
		{name: "midnight", hour: 0, want: "orning"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := func() time.Time {
				return time.Date(2024, 3, 15, tt.hour, 0, 0, 0, time.UTC)
			}
			composer, _, _, _ := newTestComposer(t, clock)
			got := composer.Greet()
			if !strings.Contains(strings.ToLower(got), tt.want) {
				t.Errorf("Greet() at %02d:00 = %q, want a %s greeting", tt.hour, got, tt.name)
			}
		})
	}
}

func TestCompose(t *testing.T) {
	clock := func() time.Time {
		return time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)
	}
	composer, tasks, schedule, devices := newTestComposer(t, clock)

	tasks.Create(planner.Task{Title: "a", Priority: planner.PriorityHigh, Status: planner.StatusPending})
	tasks.Create(planner.Task{Title: "b", Priority: planner.PriorityHigh, Status: planner.StatusPending})
	tasks.Create(planner.Task{Title: "c", Priority: planner.PriorityLow, Status: planner.StatusCompleted})
	schedule.Create(planner.Event{Title: "standup", StartTime: "2024-03-15T09:00:00Z"})
	schedule.Create(planner.Event{Title: "review", StartTime: "2024-03-15T14:00:00Z"})
	schedule.Create(planner.Event{Title: "flight", StartTime: "2024-03-16T07:00:00Z"})
	for _, dev := range home.DefaultInventory() {
		devices.Create(dev)
	}

	b := composer.Compose("Berlin")

	if b.Date != "2024-03-15" {
		t.Errorf("Date = %q, want 2024-03-15", b.Date)
	}
	if b.Greeting == "" {
		t.Error("Greeting is empty")
	}
	if b.TotalOpen != 2 {
		t.Errorf("TotalOpen = %d, want 2", b.TotalOpen)
	}
	if got := b.OpenTasks[planner.PriorityHigh]; got != 2 {
		t.Errorf("OpenTasks[high] = %d, want 2", got)
	}
	if got := b.OpenTasks[planner.PriorityMedium]; got != 0 {
		t.Errorf("OpenTasks[medium] = %d, want 0", got)
	}
	if len(b.OpenTasks) != 4 {
		t.Errorf("OpenTasks has %d buckets, want all 4 priorities", len(b.OpenTasks))
	}
	if b.EventCount != 2 {
		t.Errorf("EventCount = %d, want 2", b.EventCount)
	}
	if b.FirstEvent == nil || b.FirstEvent.Title != "standup" {
		t.Errorf("FirstEvent = %+v, want standup", b.FirstEvent)
	}
	if b.Weather.Location != "Berlin" {
		t.Errorf("Weather.Location = %q, want Berlin", b.Weather.Location)
	}
	if b.Security.Overall != home.OverallSecure {
		t.Errorf("Security.Overall = %q, want %q", b.Security.Overall, home.OverallSecure)
	}
	if b.Diagnostics.GoVersion == "" {
		t.Error("Diagnostics.GoVersion is empty")
	}
}

func TestCompose_EmptyDay(t *testing.T) {
	clock := func() time.Time {
		return time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	}
	composer, _, _, _ := newTestComposer(t, clock)

	b := composer.Compose("")

	if b.TotalOpen != 0 {
		t.Errorf("TotalOpen = %d, want 0", b.TotalOpen)
	}
	if b.EventCount != 0 || b.FirstEvent != nil {
		t.Errorf("EventCount = %d, FirstEvent = %+v; want empty day", b.EventCount, b.FirstEvent)
	}
	if b.Security.Overall != home.OverallSecure {
		t.Errorf("Security.Overall = %q on empty inventory, want %q", b.Security.Overall, home.OverallSecure)
	}
}
