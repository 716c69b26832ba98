// Package briefing assembles the daily overview: greeting, weather,
// host diagnostics, open tasks, today's schedule and the security
// posture, all drawn from the live collections.
package briefing

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/kelleyblackmore/jarvis-mcp/internal/home"
	"github.com/kelleyblackmore/jarvis-mcp/internal/log"
	"github.com/kelleyblackmore/jarvis-mcp/internal/planner"
	"github.com/kelleyblackmore/jarvis-mcp/internal/sysinfo"
	"github.com/kelleyblackmore/jarvis-mcp/internal/weather"
)

// Briefing is one assembled daily overview.
type Briefing struct {
	Greeting    string                   `json:"greeting"`
	Date        string                   `json:"date"`
	Weather     weather.Snapshot         `json:"weather"`
	Diagnostics sysinfo.Snapshot         `json:"diagnostics"`
	OpenTasks   map[planner.Priority]int `json:"open_tasks"`
	TotalOpen   int                      `json:"total_open_tasks"`
	EventCount  int                      `json:"events_today"`
	FirstEvent  *planner.Event           `json:"first_event,omitempty"`
	Security    home.SecurityReport      `json:"security"`
}

var (
	morningGreetings = []string{
		"Good morning, sir. All systems are online.",
		"Good morning. I trust you slept well.",
		"Morning, sir. Ready when you are.",
	}
	afternoonGreetings = []string{
		"Good afternoon, sir. Everything is running smoothly.",
		"Good afternoon. The house is in order.",
	}
	eveningGreetings = []string{
		"Good evening, sir. Winding down for the day.",
		"Good evening. All quiet on the home front.",
	}
)

// Config wires a Composer together.
type Config struct {
	Tasks      *planner.Tasks
	Schedule   *planner.Schedule
	Controller *home.Controller
	Weather    *weather.Simulator
	Monitor    *sysinfo.Monitor

	// Clock defaults to time.Now; tests pin it.
	Clock func() time.Time

	// Seed drives greeting choice; zero falls back to the clock.
	Seed   int64
	Logger log.Logger
}

// Composer builds briefings.
type Composer struct {
	cfg Config

	mu  sync.Mutex
	rng *rand.Rand
}

// NewComposer validates the wiring and returns a Composer.
func NewComposer(cfg Config) (*Composer, error) {
	if cfg.Tasks == nil {
		return nil, fmt.Errorf("task collection is required")
	}
	if cfg.Schedule == nil {
		return nil, fmt.Errorf("schedule is required")
	}
	if cfg.Controller == nil {
		return nil, fmt.Errorf("home controller is required")
	}
	if cfg.Weather == nil {
		return nil, fmt.Errorf("weather simulator is required")
	}
	if cfg.Monitor == nil {
		return nil, fmt.Errorf("system monitor is required")
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Composer{cfg: cfg, rng: rand.New(rand.NewSource(seed))}, nil
}

// Greet produces a greeting for the current time of day.
func (c *Composer) Greet() string {
	var pool []string
	switch hour := c.cfg.Clock().Hour(); {
	case hour < 12:
		pool = morningGreetings
	case hour < 18:
		pool = afternoonGreetings
	default:
		pool = eveningGreetings
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return pool[c.rng.Intn(len(pool))]
}

// Compose assembles the full briefing for a location.
func (c *Composer) Compose(location string) Briefing {
	date := c.cfg.Clock().Format("2006-01-02")

	openBy := c.cfg.Tasks.OpenByPriority()
	total := 0
	for _, n := range openBy {
		total += n
	}

	events := c.cfg.Schedule.OnDate(date)
	var first *planner.Event
	if len(events) > 0 {
		ev := events[0]
		first = &ev
	}

	b := Briefing{
		Greeting:    c.Greet(),
		Date:        date,
		Weather:     c.cfg.Weather.Snapshot(location),
		Diagnostics: c.cfg.Monitor.Snapshot(),
		OpenTasks:   openBy,
		TotalOpen:   total,
		EventCount:  len(events),
		FirstEvent:  first,
		Security:    c.cfg.Controller.SecurityReport(),
	}

	c.cfg.Logger.Debug("briefing composed",
		"date", date,
		"open_tasks", total,
		"events_today", len(events),
		"security", b.Security.Overall)
	return b
}
