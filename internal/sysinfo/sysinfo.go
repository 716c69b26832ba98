// Package sysinfo reports host diagnostics: simulated load figures
// plus real numbers from the Go runtime.
package sysinfo

import (
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"
)

// Snapshot is one diagnostic reading.
type Snapshot struct {
	CPUPercent     float64 `json:"cpu_pct"`
	MemoryPercent  float64 `json:"memory_pct"`
	NetworkLatency float64 `json:"network_latency_ms"`
	UptimeSeconds  int64   `json:"uptime_s"`
	Goroutines     int     `json:"goroutines"`
	GoVersion      string  `json:"go_version"`
}

// Monitor samples diagnostics. Load figures are simulated from a
// seeded source; uptime counts from construction.
type Monitor struct {
	mu      sync.Mutex
	rng     *rand.Rand
	started time.Time
}

// NewMonitor creates a monitor. A zero seed falls back to the clock.
func NewMonitor(seed int64) *Monitor {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Monitor{
		rng:     rand.New(rand.NewSource(seed)),
		started: time.Now(),
	}
}

// Snapshot samples current diagnostics.
func (m *Monitor) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		CPUPercent:     round1(2 + m.rng.Float64()*28),
		MemoryPercent:  round1(20 + m.rng.Float64()*40),
		NetworkLatency: round1(5 + m.rng.Float64()*45),
		UptimeSeconds:  int64(time.Since(m.started).Seconds()),
		Goroutines:     runtime.NumGoroutine(),
		GoVersion:      runtime.Version(),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
