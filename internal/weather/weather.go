// Package weather fabricates weather readings. Nothing touches the
// network; a seeded random source keeps runs reproducible in tests.
package weather

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Snapshot is one simulated reading.
type Snapshot struct {
	Location    string  `json:"location"`
	Condition   string  `json:"condition"`
	Temperature float64 `json:"temperature_c"`
	Humidity    int     `json:"humidity_pct"`
	WindSpeed   float64 `json:"wind_kph"`
	Summary     string  `json:"summary"`
}

var conditions = []string{
	"sunny", "partly cloudy", "cloudy", "light rain",
	"rainy", "foggy", "windy", "clear",
}

// Simulator produces weather for any location on demand.
type Simulator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator creates a simulator. A zero seed falls back to the
// clock so unseeded runs vary.
func NewSimulator(seed int64) *Simulator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{rng: rand.New(rand.NewSource(seed))}
}

// Snapshot fabricates a reading for the location. An empty location
// reads as "your area".
func (s *Simulator) Snapshot(location string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	loc := strings.TrimSpace(location)
	if loc == "" {
		loc = "your area"
	}

	condition := conditions[s.rng.Intn(len(conditions))]
	temp := round1(8 + s.rng.Float64()*22)
	humidity := 30 + s.rng.Intn(61)
	wind := round1(s.rng.Float64() * 40)

	return Snapshot{
		Location:    loc,
		Condition:   condition,
		Temperature: temp,
		Humidity:    humidity,
		WindSpeed:   wind,
		Summary: fmt.Sprintf("%s in %s, %.1f°C, %d%% humidity, wind %.1f km/h",
			condition, loc, temp, humidity, wind),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
