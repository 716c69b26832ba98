package planner

import (
	"strings"

	"github.com/kelleyblackmore/jarvis-mcp/internal/store"
)

// Event is one calendar entry. StartTime and EndTime are ISO 8601
// strings so date filtering is a plain prefix match.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Location    string `json:"location,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// Schedule is the calendar.
type Schedule struct {
	*store.Store[Event]
}

// NewSchedule creates an empty calendar.
func NewSchedule() (*Schedule, error) {
	st, err := store.New(store.Config[Event]{
		Prefix:   "event_",
		AssignID: func(e *Event, id string) { e.ID = id },
	})
	if err != nil {
		return nil, err
	}
	return &Schedule{Store: st}, nil
}

// OnDate returns events starting on the given YYYY-MM-DD day.
func (s *Schedule) OnDate(date string) []Event {
	return s.List(func(ev Event) bool {
		return strings.HasPrefix(ev.StartTime, date)
	})
}

// FirstOnDate returns the earliest-created event on the given day.
func (s *Schedule) FirstOnDate(date string) (Event, bool) {
	events := s.OnDate(date)
	if len(events) == 0 {
		return Event{}, false
	}
	return events[0], true
}
