package planner

import (
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/kelleyblackmore/jarvis-mcp/internal/store"
)

// Frequency is the recurrence cadence of a reminder.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// DefaultFrequency applies when a recurring reminder omits a cadence.
const DefaultFrequency = FrequencyDaily

// Frequencies lists all supported cadences.
func Frequencies() []Frequency {
	return []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly}
}

// ParseFrequency normalizes and validates a frequency string.
func ParseFrequency(s string) (Frequency, bool) {
	f := Frequency(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return f, true
	}
	return "", false
}

func (f Frequency) cronSpec() string {
	switch f {
	case FrequencyWeekly:
		return "@weekly"
	case FrequencyMonthly:
		return "@monthly"
	default:
		return "@daily"
	}
}

// Reminder is a one-shot or recurring nudge. Time is an opaque string
// ("07:30", "2024-03-15T07:30:00Z", "tomorrow morning") kept as given.
type Reminder struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Time      string    `json:"time"`
	Recurring bool      `json:"recurring"`
	Frequency Frequency `json:"frequency,omitempty"`
	CreatedAt string    `json:"createdAt"`
}

// Reminders is the reminder collection.
type Reminders struct {
	*store.Store[Reminder]
}

// NewReminders creates an empty reminder collection.
func NewReminders() (*Reminders, error) {
	st, err := store.New(store.Config[Reminder]{
		Prefix:   "reminder_",
		AssignID: func(r *Reminder, id string) { r.ID = id },
	})
	if err != nil {
		return nil, err
	}
	return &Reminders{Store: st}, nil
}

// NextOccurrence computes when a recurring reminder next fires after
// now. One-shot reminders report no occurrence.
func NextOccurrence(rem Reminder, now time.Time) (time.Time, bool) {
	if !rem.Recurring || rem.Frequency == "" {
		return time.Time{}, false
	}
	sched, err := cron.ParseStandard(rem.Frequency.cronSpec())
	if err != nil {
		return time.Time{}, false
	}
	return sched.Next(now), true
}
