package planner

import (
	"testing"
	"time"
)

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		in     string
		want   Frequency
		wantOK bool
	}{
		{in: "daily", want: FrequencyDaily, wantOK: true},
		{in: "Weekly", want: FrequencyWeekly, wantOK: true},
		{in: " monthly ", want: FrequencyMonthly, wantOK: true},
		{in: "hourly", wantOK: false},
		{in: "", wantOK: false},
	}
	for _, tt := range tests {
		got, ok := ParseFrequency(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseFrequency(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNextOccurrence(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC) // a Friday

	t.Run("daily fires within a day", func(t *testing.T) {
		rem := Reminder{Message: "stretch", Recurring: true, Frequency: FrequencyDaily}
		next, ok := NextOccurrence(rem, now)
		if !ok {
			t.Fatal("NextOccurrence() ok = false, want true")
		}
		if !next.After(now) {
			t.Errorf("next = %v, want after %v", next, now)
		}
		if next.Sub(now) > 24*time.Hour {
			t.Errorf("next = %v, more than a day away", next)
		}
	})

	t.Run("weekly fires within a week", func(t *testing.T) {
		rem := Reminder{Message: "water plants", Recurring: true, Frequency: FrequencyWeekly}
		next, ok := NextOccurrence(rem, now)
		if !ok {
			t.Fatal("NextOccurrence() ok = false, want true")
		}
		if !next.After(now) || next.Sub(now) > 7*24*time.Hour {
			t.Errorf("next = %v, want within a week after %v", next, now)
		}
	})

	t.Run("monthly fires on the first", func(t *testing.T) {
		rem := Reminder{Message: "pay rent", Recurring: true, Frequency: FrequencyMonthly}
		next, ok := NextOccurrence(rem, now)
		if !ok {
			t.Fatal("NextOccurrence() ok = false, want true")
		}
		if next.Day() != 1 || next.Month() != time.April {
			t.Errorf("next = %v, want April 1st", next)
		}
	})

	t.Run("one-shot has no occurrence", func(t *testing.T) {
		rem := Reminder{Message: "call back", Recurring: false}
		if _, ok := NextOccurrence(rem, now); ok {
			t.Error("NextOccurrence() ok = true for one-shot reminder")
		}
	})

	t.Run("recurring without cadence has no occurrence", func(t *testing.T) {
		rem := Reminder{Message: "odd", Recurring: true}
		if _, ok := NextOccurrence(rem, now); ok {
			t.Error("NextOccurrence() ok = true without a frequency")
		}
	})
}

func TestReminders_Create(t *testing.T) {
	reminders, err := NewReminders()
	if err != nil {
		t.Fatalf("NewReminders() error = %v", err)
	}

	created := reminders.Create(Reminder{Message: "standup", Time: "09:00", Recurring: true, Frequency: FrequencyDaily})
	if created.ID == "" {
		t.Fatal("created reminder has empty ID")
	}

	got, err := reminders.Get(created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Message != "standup" || got.Time != "09:00" || !got.Recurring || got.Frequency != FrequencyDaily {
		t.Errorf("Get() = %+v, want the created reminder", got)
	}
}
