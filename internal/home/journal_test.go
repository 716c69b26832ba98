package home

import (
	"fmt"
	"testing"
)

func TestSecurityLog_NewestFirst(t *testing.T) {
	journal := NewSecurityLog()
	journal.Append("first", SeverityInfo, SourceSmartHome)
	journal.Append("second", SeverityWarning, SourceSmartHome)
	journal.Append("third", SeverityAlert, SourceSmartHome)

	entries := journal.Recent(10)
	if len(entries) != 3 {
		t.Fatalf("Recent(10) returned %d entries, want 3", len(entries))
	}
	for i, want := range []string{"third", "second", "first"} {
		if entries[i].Event != want {
			t.Errorf("entries[%d].Event = %q, want %q", i, entries[i].Event, want)
		}
	}
}

func TestSecurityLog_CapDropsOldest(t *testing.T) {
	journal := NewSecurityLog()
	for i := 0; i < JournalCapacity+1; i++ {
		journal.Append(fmt.Sprintf("event %d", i), SeverityInfo, SourceSmartHome)
	}

	if got := journal.Len(); got != JournalCapacity {
		t.Fatalf("Len() = %d, want %d", got, JournalCapacity)
	}

	entries := journal.Recent(JournalCapacity)
	if entries[0].Event != fmt.Sprintf("event %d", JournalCapacity) {
		t.Errorf("newest entry = %q, want %q", entries[0].Event, fmt.Sprintf("event %d", JournalCapacity))
	}
	oldest := entries[len(entries)-1]
	if oldest.Event != "event 1" {
		t.Errorf("oldest surviving entry = %q, want %q (event 0 should be dropped)", oldest.Event, "event 1")
	}
}

func TestSecurityLog_RecentFiltersBySeverity(t *testing.T) {
	journal := NewSecurityLog()
	journal.Append("routine", SeverityInfo, SourceSmartHome)
	journal.Append("odd", SeverityWarning, SourceSmartHome)
	journal.Append("break-in", SeverityAlert, SourceSmartHome)
	journal.Append("fire", SeverityCritical, SourceSmartHome)

	entries := journal.Recent(10, SeverityAlert, SeverityCritical)
	if len(entries) != 2 {
		t.Fatalf("Recent(alert,critical) returned %d entries, want 2", len(entries))
	}
	if entries[0].Event != "fire" || entries[1].Event != "break-in" {
		t.Errorf("filtered entries = %q, %q; want fire, break-in", entries[0].Event, entries[1].Event)
	}
}

func TestSecurityLog_RecentHonorsLimit(t *testing.T) {
	journal := NewSecurityLog()
	for i := 0; i < 10; i++ {
		journal.Append(fmt.Sprintf("event %d", i), SeverityInfo, SourceSmartHome)
	}

	if got := len(journal.Recent(3)); got != 3 {
		t.Errorf("Recent(3) returned %d entries, want 3", got)
	}
	if got := journal.Recent(0); got != nil {
		t.Errorf("Recent(0) = %v, want nil", got)
	}
	if got := journal.Recent(-1); got != nil {
		t.Errorf("Recent(-1) = %v, want nil", got)
	}
}

func TestSecurityLog_EntriesCarryMetadata(t *testing.T) {
	journal := NewSecurityLog()
	journal.Append("Task created: groceries", SeverityInfo, SourceTasks)

	entry := journal.Recent(1)[0]
	if entry.ID == "" {
		t.Error("entry ID is empty")
	}
	if entry.Timestamp == "" {
		t.Error("entry Timestamp is empty")
	}
	if entry.Source != SourceTasks {
		t.Errorf("entry Source = %q, want %q", entry.Source, SourceTasks)
	}
	if entry.Severity != SeverityInfo {
		t.Errorf("entry Severity = %q, want %q", entry.Severity, SeverityInfo)
	}
}
