package home

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity classifies security journal entries.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityAlert    Severity = "alert"
	SeverityCritical Severity = "critical"
)

// Journal sources.
const (
	SourceSmartHome = "smart_home"
	SourceTasks     = "tasks"
)

// JournalCapacity bounds the security journal. Once full, the oldest
// entries are dropped silently.
const JournalCapacity = 100

// LogEntry is one immutable security journal record.
type LogEntry struct {
	ID        string   `json:"id"`
	Timestamp string   `json:"timestamp"`
	Event     string   `json:"event"`
	Severity  Severity `json:"severity"`
	Source    string   `json:"source"`
}

// SecurityLog is the bounded, newest-first security journal. Safe for
// concurrent use.
type SecurityLog struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewSecurityLog creates an empty journal.
func NewSecurityLog() *SecurityLog {
	return &SecurityLog{}
}

// Append records an event at capture time and returns the stored entry.
// The newest entry sits at index 0; beyond JournalCapacity the oldest is
// dropped.
func (l *SecurityLog) Append(event string, severity Severity, source string) LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := LogEntry{
		ID:        "log_" + uuid.NewString(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Event:     event,
		Severity:  severity,
		Source:    source,
	}
	l.entries = append([]LogEntry{entry}, l.entries...)
	if len(l.entries) > JournalCapacity {
		l.entries = l.entries[:JournalCapacity]
	}
	return entry
}

// Recent returns up to limit entries, newest first. When severities are
// given, only entries carrying one of them are considered.
func (l *SecurityLog) Recent(limit int, severities ...Severity) []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limit <= 0 {
		return nil
	}
	out := make([]LogEntry, 0, limit)
	for _, entry := range l.entries {
		if len(severities) > 0 && !severityIn(entry.Severity, severities) {
			continue
		}
		out = append(out, entry)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Len reports the current journal size.
func (l *SecurityLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func severityIn(s Severity, set []Severity) bool {
	for _, candidate := range set {
		if s == candidate {
			return true
		}
	}
	return false
}
