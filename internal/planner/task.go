// Package planner holds jarvis's personal-organization records: tasks,
// recurring reminders and the event schedule.
package planner

import (
	"strings"

	"github.com/kelleyblackmore/jarvis-mcp/internal/store"
)

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// DefaultPriority is assigned when a task is created without one.
const DefaultPriority = PriorityMedium

// Priorities lists all priorities from least to most urgent.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
}

// ParsePriority normalizes and validates a priority string.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return p, true
	}
	return "", false
}

// TaskStatus tracks a task through its lifecycle.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// DefaultTaskStatus is assigned when a task is created without one.
const DefaultTaskStatus = StatusPending

// TaskStatuses lists all task statuses in lifecycle order.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{StatusPending, StatusInProgress, StatusCompleted}
}

// ParseTaskStatus normalizes and validates a status string.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	st := TaskStatus(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusPending, StatusInProgress, StatusCompleted:
		return st, true
	}
	return "", false
}

// Task is one tracked to-do item.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	Status      TaskStatus `json:"status"`
	DueDate     string     `json:"dueDate,omitempty"`
	CreatedAt   string     `json:"createdAt"`
}

// Tasks is the task collection.
type Tasks struct {
	*store.Store[Task]
}

// NewTasks creates an empty task collection.
func NewTasks() (*Tasks, error) {
	st, err := store.New(store.Config[Task]{
		Prefix:   "task_",
		AssignID: func(t *Task, id string) { t.ID = id },
	})
	if err != nil {
		return nil, err
	}
	return &Tasks{Store: st}, nil
}

// Filtered returns tasks matching the optional status and priority
// filters; an empty filter matches everything.
func (t *Tasks) Filtered(status TaskStatus, priority Priority) []Task {
	var preds []func(Task) bool
	if status != "" {
		preds = append(preds, func(tk Task) bool { return tk.Status == status })
	}
	if priority != "" {
		preds = append(preds, func(tk Task) bool { return tk.Priority == priority })
	}
	return t.List(preds...)
}

// OpenByPriority counts tasks that are not completed, bucketed by
// priority. Every priority appears in the result, zero included.
func (t *Tasks) OpenByPriority() map[Priority]int {
	counts := make(map[Priority]int, len(Priorities()))
	for _, p := range Priorities() {
		counts[p] = 0
	}
	for _, tk := range t.List() {
		if tk.Status == StatusCompleted {
			continue
		}
		counts[tk.Priority]++
	}
	return counts
}
