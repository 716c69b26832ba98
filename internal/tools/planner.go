package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelleyblackmore/jarvis-mcp/internal/home"
	"github.com/kelleyblackmore/jarvis-mcp/internal/log"
	"github.com/kelleyblackmore/jarvis-mcp/internal/planner"
	"github.com/kelleyblackmore/jarvis-mcp/internal/store"
)

// Tool name constants for the planner toolset.
const (
	// TaskCreateName is the tool name for creating a task.
	TaskCreateName = "jarvis_task_create"
	// TaskListName is the tool name for listing tasks.
	TaskListName = "jarvis_task_list"
	// TaskUpdateName is the tool name for updating a task.
	TaskUpdateName = "jarvis_task_update"
	// ReminderCreateName is the tool name for setting a reminder.
	ReminderCreateName = "jarvis_reminder_create"
	// ReminderListName is the tool name for listing reminders.
	ReminderListName = "jarvis_reminder_list"
	// ScheduleAddName is the tool name for adding a calendar event.
	ScheduleAddName = "jarvis_schedule_add"
	// ScheduleListName is the tool name for listing calendar events.
	ScheduleListName = "jarvis_schedule_list"
)

// PlannerConfig holds dependencies for the planner toolset.
type PlannerConfig struct {
	Tasks     *planner.Tasks
	Reminders *planner.Reminders
	Schedule  *planner.Schedule

	// Journal records task creation alongside smart-home activity.
	Journal *home.SecurityLog

	// Clock defaults to time.Now; tests pin it.
	Clock  func() time.Time
	Logger log.Logger
}

// Planner implements the task, reminder and schedule tools.
type Planner struct {
	cfg PlannerConfig
}

// NewPlanner creates a Planner instance.
func NewPlanner(cfg PlannerConfig) (*Planner, error) {
	if cfg.Tasks == nil {
		return nil, fmt.Errorf("task collection is required")
	}
	if cfg.Reminders == nil {
		return nil, fmt.Errorf("reminder collection is required")
	}
	if cfg.Schedule == nil {
		return nil, fmt.Errorf("schedule is required")
	}
	if cfg.Journal == nil {
		return nil, fmt.Errorf("security journal is required")
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Planner{cfg: cfg}, nil
}

func (p *Planner) stamp() string {
	return p.cfg.Clock().UTC().Format(time.RFC3339)
}

// TaskCreate records a new task. Priority defaults to medium, status
// to pending, description to empty.
func (p *Planner) TaskCreate(_ context.Context, in TaskCreateInput) Result {
	p.cfg.Logger.Debug("TaskCreate called", "title", in.Title)

	title := strings.TrimSpace(in.Title)
	if title == "" {
		p.cfg.Logger.Warn("task creation rejected: empty title")
		return errorResult(ErrCodeValidation, "title is required")
	}

	priority := planner.DefaultPriority
	if in.Priority != "" {
		parsed, ok := planner.ParsePriority(in.Priority)
		if !ok {
			return errorResult(ErrCodeValidation, fmt.Sprintf("invalid priority %q; valid values: %s",
				in.Priority, strings.Join(stringsOf(planner.Priorities()), ", ")))
		}
		priority = parsed
	}

	task := p.cfg.Tasks.Create(planner.Task{
		Title:       title,
		Description: in.Description,
		Priority:    priority,
		Status:      planner.DefaultTaskStatus,
		DueDate:     strings.TrimSpace(in.DueDate),
		CreatedAt:   p.stamp(),
	})
	p.cfg.Journal.Append("Task created: "+task.Title, home.SeverityInfo, home.SourceTasks)

	p.cfg.Logger.Debug("TaskCreate succeeded", "id", task.ID)
	return Result{
		Status: StatusSuccess,
		Data: map[string]any{
			"message": fmt.Sprintf("Task %q created with %s priority.", task.Title, task.Priority),
			"task":    task,
		},
	}
}

// TaskList returns tasks matching the optional status and priority
// filters, applied conjunctively.
func (p *Planner) TaskList(_ context.Context, in TaskListInput) Result {
	p.cfg.Logger.Debug("TaskList called", "status", in.Status, "priority", in.Priority)

	var status planner.TaskStatus
	if in.Status != "" {
		parsed, ok := planner.ParseTaskStatus(in.Status)
		if !ok {
			return errorResult(ErrCodeValidation, fmt.Sprintf("invalid status %q; valid values: %s",
				in.Status, strings.Join(stringsOf(planner.TaskStatuses()), ", ")))
		}
		status = parsed
	}
	var priority planner.Priority
	if in.Priority != "" {
		parsed, ok := planner.ParsePriority(in.Priority)
		if !ok {
			return errorResult(ErrCodeValidation, fmt.Sprintf("invalid priority %q; valid values: %s",
				in.Priority, strings.Join(stringsOf(planner.Priorities()), ", ")))
		}
		priority = parsed
	}

	tasks := p.cfg.Tasks.Filtered(status, priority)
	return Result{
		Status: StatusSuccess,
		Data: map[string]any{
			"count": len(tasks),
			"tasks": tasks,
		},
	}
}

// TaskUpdate changes the status and/or priority of an existing task.
func (p *Planner) TaskUpdate(_ context.Context, in TaskUpdateInput) Result {
	p.cfg.Logger.Debug("TaskUpdate called", "id", in.ID)

	id := strings.TrimSpace(in.ID)
	if id == "" {
		return errorResult(ErrCodeValidation, "id is required")
	}
	if in.Status == "" && in.Priority == "" {
		return errorResult(ErrCodeValidation, "nothing to update: provide status or priority")
	}

	var status planner.TaskStatus
	if in.Status != "" {
		parsed, ok := planner.ParseTaskStatus(in.Status)
		if !ok {
			return errorResult(ErrCodeValidation, fmt.Sprintf("invalid status %q; valid values: %s",
				in.Status, strings.Join(stringsOf(planner.TaskStatuses()), ", ")))
		}
		status = parsed
	}
	var priority planner.Priority
	if in.Priority != "" {
		parsed, ok := planner.ParsePriority(in.Priority)
		if !ok {
			return errorResult(ErrCodeValidation, fmt.Sprintf("invalid priority %q; valid values: %s",
				in.Priority, strings.Join(stringsOf(planner.Priorities()), ", ")))
		}
		priority = parsed
	}

	task, err := p.cfg.Tasks.Update(id, func(t *planner.Task) {
		if status != "" {
			t.Status = status
		}
		if priority != "" {
			t.Priority = priority
		}
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.cfg.Logger.Warn("task update rejected: unknown id", "id", id)
			return errorResult(ErrCodeNotFound, fmt.Sprintf("task not found: %s", id))
		}
		return errorResult(ErrCodeExecution, err.Error())
	}

	p.cfg.Logger.Debug("TaskUpdate succeeded", "id", task.ID)
	return Result{
		Status: StatusSuccess,
		Data: map[string]any{
			"message": fmt.Sprintf("Task %q is now %s priority, %s.", task.Title, task.Priority, task.Status),
			"task":    task,
		},
	}
}

// ReminderCreate records a reminder. A recurring reminder without a
// cadence defaults to daily; a one-shot reminder ignores frequency.
func (p *Planner) ReminderCreate(_ context.Context, in ReminderCreateInput) Result {
	p.cfg.Logger.Debug("ReminderCreate called", "message", in.Message)

	message := strings.TrimSpace(in.Message)
	if message == "" {
		return errorResult(ErrCodeValidation, "message is required")
	}
	remindAt := strings.TrimSpace(in.Time)
	if remindAt == "" {
		return errorResult(ErrCodeValidation, "time is required")
	}

	var frequency planner.Frequency
	if in.Recurring {
		frequency = planner.DefaultFrequency
		if in.Frequency != "" {
			parsed, ok := planner.ParseFrequency(in.Frequency)
			if !ok {
				return errorResult(ErrCodeValidation, fmt.Sprintf("invalid frequency %q; valid values: %s",
					in.Frequency, strings.Join(stringsOf(planner.Frequencies()), ", ")))
			}
			frequency = parsed
		}
	}

	reminder := p.cfg.Reminders.Create(planner.Reminder{
		Message:   message,
		Time:      remindAt,
		Recurring: in.Recurring,
		Frequency: frequency,
		CreatedAt: p.stamp(),
	})

	p.cfg.Logger.Debug("ReminderCreate succeeded", "id", reminder.ID)
	return Result{
		Status: StatusSuccess,
		Data: map[string]any{
			"message":  fmt.Sprintf("Reminder set for %s.", reminder.Time),
			"reminder": reminder,
		},
	}
}

// reminderView decorates a reminder with its next computed occurrence.
type reminderView struct {
	planner.Reminder
	NextOccurrence string `json:"next_occurrence,omitempty"`
}

// ReminderList returns every reminder, newest last, with the next
// occurrence computed for recurring ones.
func (p *Planner) ReminderList(_ context.Context, _ ReminderListInput) Result {
	p.cfg.Logger.Debug("ReminderList called")

	now := p.cfg.Clock()
	items := p.cfg.Reminders.List()
	views := make([]reminderView, 0, len(items))
	for _, rem := range items {
		view := reminderView{Reminder: rem}
		if next, ok := planner.NextOccurrence(rem, now); ok {
			view.NextOccurrence = next.Format(time.RFC3339)
		}
		views = append(views, view)
	}

	return Result{
		Status: StatusSuccess,
		Data: map[string]any{
			"count":     len(views),
			"reminders": views,
		},
	}
}

// ScheduleAdd records a calendar event.
func (p *Planner) ScheduleAdd(_ context.Context, in ScheduleAddInput) Result {
	p.cfg.Logger.Debug("ScheduleAdd called", "title", in.Title)

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return errorResult(ErrCodeValidation, "title is required")
	}
	start := strings.TrimSpace(in.StartTime)
	if start == "" {
		return errorResult(ErrCodeValidation, "startTime is required")
	}
	end := strings.TrimSpace(in.EndTime)
	if end == "" {
		return errorResult(ErrCodeValidation, "endTime is required")
	}

	event := p.cfg.Schedule.Create(planner.Event{
		Title:       title,
		Description: in.Description,
		StartTime:   start,
		EndTime:     end,
		Location:    strings.TrimSpace(in.Location),
		CreatedAt:   p.stamp(),
	})

	p.cfg.Logger.Debug("ScheduleAdd succeeded", "id", event.ID)
	return Result{
		Status: StatusSuccess,
		Data: map[string]any{
			"message": fmt.Sprintf("Event %q scheduled from %s to %s.", event.Title, event.StartTime, event.EndTime),
			"event":   event,
		},
	}
}

// ScheduleList returns events on one day, defaulting to today.
func (p *Planner) ScheduleList(_ context.Context, in ScheduleListInput) Result {
	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = p.cfg.Clock().Format("2006-01-02")
	}
	p.cfg.Logger.Debug("ScheduleList called", "date", date)

	events := p.cfg.Schedule.OnDate(date)
	return Result{
		Status: StatusSuccess,
		Data: map[string]any{
			"date":   date,
			"count":  len(events),
			"events": events,
		},
	}
}

// RegisterPlanner adds the planner tools to the registry.
func RegisterPlanner(r *Registry, p *Planner) error {
	if r == nil {
		return fmt.Errorf("registry is required")
	}
	if p == nil {
		return fmt.Errorf("planner toolset is required")
	}

	priorities := stringsOf(planner.Priorities())
	statuses := stringsOf(planner.TaskStatuses())

	taskCreateSchema, err := inputSchema[TaskCreateInput](withEnum("priority", priorities...))
	if err != nil {
		return fmt.Errorf("schema for %s: %w", TaskCreateName, err)
	}
	if err := Add(r, TaskCreateName,
		"Create a task. Priority defaults to medium and status to pending; an optional due date is kept as given.",
		taskCreateSchema, p.TaskCreate); err != nil {
		return err
	}

	taskListSchema, err := inputSchema[TaskListInput](
		withEnum("status", statuses...),
		withEnum("priority", priorities...))
	if err != nil {
		return fmt.Errorf("schema for %s: %w", TaskListName, err)
	}
	if err := Add(r, TaskListName,
		"List tasks in creation order, optionally narrowed by status and priority. Both filters must match when given.",
		taskListSchema, p.TaskList); err != nil {
		return err
	}

	taskUpdateSchema, err := inputSchema[TaskUpdateInput](
		withEnum("status", statuses...),
		withEnum("priority", priorities...))
	if err != nil {
		return fmt.Errorf("schema for %s: %w", TaskUpdateName, err)
	}
	if err := Add(r, TaskUpdateName,
		"Update the status and/or priority of a task by id. Fields not provided keep their values.",
		taskUpdateSchema, p.TaskUpdate); err != nil {
		return err
	}

	reminderCreateSchema, err := inputSchema[ReminderCreateInput](
		withEnum("frequency", stringsOf(planner.Frequencies())...))
	if err != nil {
		return fmt.Errorf("schema for %s: %w", ReminderCreateName, err)
	}
	if err := Add(r, ReminderCreateName,
		"Set a reminder for a given time. Recurring reminders repeat daily, weekly or monthly; the cadence defaults to daily.",
		reminderCreateSchema, p.ReminderCreate); err != nil {
		return err
	}

	reminderListSchema, err := inputSchema[ReminderListInput]()
	if err != nil {
		return fmt.Errorf("schema for %s: %w", ReminderListName, err)
	}
	if err := Add(r, ReminderListName,
		"List all reminders. Recurring ones include their next computed occurrence.",
		reminderListSchema, p.ReminderList); err != nil {
		return err
	}

	scheduleAddSchema, err := inputSchema[ScheduleAddInput]()
	if err != nil {
		return fmt.Errorf("schema for %s: %w", ScheduleAddName, err)
	}
	if err := Add(r, ScheduleAddName,
		"Add an event to the schedule with a title, start time and end time, plus optional description and location.",
		scheduleAddSchema, p.ScheduleAdd); err != nil {
		return err
	}

	scheduleListSchema, err := inputSchema[ScheduleListInput]()
	if err != nil {
		return fmt.Errorf("schema for %s: %w", ScheduleListName, err)
	}
	if err := Add(r, ScheduleListName,
		"List events on one day (YYYY-MM-DD), defaulting to today.",
		scheduleListSchema, p.ScheduleList); err != nil {
		return err
	}

	return nil
}
