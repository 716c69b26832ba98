package tools

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/kelleyblackmore/jarvis-mcp/internal/home"
)

// Input structs for every tool in the catalogue. Fields without
// omitempty are required. Enum restrictions are attached after schema
// derivation because reflection cannot see them.

// GreetInput defines input for jarvis_greet (no input needed).
type GreetInput struct{}

// StatusInput defines input for jarvis_status (no input needed).
type StatusInput struct{}

// TimeInput defines input for jarvis_time.
type TimeInput struct {
	Timezone string `json:"timezone,omitempty" jsonschema:"IANA timezone name such as Europe/Berlin; defaults to the server timezone"`
}

// WeatherInput defines input for jarvis_weather.
type WeatherInput struct {
	Location string `json:"location" jsonschema:"City or area to report weather for"`
}

// TaskCreateInput defines input for jarvis_task_create.
type TaskCreateInput struct {
	Title       string `json:"title" jsonschema:"Short task title"`
	Description string `json:"description,omitempty" jsonschema:"Longer free-form task description"`
	Priority    string `json:"priority,omitempty" jsonschema:"Task priority; defaults to medium"`
	DueDate     string `json:"dueDate,omitempty" jsonschema:"Optional due date such as 2024-03-15"`
}

// TaskListInput defines input for jarvis_task_list.
type TaskListInput struct {
	Status   string `json:"status,omitempty" jsonschema:"Only tasks with this status"`
	Priority string `json:"priority,omitempty" jsonschema:"Only tasks with this priority"`
}

// TaskUpdateInput defines input for jarvis_task_update.
type TaskUpdateInput struct {
	ID       string `json:"id" jsonschema:"Task id returned at creation"`
	Status   string `json:"status,omitempty" jsonschema:"New task status"`
	Priority string `json:"priority,omitempty" jsonschema:"New task priority"`
}

// ReminderCreateInput defines input for jarvis_reminder_create.
type ReminderCreateInput struct {
	Message   string `json:"message" jsonschema:"What to be reminded about"`
	Time      string `json:"time" jsonschema:"When to remind; free-form such as 07:30 or tomorrow morning"`
	Recurring bool   `json:"recurring,omitempty" jsonschema:"Whether the reminder repeats"`
	Frequency string `json:"frequency,omitempty" jsonschema:"Recurrence cadence; only used when recurring is true"`
}

// ReminderListInput defines input for jarvis_reminder_list (no input needed).
type ReminderListInput struct{}

// ScheduleAddInput defines input for jarvis_schedule_add.
type ScheduleAddInput struct {
	Title       string `json:"title" jsonschema:"Event title"`
	StartTime   string `json:"startTime" jsonschema:"ISO 8601 start time such as 2024-03-15T09:00:00Z"`
	EndTime     string `json:"endTime" jsonschema:"ISO 8601 end time"`
	Description string `json:"description,omitempty" jsonschema:"Free-form event description"`
	Location    string `json:"location,omitempty" jsonschema:"Where the event takes place"`
}

// ScheduleListInput defines input for jarvis_schedule_list.
type ScheduleListInput struct {
	Date string `json:"date,omitempty" jsonschema:"Day to list as YYYY-MM-DD; defaults to today"`
}

// SmartHomeListInput defines input for jarvis_smart_home_list.
type SmartHomeListInput struct {
	Room string `json:"room,omitempty" jsonschema:"Only devices in this room; case-insensitive"`
	Type string `json:"type,omitempty" jsonschema:"Only devices of this type"`
}

// SmartHomeControlInput defines input for jarvis_smart_home_control.
type SmartHomeControlInput struct {
	DeviceID string        `json:"deviceId" jsonschema:"Device id from jarvis_smart_home_list"`
	Action   string        `json:"action" jsonschema:"Transition to apply"`
	Settings home.Settings `json:"settings,omitempty" jsonschema:"Setting keys to merge into the device"`
}

// SecurityStatusInput defines input for jarvis_security_status (no input needed).
type SecurityStatusInput struct{}

// SecurityLockdownInput defines input for jarvis_security_lockdown.
type SecurityLockdownInput struct {
	Confirm bool `json:"confirm" jsonschema:"Must be true to engage the lockdown"`
}

// CalculateInput defines input for jarvis_calculate.
type CalculateInput struct {
	Expression string `json:"expression" jsonschema:"Arithmetic expression using numbers with + - * / % and parentheses"`
}

// ConvertInput defines input for jarvis_convert.
type ConvertInput struct {
	Value float64 `json:"value" jsonschema:"Numeric value to convert"`
	From  string  `json:"from" jsonschema:"Source unit such as celsius or km or lbs"`
	To    string  `json:"to" jsonschema:"Target unit"`
}

// BriefingInput defines input for jarvis_daily_briefing.
type BriefingInput struct {
	Location string `json:"location,omitempty" jsonschema:"Location for the weather portion; defaults to the configured one"`
}

// inputSchema derives the JSON schema for In and applies any tweaks.
func inputSchema[In any](tweaks ...func(*jsonschema.Schema)) (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[In](nil)
	if err != nil {
		return nil, err
	}
	for _, tweak := range tweaks {
		tweak(schema)
	}
	return schema, nil
}

// withEnum restricts a named property to the given values.
func withEnum(property string, values ...string) func(*jsonschema.Schema) {
	return func(s *jsonschema.Schema) {
		p, ok := s.Properties[property]
		if !ok {
			return
		}
		enum := make([]any, len(values))
		for i, v := range values {
			enum[i] = v
		}
		p.Enum = enum
	}
}

// withObjectProperty swaps a named property for a free-form object
// schema. The settings bag needs this: its scalar variant values are
// invisible to reflection, so the real checking happens on decode.
func withObjectProperty(property, description string) func(*jsonschema.Schema) {
	return func(s *jsonschema.Schema) {
		if s.Properties == nil {
			s.Properties = make(map[string]*jsonschema.Schema)
		}
		s.Properties[property] = &jsonschema.Schema{
			Type:        "object",
			Description: description,
		}
	}
}

// stringsOf widens a typed enum slice for schema wiring.
func stringsOf[S ~string](vals []S) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}
