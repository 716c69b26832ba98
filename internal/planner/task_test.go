package planner

import (
	"testing"
)

func newTestTasks(t *testing.T) *Tasks {
	t.Helper()
	tasks, err := NewTasks()
	if err != nil {
		t.Fatalf("NewTasks() error = %v", err)
	}
	return tasks
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in     string
		want   Priority
		wantOK bool
	}{
		{in: "low", want: PriorityLow, wantOK: true},
		{in: "MEDIUM", want: PriorityMedium, wantOK: true},
		{in: " high ", want: PriorityHigh, wantOK: true},
		{in: "critical", want: PriorityCritical, wantOK: true},
		{in: "urgent", wantOK: false},
		{in: "", wantOK: false},
	}
	for _, tt := range tests {
		got, ok := ParsePriority(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParsePriority(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseTaskStatus(t *testing.T) {
	tests := []struct {
		in     string
		want   TaskStatus
		wantOK bool
	}{
		{in: "pending", want: StatusPending, wantOK: true},
		{in: "In_Progress", want: StatusInProgress, wantOK: true},
		{in: "completed", want: StatusCompleted, wantOK: true},
		{in: "done", wantOK: false},
	}
	for _, tt := range tests {
		got, ok := ParseTaskStatus(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseTaskStatus(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTasks_Filtered(t *testing.T) {
	tasks := newTestTasks(t)
	tasks.Create(Task{Title: "groceries", Priority: PriorityLow, Status: StatusPending})
	tasks.Create(Task{Title: "taxes", Priority: PriorityHigh, Status: StatusPending})
	tasks.Create(Task{Title: "report", Priority: PriorityHigh, Status: StatusCompleted})
	tasks.Create(Task{Title: "dentist", Priority: PriorityHigh, Status: StatusPending})

	t.Run("no filters", func(t *testing.T) {
		if got := len(tasks.Filtered("", "")); got != 4 {
			t.Errorf("Filtered(,) returned %d tasks, want 4", got)
		}
	})
	t.Run("by status", func(t *testing.T) {
		if got := len(tasks.Filtered(StatusPending, "")); got != 3 {
			t.Errorf("Filtered(pending,) returned %d tasks, want 3", got)
		}
	})
	t.Run("by priority", func(t *testing.T) {
		if got := len(tasks.Filtered("", PriorityHigh)); got != 3 {
			t.Errorf("Filtered(,high) returned %d tasks, want 3", got)
		}
	})
	t.Run("conjunction", func(t *testing.T) {
		got := tasks.Filtered(StatusPending, PriorityHigh)
		if len(got) != 2 {
			t.Fatalf("Filtered(pending,high) returned %d tasks, want 2", len(got))
		}
		if got[0].Title != "taxes" || got[1].Title != "dentist" {
			t.Errorf("Filtered order = %q, %q; want taxes, dentist", got[0].Title, got[1].Title)
		}
	})
}

func TestTasks_OpenByPriority(t *testing.T) {
	tasks := newTestTasks(t)
	tasks.Create(Task{Title: "a", Priority: PriorityLow, Status: StatusPending})
	tasks.Create(Task{Title: "b", Priority: PriorityHigh, Status: StatusInProgress})
	tasks.Create(Task{Title: "c", Priority: PriorityHigh, Status: StatusPending})
	tasks.Create(Task{Title: "d", Priority: PriorityCritical, Status: StatusCompleted})

	counts := tasks.OpenByPriority()

	want := map[Priority]int{
		PriorityLow:      1,
		PriorityMedium:   0,
		PriorityHigh:     2,
		PriorityCritical: 0,
	}
	if len(counts) != len(want) {
		t.Fatalf("OpenByPriority() has %d buckets, want %d", len(counts), len(want))
	}
	for p, n := range want {
		if counts[p] != n {
			t.Errorf("OpenByPriority()[%s] = %d, want %d", p, counts[p], n)
		}
	}
}
