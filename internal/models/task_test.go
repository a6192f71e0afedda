package models

import (
	"testing"
	"time"
)

func span(start time.Time, d time.Duration) TimeSpan {
	stop := start.Add(d)
	return TimeSpan{Start: start, Stop: &stop}
}

func TestTaskIsStarted(t *testing.T) {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{name: "no spans", task: Task{Name: "a"}, want: false},
		{name: "closed span", task: Task{Name: "a", Spans: []TimeSpan{span(base, time.Minute)}}, want: false},
		{name: "trailing open span", task: Task{Name: "a", Spans: []TimeSpan{span(base, time.Minute), {Start: base.Add(time.Hour)}}}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.IsStarted(); got != tt.want {
				t.Errorf("IsStarted = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTaskTotalSecondsWithOpenSpan(t *testing.T) {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	task := Task{
		Name: "a",
		Spans: []TimeSpan{
			span(base, time.Minute),
			{Start: base.Add(10 * time.Minute)},
		},
	}

	now := base.Add(10*time.Minute + 30*time.Second)
	if got := task.TotalSeconds(now); got != 90 {
		t.Errorf("TotalSeconds = %d, want 90", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	task := Task{Name: "a", Comments: "note", Spans: []TimeSpan{span(base, time.Minute)}}

	clone := task.Clone()
	clone.Spans[0].Start = base.Add(time.Hour)
	*clone.Spans[0].Stop = base.Add(2 * time.Hour)

	if !task.Spans[0].Start.Equal(base) {
		t.Error("mutating clone start changed the original")
	}
	if !task.Spans[0].Stop.Equal(base.Add(time.Minute)) {
		t.Error("mutating clone stop changed the original")
	}
}
