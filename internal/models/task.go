package models

import "time"

// TimeSpan is one contiguous interval during which a task was being
// worked on. A nil Stop means the interval is still running.
type TimeSpan struct {
	Start time.Time  `json:"start"`
	Stop  *time.Time `json:"stop"`
}

// Closed reports whether the interval has been stopped.
func (s TimeSpan) Closed() bool {
	return s.Stop != nil
}

// Seconds returns the interval length in seconds. Open intervals are
// measured up to now.
func (s TimeSpan) Seconds(now time.Time) float64 {
	end := now
	if s.Stop != nil {
		end = *s.Stop
	}
	return end.Sub(s.Start).Seconds()
}

// Task is a named unit of tracked work with free-text comments and an
// ordered log of work intervals. Names are unique within a day.
type Task struct {
	Name     string     `json:"name"`
	Comments string     `json:"comments"`
	Spans    []TimeSpan `json:"timespans"`
}

// TotalSeconds returns the accumulated work time: the sum of all closed
// intervals plus, if the last interval is still open, the time elapsed
// from its start to now.
func (t Task) TotalSeconds(now time.Time) int {
	var seconds float64
	for _, span := range t.Spans {
		seconds += span.Seconds(now)
	}
	return int(seconds)
}

// IsStarted reports whether the task's last interval is still open.
func (t Task) IsStarted() bool {
	if len(t.Spans) == 0 {
		return false
	}
	return !t.Spans[len(t.Spans)-1].Closed()
}

// Clone returns a deep copy. Mutating the copy never affects the
// original, including its interval log.
func (t Task) Clone() Task {
	c := t
	c.Spans = make([]TimeSpan, len(t.Spans))
	for i, span := range t.Spans {
		c.Spans[i] = span
		if span.Stop != nil {
			stop := *span.Stop
			c.Spans[i].Stop = &stop
		}
	}
	return c
}

// CloneTasks deep-copies a task list.
func CloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
