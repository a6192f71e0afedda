// Package tracker holds the day's task list and the single running
// timer. All methods are index-based and mutate in place; out-of-range
// indices are silent no-ops so callers driving the manager from a
// selection model never have to pre-validate.
package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/blsam/trackie/internal/constants"
	"github.com/blsam/trackie/internal/models"
)

// ErrTaskExists is returned by Add when a task with the same name is
// already present for the day.
var ErrTaskExists = errors.New("task already exists")

const noActive = -1

// Manager owns the ordered task list for exactly one calendar day and
// tracks at most one active (running) task. It is not safe for
// concurrent use; all mutation is expected to happen on one goroutine.
type Manager struct {
	tasks  []models.Task
	active int

	// now is the clock used for opening and closing intervals.
	now func() time.Time
}

// New returns an empty manager using the UTC wall clock.
func New() *Manager {
	return NewWithClock(func() time.Time { return time.Now().UTC() })
}

// NewWithClock returns an empty manager with an injected clock.
func NewWithClock(now func() time.Time) *Manager {
	return &Manager{
		active: noActive,
		now:    now,
	}
}

// Len returns the number of tasks.
func (m *Manager) Len() int {
	return len(m.tasks)
}

// Tasks returns a deep, independent snapshot of the task list. Readers
// of the snapshot never observe later mutations.
func (m *Manager) Tasks() []models.Task {
	return models.CloneTasks(m.tasks)
}

// Clear empties all state. Used when switching days.
func (m *Manager) Clear() {
	m.tasks = nil
	m.active = noActive
}

// Has reports whether a task with the given name exists.
func (m *Manager) Has(name string) bool {
	for _, t := range m.tasks {
		if t.Name == name {
			return true
		}
	}
	return false
}

// Add appends a task. If a task with the same name already exists the
// manager is left unchanged and ErrTaskExists is returned. A task that
// arrives with an open interval (e.g. loaded from disk mid-run)
// becomes the active task.
func (m *Manager) Add(task models.Task) error {
	if m.Has(task.Name) {
		return fmt.Errorf("%w: %s", ErrTaskExists, task.Name)
	}

	m.tasks = append(m.tasks, task)
	if task.IsStarted() {
		m.active = len(m.tasks) - 1
	}
	return nil
}

// Get returns the task at index, or ok=false when out of range.
func (m *Manager) Get(index int) (models.Task, bool) {
	if index < 0 || index >= len(m.tasks) {
		return models.Task{}, false
	}
	return m.tasks[index], true
}

// Remove deletes the task at index. If it was the active task the
// active marker is cleared first.
func (m *Manager) Remove(index int) {
	if index < 0 || index >= len(m.tasks) {
		return
	}
	switch {
	case index == m.active:
		m.active = noActive
	case m.active > index:
		m.active--
	}
	m.tasks = append(m.tasks[:index], m.tasks[index+1:]...)
}

// Edit replaces the task at index. The active marker is compared by
// index, so editing the active task keeps it active as long as the
// replacement still carries an open interval.
func (m *Manager) Edit(index int, task models.Task) {
	if index < 0 || index >= len(m.tasks) {
		return
	}
	m.tasks[index] = task
	if index == m.active && !task.IsStarted() {
		m.active = noActive
	}
}

// Start opens a new interval on the task at index and marks it active,
// stopping whatever task was running first.
func (m *Manager) Start(index int) {
	if index < 0 || index >= len(m.tasks) {
		return
	}
	m.StopActive()

	m.tasks[index].Spans = append(m.tasks[index].Spans, models.TimeSpan{Start: m.now()})
	m.active = index
}

// Stop closes the trailing open interval of the task at index with the
// current time. Intervals shorter than the minimum are discarded
// entirely. The active marker is cleared either way.
func (m *Manager) Stop(index int) {
	if index < 0 || index >= len(m.tasks) {
		return
	}
	spans := m.tasks[index].Spans
	if len(spans) == 0 || spans[len(spans)-1].Closed() {
		return
	}

	stop := m.now()
	last := &spans[len(spans)-1]
	last.Stop = &stop

	if stop.Sub(last.Start) < constants.MinSpanSeconds*time.Second {
		m.tasks[index].Spans = spans[:len(spans)-1]
	}
	m.active = noActive
}

// StopActive stops the currently running task, if any, and reports
// whether one was running.
func (m *Manager) StopActive() bool {
	if m.active == noActive {
		return false
	}
	m.Stop(m.active)
	return true
}

// Active returns the running task, or ok=false when none is running.
func (m *Manager) Active() (models.Task, bool) {
	if m.active == noActive {
		return models.Task{}, false
	}
	return m.Get(m.active)
}

// ActiveIndex returns the index of the running task, or -1.
func (m *Manager) ActiveIndex() int {
	return m.active
}

// CumulativeSeconds returns the summed total of all tasks' accumulated
// time, used to compute remaining work time against the quota.
func (m *Manager) CumulativeSeconds() int {
	now := m.now()
	total := 0
	for _, t := range m.tasks {
		total += t.TotalSeconds(now)
	}
	return total
}

// Load replaces the manager's state with the given tasks, as when the
// selected day changes. Duplicate names in the input are rejected the
// same way Add rejects them.
func (m *Manager) Load(tasks []models.Task) error {
	m.Clear()
	for _, t := range tasks {
		if err := m.Add(t); err != nil {
			return err
		}
	}
	return nil
}
