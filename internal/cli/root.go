package cli

import (
	"fmt"
	"time"

	"github.com/blsam/trackie/internal/logger"
	"github.com/blsam/trackie/internal/storage"
	"github.com/blsam/trackie/internal/tracker"
)

type Context struct {
	Store storage.Provider
	Debug bool
}

// LoadDay populates a fresh manager with the stored tasks for a day.
func (c *Context) LoadDay(day time.Time) (*tracker.Manager, error) {
	tasks, err := c.Store.LoadDay(day)
	if err != nil {
		return nil, err
	}
	manager := tracker.New()
	if err := manager.Load(tasks); err != nil {
		return nil, fmt.Errorf("day file for %s is inconsistent: %w", day.Format("2006-01-02"), err)
	}
	return manager, nil
}

// SaveDay persists the manager's snapshot for a day.
func (c *Context) SaveDay(day time.Time, manager *tracker.Manager) error {
	if err := c.Store.SaveDay(day, manager.Tasks()); err != nil {
		return err
	}
	logger.Debug("Saved day", "day", day.Format("2006-01-02"), "tasks", manager.Len())
	return nil
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

// FindTask returns the index of the named task, or -1.
func FindTask(manager *tracker.Manager, name string) int {
	for i := 0; i < manager.Len(); i++ {
		if task, ok := manager.Get(i); ok && task.Name == name {
			return i
		}
	}
	return -1
}
