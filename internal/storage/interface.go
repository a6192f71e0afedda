package storage

import (
	"time"

	"github.com/blsam/trackie/internal/models"
)

// Provider persists settings and per-day task lists.
//
// Concurrency note:
//   - Providers are not safe for concurrent use by multiple goroutines
//     without external synchronization.
//   - Running multiple trackie processes against the same store path at
//     the same time is not supported and may lead to data loss.
type Provider interface {
	// Settings
	LoadSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Day task lists
	LoadDay(day time.Time) ([]models.Task, error)
	SaveDay(day time.Time, tasks []models.Task) error

	// Utils
	StorePath() string
	Close() error
}
