package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/blsam/trackie/internal/constants"
	"github.com/blsam/trackie/internal/logger"
	"github.com/blsam/trackie/internal/models"
)

// DayStore keeps settings and task lists as JSON files under a store
// directory: settings.json at the top and one file per calendar day at
// tasks/<year>/<month>/<day>.json.
type DayStore struct {
	dir string
}

// NewDayStore returns a store rooted at dir. The directory is created
// on first write.
func NewDayStore(dir string) *DayStore {
	return &DayStore{dir: dir}
}

func (s *DayStore) StorePath() string {
	return s.dir
}

func (s *DayStore) Close() error {
	return nil
}

func (s *DayStore) settingsFile() string {
	return filepath.Join(s.dir, constants.SettingsFileName)
}

func (s *DayStore) dayFile(day time.Time) string {
	return filepath.Join(
		s.dir,
		constants.TasksDirName,
		strconv.Itoa(day.Year()),
		strconv.Itoa(int(day.Month())),
		strconv.Itoa(day.Day())+".json",
	)
}

// LoadSettings reads settings.json. A missing or unparseable file is
// not an error: defaults are written back and returned.
func (s *DayStore) LoadSettings() (models.Settings, error) {
	data, err := os.ReadFile(s.settingsFile())
	if err != nil {
		if !os.IsNotExist(err) {
			return models.Settings{}, fmt.Errorf("failed to read settings: %w", err)
		}
		return s.resetSettings()
	}

	var settings models.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		logger.Warn("Settings file is malformed, falling back to defaults", "error", err)
		return s.resetSettings()
	}
	if settings.Templates == nil {
		settings.Templates = make(map[string]bool)
	}
	return settings, nil
}

func (s *DayStore) resetSettings() (models.Settings, error) {
	settings := models.DefaultSettings()
	if err := s.SaveSettings(settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

func (s *DayStore) SaveSettings(settings models.Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	return writeFileAtomic(s.settingsFile(), data)
}

// LoadDay reads the task list for a calendar day. A missing file means
// no tasks were recorded yet and yields an empty list.
func (s *DayStore) LoadDay(day time.Time) ([]models.Task, error) {
	data, err := os.ReadFile(s.dayFile(day))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read day file: %w", err)
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse day file: %w", err)
	}
	return tasks, nil
}

func (s *DayStore) SaveDay(day time.Time, tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize tasks: %w", err)
	}
	return writeFileAtomic(s.dayFile(day), data)
}

// writeFileAtomic writes through a temp file and rename so a crash
// mid-write never leaves a truncated JSON file behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
