package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/blsam/trackie/internal/constants"
	"github.com/blsam/trackie/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id       TEXT PRIMARY KEY,
	day      TEXT NOT NULL,
	position INTEGER NOT NULL,
	name     TEXT NOT NULL,
	comments TEXT NOT NULL,
	UNIQUE(day, name)
);

CREATE TABLE IF NOT EXISTS timespans (
	id       TEXT PRIMARY KEY,
	task_id  TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	start    TEXT NOT NULL,
	stop     TEXT
);

CREATE INDEX IF NOT EXISTS idx_tasks_day ON tasks(day);
CREATE INDEX IF NOT EXISTS idx_timespans_task ON timespans(task_id);
`

const (
	settingWorkTimeHours   = "workTimeHours"
	settingWorkTimeMinutes = "workTimeMinutes"
	settingTemplates       = "templatedTasks"
)

// SQLiteStore is the single-file alternative to the JSON day store,
// selected when the store path ends in .db.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) StorePath() string {
	return s.path
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// open lazily opens the database and ensures the schema exists.
func (s *SQLiteStore) open() (*sql.DB, error) {
	if s.db != nil {
		return s.db, nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	s.db = db
	return s.db, nil
}

func (s *SQLiteStore) LoadSettings() (models.Settings, error) {
	db, err := s.open()
	if err != nil {
		return models.Settings{}, err
	}

	rows, err := db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, fmt.Errorf("failed to scan setting: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	if len(values) == 0 {
		settings := models.DefaultSettings()
		if err := s.SaveSettings(settings); err != nil {
			return models.Settings{}, err
		}
		return settings, nil
	}

	settings := models.DefaultSettings()
	if v, ok := values[settingWorkTimeHours]; ok {
		fmt.Sscanf(v, "%d", &settings.WorkTimeHours)
	}
	if v, ok := values[settingWorkTimeMinutes]; ok {
		fmt.Sscanf(v, "%d", &settings.WorkTimeMinutes)
	}
	if v, ok := values[settingTemplates]; ok {
		var templates map[string]bool
		if err := json.Unmarshal([]byte(v), &templates); err == nil && templates != nil {
			settings.Templates = templates
		}
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	db, err := s.open()
	if err != nil {
		return err
	}

	templates, err := json.Marshal(settings.Templates)
	if err != nil {
		return fmt.Errorf("failed to serialize templates: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	upsert := "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value"
	for key, value := range map[string]string{
		settingWorkTimeHours:   fmt.Sprintf("%d", settings.WorkTimeHours),
		settingWorkTimeMinutes: fmt.Sprintf("%d", settings.WorkTimeMinutes),
		settingTemplates:       string(templates),
	} {
		if _, err := tx.Exec(upsert, key, value); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) LoadDay(day time.Time) ([]models.Task, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}

	dayKey := day.Format(constants.DateFormat)
	rows, err := db.Query(
		"SELECT id, name, comments FROM tasks WHERE day = ? ORDER BY position",
		dayKey,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	var ids []string
	for rows.Next() {
		var id string
		var task models.Task
		if err := rows.Scan(&id, &task.Name, &task.Comments); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	for i, id := range ids {
		spans, err := s.loadSpans(db, id)
		if err != nil {
			return nil, err
		}
		tasks[i].Spans = spans
	}
	return tasks, nil
}

func (s *SQLiteStore) loadSpans(db *sql.DB, taskID string) ([]models.TimeSpan, error) {
	rows, err := db.Query(
		"SELECT start, stop FROM timespans WHERE task_id = ? ORDER BY position",
		taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read timespans: %w", err)
	}
	defer rows.Close()

	var spans []models.TimeSpan
	for rows.Next() {
		var start string
		var stop sql.NullString
		if err := rows.Scan(&start, &stop); err != nil {
			return nil, fmt.Errorf("failed to scan timespan: %w", err)
		}

		span := models.TimeSpan{}
		span.Start, err = time.Parse(time.RFC3339Nano, start)
		if err != nil {
			return nil, fmt.Errorf("invalid timespan start %q: %w", start, err)
		}
		if stop.Valid {
			t, err := time.Parse(time.RFC3339Nano, stop.String)
			if err != nil {
				return nil, fmt.Errorf("invalid timespan stop %q: %w", stop.String, err)
			}
			span.Stop = &t
		}
		spans = append(spans, span)
	}
	return spans, rows.Err()
}

func (s *SQLiteStore) SaveDay(day time.Time, tasks []models.Task) error {
	db, err := s.open()
	if err != nil {
		return err
	}

	dayKey := day.Format(constants.DateFormat)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Replace the day wholesale; cascade removes the old timespans.
	if _, err := tx.Exec("DELETE FROM tasks WHERE day = ?", dayKey); err != nil {
		return fmt.Errorf("failed to clear day: %w", err)
	}

	for position, task := range tasks {
		taskID := uuid.New().String()
		if _, err := tx.Exec(
			"INSERT INTO tasks (id, day, position, name, comments) VALUES (?, ?, ?, ?, ?)",
			taskID, dayKey, position, task.Name, task.Comments,
		); err != nil {
			return fmt.Errorf("failed to save task %s: %w", task.Name, err)
		}

		for spanPos, span := range task.Spans {
			var stop any
			if span.Stop != nil {
				stop = span.Stop.Format(time.RFC3339Nano)
			}
			if _, err := tx.Exec(
				"INSERT INTO timespans (id, task_id, position, start, stop) VALUES (?, ?, ?, ?, ?)",
				uuid.New().String(), taskID, spanPos, span.Start.Format(time.RFC3339Nano), stop,
			); err != nil {
				return fmt.Errorf("failed to save timespan for %s: %w", task.Name, err)
			}
		}
	}

	return tx.Commit()
}
