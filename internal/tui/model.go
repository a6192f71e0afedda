package tui

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/blsam/trackie/internal/models"
	"github.com/blsam/trackie/internal/report"
	"github.com/blsam/trackie/internal/storage"
	"github.com/blsam/trackie/internal/tracker"
	"github.com/blsam/trackie/internal/utils"
)

type SessionState int

const (
	StateList SessionState = iota
	StateEditing
	StateConfirmDelete
	StateTemplates
	StateEditSettings
	StateConfirmQuit
)

type TaskFormModel struct {
	Name     string
	Comments string
}

type SettingsFormModel struct {
	Hours   string
	Minutes string
}

type Model struct {
	store         storage.Provider
	manager       *tracker.Manager
	settings      models.Settings
	day           time.Time
	state         SessionState
	keys          KeyMap
	help          help.Model
	cursor        int
	form          *huh.Form
	taskForm      *TaskFormModel
	settingsForm  *SettingsFormModel
	templatePicks []string
	editingIndex  int // -1 when adding
	deleteIndex   int
	formError     string
	quitting      bool
	width         int
	height        int
	now           time.Time
}

func NewModel(store storage.Provider) (Model, error) {
	settings, err := store.LoadSettings()
	if err != nil {
		return Model{}, err
	}

	day := utils.Today()
	tasks, err := store.LoadDay(day)
	if err != nil {
		return Model{}, err
	}
	manager := tracker.New()
	if err := manager.Load(tasks); err != nil {
		return Model{}, err
	}

	return Model{
		store:        store,
		manager:      manager,
		settings:     settings,
		day:          day,
		state:        StateList,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		editingIndex: -1,
		now:          time.Now(),
	}, nil
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// viewingToday reports whether the visible day is the current one.
// Mutations are only allowed on today.
func (m Model) viewingToday() bool {
	return utils.SameDay(m.day, time.Now())
}

func (m *Model) loadDay(day time.Time) error {
	tasks, err := m.store.LoadDay(day)
	if err != nil {
		return err
	}
	manager := tracker.New()
	if err := manager.Load(tasks); err != nil {
		return err
	}
	m.manager = manager
	m.day = day
	if m.cursor >= manager.Len() {
		m.cursor = 0
	}
	return nil
}

func (m *Model) persist() {
	if err := m.store.SaveDay(m.day, m.manager.Tasks()); err != nil {
		m.formError = err.Error()
	}
}

func (m *Model) writeReport(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.Generate(report.DefaultName, f, m.day, m.manager.Tasks())
}
