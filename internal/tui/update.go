package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/blsam/trackie/internal/models"
	"github.com/blsam/trackie/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if tickMsg, ok := msg.(TickMsg); ok {
		m.now = time.Time(tickMsg)
		return m, tick()
	}

	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.height = sizeMsg.Height
		m.help.Width = sizeMsg.Width
		return m, nil
	}

	// Handle Editing State
	if m.state == StateEditing {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateList
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if m.editingIndex < 0 {
				if err := m.manager.Add(models.Task{Name: m.taskForm.Name, Comments: m.taskForm.Comments}); err != nil {
					m.formError = err.Error()
					m.state = StateList
					return m, tea.Batch(cmds...)
				}
			} else if task, ok := m.manager.Get(m.editingIndex); ok {
				task.Name = m.taskForm.Name
				task.Comments = m.taskForm.Comments
				m.manager.Edit(m.editingIndex, task)
			}
			m.persist()
			m.formError = ""
			m.state = StateList
		case huh.StateAborted:
			m.state = StateList
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Settings Form State
	if m.state == StateEditSettings {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateList
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			hours, err := strconv.Atoi(m.settingsForm.Hours)
			if err == nil {
				m.settings.WorkTimeHours = hours
			}
			minutes, err := strconv.Atoi(m.settingsForm.Minutes)
			if err == nil {
				m.settings.WorkTimeMinutes = minutes
			}
			if err := m.store.SaveSettings(m.settings); err != nil {
				m.formError = err.Error()
			} else {
				m.formError = ""
			}
			m.state = StateList
		case huh.StateAborted:
			m.state = StateList
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Templates State
	if m.state == StateTemplates {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateList
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			picked := make(map[string]bool, len(m.templatePicks))
			for _, name := range m.templatePicks {
				picked[name] = true
			}
			for name := range m.settings.Templates {
				m.settings.Templates[name] = picked[name]
			}
			if err := m.store.SaveSettings(m.settings); err != nil {
				m.formError = err.Error()
				m.state = StateList
				return m, tea.Batch(cmds...)
			}
			for _, name := range m.templatePicks {
				if m.manager.Has(name) {
					continue
				}
				if err := m.manager.Add(models.Task{Name: name}); err != nil {
					m.formError = err.Error()
					break
				}
			}
			m.persist()
			m.state = StateList
		case huh.StateAborted:
			m.state = StateList
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Delete State
	if m.state == StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				m.manager.Remove(m.deleteIndex)
				if m.cursor >= m.manager.Len() && m.cursor > 0 {
					m.cursor--
				}
				m.persist()
				m.state = StateList
			case "n", "N", "esc", "q":
				m.state = StateList
			}
		}
		return m, nil
	}

	// Handle Confirm Quit State
	if m.state == StateConfirmQuit {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				m.manager.StopActive()
				m.persist()
				m.quitting = true
				return m, tea.Quit
			case "n", "N", "esc":
				m.state = StateList
			}
		}
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.viewingToday() {
				if _, running := m.manager.Active(); running {
					m.state = StateConfirmQuit
					return m, nil
				}
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.manager.Len()-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.PrevDay):
			if err := m.loadDay(m.day.AddDate(0, 0, -1)); err != nil {
				m.formError = err.Error()
			}

		case key.Matches(msg, m.keys.NextDay):
			if err := m.loadDay(m.day.AddDate(0, 0, 1)); err != nil {
				m.formError = err.Error()
			}

		case key.Matches(msg, m.keys.Today):
			if err := m.loadDay(utils.Today()); err != nil {
				m.formError = err.Error()
			}

		case key.Matches(msg, m.keys.Toggle):
			if !m.viewingToday() {
				return m, nil
			}
			if task, ok := m.manager.Get(m.cursor); ok {
				if task.IsStarted() {
					m.manager.Stop(m.cursor)
				} else {
					m.manager.Start(m.cursor)
				}
				m.persist()
			}

		case key.Matches(msg, m.keys.Stop):
			if !m.viewingToday() {
				return m, nil
			}
			if m.manager.StopActive() {
				m.persist()
			}

		case key.Matches(msg, m.keys.Add):
			if !m.viewingToday() {
				return m, nil
			}
			m.taskForm = &TaskFormModel{}
			m.editingIndex = -1
			m.form = newTaskForm(m.taskForm, "", m.manager.Has)
			m.state = StateEditing
			return m, m.form.Init()

		case key.Matches(msg, m.keys.Edit):
			if !m.viewingToday() {
				return m, nil
			}
			if task, ok := m.manager.Get(m.cursor); ok {
				m.taskForm = &TaskFormModel{Name: task.Name, Comments: task.Comments}
				m.editingIndex = m.cursor
				m.form = newTaskForm(m.taskForm, task.Name, m.manager.Has)
				m.state = StateEditing
				return m, m.form.Init()
			}

		case key.Matches(msg, m.keys.Delete):
			if !m.viewingToday() {
				return m, nil
			}
			if _, ok := m.manager.Get(m.cursor); ok {
				m.deleteIndex = m.cursor
				m.state = StateConfirmDelete
			}

		case key.Matches(msg, m.keys.Templates):
			if !m.viewingToday() {
				return m, nil
			}
			if len(m.settings.Templates) == 0 {
				m.formError = "no templates configured"
				return m, nil
			}
			m.form = newTemplateForm(m.settings, &m.templatePicks)
			m.state = StateTemplates
			return m, m.form.Init()

		case key.Matches(msg, m.keys.Report):
			if _, running := m.manager.Active(); running {
				m.formError = "stop the running task before reporting"
				return m, nil
			}
			if m.manager.Len() == 0 {
				m.formError = "nothing to report"
				return m, nil
			}
			out := utils.FormatDay(m.day) + ".txt"
			if err := m.writeReport(out); err != nil {
				m.formError = err.Error()
			} else {
				m.formError = "wrote " + out
			}

		case key.Matches(msg, m.keys.Settings):
			m.settingsForm = &SettingsFormModel{
				Hours:   strconv.Itoa(m.settings.WorkTimeHours),
				Minutes: strconv.Itoa(m.settings.WorkTimeMinutes),
			}
			m.form = newSettingsForm(m.settingsForm)
			m.state = StateEditSettings
			return m, m.form.Init()
		}
	}

	return m, tea.Batch(cmds...)
}
