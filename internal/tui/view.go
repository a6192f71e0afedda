package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/blsam/trackie/internal/constants"
	"github.com/blsam/trackie/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateEditing, StateTemplates, StateEditSettings:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	case StateConfirmQuit:
		content = m.viewConfirmQuit()
	default:
		content = m.viewList()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
		m.viewFooter(),
		m.help.View(m.keys),
	)
	return ui
}

func (m Model) viewHeader() string {
	day := utils.FormatDay(m.day)
	if m.viewingToday() {
		day += " (today)"
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleStyle.Render(constants.AppName),
		clockStyle.Render(day),
		clockStyle.Render(m.now.Format(constants.ClockFormat)),
	)
}

func (m Model) viewList() string {
	if m.manager.Len() == 0 {
		return docStyle.Render(dimStyle.Render("No tasks. Press 'a' to add one."))
	}

	now := m.now.UTC()
	var b strings.Builder
	for i := 0; i < m.manager.Len(); i++ {
		task, _ := m.manager.Get(i)

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		marker := "  "
		if task.IsStarted() {
			marker = "▶ "
		}

		line := fmt.Sprintf("%s%s%-30s %s", cursor, marker, task.Name, utils.FormatSeconds(task.TotalSeconds(now)))
		switch {
		case task.IsStarted():
			line = activeStyle.Render(line)
		case i == m.cursor:
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return docStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) viewFooter() string {
	total := m.manager.CumulativeSeconds()
	left := int(m.settings.WorkTime().Seconds()) - total

	var lines []string
	lines = append(lines, fmt.Sprintf("Total: %s", utils.FormatSeconds(total)))
	if left < 0 {
		lines = append(lines, overtimeStyle.Render(fmt.Sprintf("Overtime: %s", utils.FormatSeconds(-left))))
	} else {
		lines = append(lines, fmt.Sprintf("Work time left: %s", utils.FormatSeconds(left)))
	}

	_, running := m.manager.Active()
	if !running && m.viewingToday() && left > 0 {
		end := time.Now().Add(time.Duration(left) * time.Second)
		lines = append(lines, dimStyle.Render(fmt.Sprintf("End of work at %s", end.Format(constants.ClockFormat))))
	}

	if m.formError != "" {
		lines = append(lines, errStyle.Render(m.formError))
	}

	return clockStyle.Render(strings.Join(lines, "  "))
}

func (m Model) viewConfirmDelete() string {
	name := ""
	if task, ok := m.manager.Get(m.deleteIndex); ok {
		name = task.Name
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete task %q and its recorded time?", name)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewConfirmQuit() string {
	name := ""
	if task, ok := m.manager.Active(); ok {
		name = task.Name
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("%q is still running. Stop it and quit?", name)),
			"",
			"[y] Stop and quit",
			"[n] Keep working",
		),
	)
}
