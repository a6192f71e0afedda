package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/blsam/trackie/internal/constants"
	"github.com/blsam/trackie/internal/models"
)

// newTaskForm builds the add/edit form. currentName is the name of the
// task being edited, empty when adding.
func newTaskForm(fm *TaskFormModel, currentName string, taken func(string) bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					name := strings.TrimSpace(s)
					if name == "" {
						return fmt.Errorf("task name cannot be empty")
					}
					if name != currentName && taken(name) {
						return fmt.Errorf("a task named %q already exists", name)
					}
					return nil
				}),
			huh.NewText().
				Title("Comments").
				Value(&fm.Comments),
		),
	).WithTheme(huh.ThemeDracula())
}

func newSettingsForm(fm *SettingsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Work time hours").
				Value(&fm.Hours).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i < 0 || i > constants.MaxWorkTimeHours {
						return fmt.Errorf("hours must be 0-%d", constants.MaxWorkTimeHours)
					}
					return nil
				}),
			huh.NewInput().
				Title("Work time minutes").
				Value(&fm.Minutes).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i < 0 || i > 59 {
						return fmt.Errorf("minutes must be 0-59")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// newTemplateForm offers every template with the stored check states
// preselected. The selection becomes the new check states on submit.
func newTemplateForm(settings models.Settings, picks *[]string) *huh.Form {
	names := make([]string, 0, len(settings.Templates))
	for name := range settings.Templates {
		names = append(names, name)
	}
	sort.Strings(names)

	options := make([]huh.Option[string], 0, len(names))
	*picks = (*picks)[:0]
	for _, name := range names {
		options = append(options, huh.NewOption(name, name).Selected(settings.Templates[name]))
		if settings.Templates[name] {
			*picks = append(*picks, name)
		}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Apply templates").
				Options(options...).
				Value(picks),
		),
	).WithTheme(huh.ThemeDracula())
}
