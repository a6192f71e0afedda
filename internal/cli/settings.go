package cli

import (
	"fmt"

	"github.com/blsam/trackie/internal/constants"
)

type SettingsShowCmd struct{}

func (cmd *SettingsShowCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.LoadSettings()
	if err != nil {
		return err
	}
	fmt.Printf("Work time: %dh %02dm\n", settings.WorkTimeHours, settings.WorkTimeMinutes)
	fmt.Printf("Templates: %d\n", len(settings.Templates))
	return nil
}

type SettingsSetCmd struct {
	Hours   *int `help:"Daily work time hours (0-${max_hours})."`
	Minutes *int `help:"Daily work time minutes (0-59)."`
}

func (cmd *SettingsSetCmd) Run(ctx *Context) error {
	if cmd.Hours == nil && cmd.Minutes == nil {
		return fmt.Errorf("nothing to set, pass --hours and/or --minutes")
	}

	settings, err := ctx.Store.LoadSettings()
	if err != nil {
		return err
	}

	if cmd.Hours != nil {
		if *cmd.Hours < 0 || *cmd.Hours > constants.MaxWorkTimeHours {
			return fmt.Errorf("hours must be between 0 and %d", constants.MaxWorkTimeHours)
		}
		settings.WorkTimeHours = *cmd.Hours
	}
	if cmd.Minutes != nil {
		if *cmd.Minutes < 0 || *cmd.Minutes > 59 {
			return fmt.Errorf("minutes must be between 0 and 59")
		}
		settings.WorkTimeMinutes = *cmd.Minutes
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Printf("Work time set to %dh %02dm\n", settings.WorkTimeHours, settings.WorkTimeMinutes)
	return nil
}
