package cli

import (
	"fmt"
	"time"

	"github.com/blsam/trackie/internal/constants"
	"github.com/blsam/trackie/internal/logger"
	"github.com/blsam/trackie/internal/models"
	"github.com/blsam/trackie/internal/utils"
)

type StartCmd struct {
	Name string `arg:"" help:"Task to start. Created first if it does not exist."`
}

func (cmd *StartCmd) Run(ctx *Context) error {
	day := utils.Today()
	manager, err := ctx.LoadDay(day)
	if err != nil {
		return err
	}

	index := FindTask(manager, cmd.Name)
	if index < 0 {
		if err := manager.Add(models.Task{Name: cmd.Name}); err != nil {
			return err
		}
		index = manager.Len() - 1
	}

	if task, _ := manager.Get(index); task.IsStarted() {
		fmt.Printf("%s is already running\n", cmd.Name)
		return nil
	}

	if stopped, ok := manager.Active(); ok {
		fmt.Printf("Stopped %s\n", stopped.Name)
	}
	manager.Start(index)
	logger.Debug("Started task", "task", cmd.Name)

	if err := ctx.SaveDay(day, manager); err != nil {
		return err
	}

	fmt.Printf("Started %s\n", cmd.Name)
	return nil
}

type StopCmd struct{}

func (cmd *StopCmd) Run(ctx *Context) error {
	day := utils.Today()
	manager, err := ctx.LoadDay(day)
	if err != nil {
		return err
	}

	active, ok := manager.Active()
	if !ok {
		fmt.Println("No task is running.")
		return nil
	}

	manager.StopActive()
	if err := ctx.SaveDay(day, manager); err != nil {
		return err
	}

	index := FindTask(manager, active.Name)
	task, _ := manager.Get(index)
	fmt.Printf("Stopped %s at %s\n", active.Name, utils.FormatSeconds(task.TotalSeconds(nowUTC())))
	return nil
}

type StatusCmd struct{}

func (cmd *StatusCmd) Run(ctx *Context) error {
	day := utils.Today()
	manager, err := ctx.LoadDay(day)
	if err != nil {
		return err
	}
	settings, err := ctx.Store.LoadSettings()
	if err != nil {
		return err
	}

	left := int(settings.WorkTime().Seconds()) - manager.CumulativeSeconds()
	if left < 0 {
		fmt.Printf("Work time left: overtime %s\n", utils.FormatSeconds(-left))
	} else {
		fmt.Printf("Work time left: %s\n", utils.FormatSeconds(left))
	}

	if active, ok := manager.Active(); ok {
		fmt.Printf("Active task: %s (%s)\n", active.Name, utils.FormatSeconds(active.TotalSeconds(nowUTC())))
		return nil
	}

	if left > 0 {
		end := time.Now().Add(time.Duration(left) * time.Second)
		fmt.Printf("No task running. End of work at %s\n", end.Format(constants.ClockFormat))
	} else {
		fmt.Println("No task running.")
	}
	return nil
}
