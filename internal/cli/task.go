package cli

import (
	"fmt"

	"github.com/blsam/trackie/internal/models"
	"github.com/blsam/trackie/internal/utils"
)

type TaskAddCmd struct {
	Name     string `arg:"" help:"Task name."`
	Comments string `short:"c" help:"Free-text comments."`
}

func (cmd *TaskAddCmd) Run(ctx *Context) error {
	day := utils.Today()
	manager, err := ctx.LoadDay(day)
	if err != nil {
		return err
	}

	if err := manager.Add(models.Task{Name: cmd.Name, Comments: cmd.Comments}); err != nil {
		return err
	}
	if err := ctx.SaveDay(day, manager); err != nil {
		return err
	}

	fmt.Printf("Added task: %s\n", cmd.Name)
	return nil
}

type TaskEditCmd struct {
	Name     string  `arg:"" help:"Current task name."`
	NewName  string  `help:"New task name."`
	Comments *string `short:"c" help:"Replacement comments."`
}

func (cmd *TaskEditCmd) Run(ctx *Context) error {
	day := utils.Today()
	manager, err := ctx.LoadDay(day)
	if err != nil {
		return err
	}

	index := FindTask(manager, cmd.Name)
	if index < 0 {
		return fmt.Errorf("no task named %q today", cmd.Name)
	}

	task, _ := manager.Get(index)
	if cmd.NewName != "" && cmd.NewName != task.Name {
		if manager.Has(cmd.NewName) {
			return fmt.Errorf("a task named %q already exists", cmd.NewName)
		}
		task.Name = cmd.NewName
	}
	if cmd.Comments != nil {
		task.Comments = *cmd.Comments
	}

	manager.Edit(index, task)
	if err := ctx.SaveDay(day, manager); err != nil {
		return err
	}

	fmt.Printf("Edited task: %s\n", task.Name)
	return nil
}

type TaskRemoveCmd struct {
	Name string `arg:"" help:"Task name."`
}

func (cmd *TaskRemoveCmd) Run(ctx *Context) error {
	day := utils.Today()
	manager, err := ctx.LoadDay(day)
	if err != nil {
		return err
	}

	index := FindTask(manager, cmd.Name)
	if index < 0 {
		return fmt.Errorf("no task named %q today", cmd.Name)
	}

	manager.Remove(index)
	if err := ctx.SaveDay(day, manager); err != nil {
		return err
	}

	fmt.Printf("Removed task: %s\n", cmd.Name)
	return nil
}

type TaskListCmd struct {
	Date string `short:"d" help:"Day to list (YYYY-MM-DD). Defaults to today."`
}

func (cmd *TaskListCmd) Run(ctx *Context) error {
	day := utils.Today()
	if cmd.Date != "" {
		var err error
		if day, err = utils.ParseDay(cmd.Date); err != nil {
			return err
		}
	}

	manager, err := ctx.LoadDay(day)
	if err != nil {
		return err
	}

	tasks := manager.Tasks()
	if len(tasks) == 0 {
		fmt.Printf("No tasks for %s.\n", utils.FormatDay(day))
		return nil
	}

	settings, err := ctx.Store.LoadSettings()
	if err != nil {
		return err
	}

	total := manager.CumulativeSeconds()
	for _, task := range tasks {
		duration := utils.FormatSeconds(task.TotalSeconds(nowUTC()))
		marker := " "
		if task.IsStarted() {
			marker = "▶"
			duration = "in progress"
		}
		fmt.Printf("%s %-30s %s\n", marker, task.Name, duration)
	}

	left := int(settings.WorkTime().Seconds()) - total
	fmt.Println()
	if left < 0 {
		fmt.Printf("Total %s, overtime %s\n", utils.FormatSeconds(total), utils.FormatSeconds(-left))
	} else {
		fmt.Printf("Total %s, %s of work time left\n", utils.FormatSeconds(total), utils.FormatSeconds(left))
	}
	return nil
}
