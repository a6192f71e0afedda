package main

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/blsam/trackie/internal/cli"
	"github.com/blsam/trackie/internal/constants"
	"github.com/blsam/trackie/internal/errors"
	"github.com/blsam/trackie/internal/logger"
	"github.com/blsam/trackie/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Store   string `help:"Store directory, or a .db file for SQLite storage." type:"path" default:"~/.trackie/storage"`
	Debug   bool   `help:"Enable debug logging."`

	Tui      cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Start    cli.StartCmd  `cmd:"" help:"Start tracking a task."`
	Stop     cli.StopCmd   `cmd:"" help:"Stop the running task."`
	Status   cli.StatusCmd `cmd:"" help:"Show the running task and remaining work time."`
	Report   cli.ReportCmd `cmd:"" help:"Write a report for a day."`
	Doctor   cli.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Task     struct {
		Add    cli.TaskAddCmd    `cmd:"" help:"Add a new task for today."`
		Edit   cli.TaskEditCmd   `cmd:"" help:"Edit a task's name or comments."`
		Remove cli.TaskRemoveCmd `cmd:"" help:"Remove a task and its recorded time."`
		List   cli.TaskListCmd   `cmd:"" help:"List tasks for a day." default:"1"`
	} `cmd:"" help:"Manage tasks."`
	Template struct {
		Add    cli.TemplateAddCmd    `cmd:"" help:"Add a template task."`
		Delete cli.TemplateDeleteCmd `cmd:"" help:"Delete a template task."`
		List   cli.TemplateListCmd   `cmd:"" help:"List template tasks." default:"1"`
		Apply  cli.TemplateApplyCmd  `cmd:"" help:"Instantiate templates as today's tasks."`
	} `cmd:"" help:"Manage template tasks."`
	Settings struct {
		Show cli.SettingsShowCmd `cmd:"" help:"Show settings." default:"1"`
		Set  cli.SettingsSetCmd  `cmd:"" help:"Set the daily work time."`
	} `cmd:"" help:"Manage settings."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a store backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("trackie"),
		kong.Description("Terminal time tracker for daily tasks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":    "v0.1.0",
			"generators": cli.GeneratorsHelp(),
			"max_hours":  strconv.Itoa(constants.MaxWorkTimeHours),
		},
	)

	// Logs live next to the database when SQLite storage is used.
	logDir := CLI.Store
	if strings.HasSuffix(logDir, ".db") {
		logDir = filepath.Dir(logDir)
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, StoreDir: logDir}); err != nil {
		errors.Fatal(err)
	}

	store := storage.New(CLI.Store)
	defer store.Close()

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
