package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/blsam/trackie/internal/report"
	"github.com/blsam/trackie/internal/utils"
)

type ReportCmd struct {
	Date      string `short:"d" help:"Day to report (YYYY-MM-DD). Defaults to today."`
	Generator string `short:"g" default:"text" help:"Report format (${generators})."`
	Output    string `short:"o" type:"path" help:"Output file. Defaults to <day>.txt in the working directory."`
}

func (cmd *ReportCmd) Run(ctx *Context) error {
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
	if _, ok := manager.Active(); ok {
		return fmt.Errorf("a task is still running, stop it before reporting")
	}
	if manager.Len() == 0 {
		fmt.Printf("No tasks for %s, nothing to report.\n", utils.FormatDay(day))
		return nil
	}

	out := cmd.Output
	if out == "" {
		out = utils.FormatDay(day) + ".txt"
		if cmd.Generator == "csv" {
			out = utils.FormatDay(day) + ".csv"
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := report.Generate(cmd.Generator, f, day, manager.Tasks()); err != nil {
		return err
	}

	fmt.Printf("Wrote %s report to %s\n", cmd.Generator, out)
	return nil
}

// GeneratorsHelp expands the ${generators} placeholder in the report flag help.
func GeneratorsHelp() string {
	return strings.Join(report.Names(), ", ")
}
