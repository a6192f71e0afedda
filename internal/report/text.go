package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/blsam/trackie/internal/models"
	"github.com/blsam/trackie/internal/utils"
)

// Text writes the plain-text summary: one numbered line per task with
// its accumulated hours, comment lines joined onto the entry with
// tab-indented continuations.
func Text(w io.Writer, day time.Time, tasks []models.Task) error {
	now := time.Now().UTC()
	for index, task := range tasks {
		line := fmt.Sprintf("%d. %s - %sh", index+1, task.Name, utils.FormatHours(task.TotalSeconds(now)))

		if task.Comments != "" {
			comments := strings.Join(strings.Split(task.Comments, "\n"), "\n\t")
			line = fmt.Sprintf("%s - %s", line, comments)
		}

		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}
