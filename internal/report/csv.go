package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/blsam/trackie/internal/models"
	"github.com/blsam/trackie/internal/utils"
)

// CSV writes one record per task: day, name, seconds, hours, comments.
func CSV(w io.Writer, day time.Time, tasks []models.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"day", "task", "seconds", "hours", "comments"}); err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, task := range tasks {
		seconds := task.TotalSeconds(now)
		record := []string{
			utils.FormatDay(day),
			task.Name,
			strconv.Itoa(seconds),
			utils.FormatHours(seconds),
			task.Comments,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
