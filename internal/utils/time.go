package utils

import (
	"fmt"
	"time"

	"github.com/blsam/trackie/internal/constants"
)

// FormatSeconds renders a second count as H:MM:SS with unpadded hours,
// e.g. 900 -> "0:15:00".
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = -seconds
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// FormatHours renders a second count as fractional hours with two
// decimals, e.g. 5400 -> "1.50".
func FormatHours(seconds int) string {
	return fmt.Sprintf("%.2f", float64(seconds)/3600)
}

// Today returns the current calendar day at midnight local time.
func Today() time.Time {
	return Midnight(time.Now())
}

// Midnight truncates a time to its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ParseDay parses a YYYY-MM-DD date string.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// FormatDay renders a time as a YYYY-MM-DD date string.
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}
