package constants

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ClockFormat is the wall-clock format used for the projected end-of-work time (HH:MM:SS)
	ClockFormat = "15:04:05"
)
