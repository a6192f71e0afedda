package constants

const (
	// AppName is the canonical application name.
	AppName = "trackie"

	// DefaultWorkTimeHours and DefaultWorkTimeMinutes form the daily
	// work-time quota used when no settings file exists.
	DefaultWorkTimeHours   = 8
	DefaultWorkTimeMinutes = 0

	// MaxWorkTimeHours bounds the configurable daily quota.
	MaxWorkTimeHours = 12

	// MinSpanSeconds is the shortest interval worth recording. Stopping
	// a task earlier than this discards the interval as an accidental
	// click.
	MinSpanSeconds = 2

	// SettingsFileName is the name of the settings file inside the store
	// directory.
	SettingsFileName = "settings.json"

	// TasksDirName is the subdirectory of the store holding the per-day
	// task files.
	TasksDirName = "tasks"

	// LogsDirName is the subdirectory of the store holding log files.
	LogsDirName = "logs"
)
