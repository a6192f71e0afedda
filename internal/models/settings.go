package models

import (
	"encoding/json"
	"time"

	"github.com/blsam/trackie/internal/constants"
)

// Settings holds the daily work-time quota and the saved task
// templates. Templates map a task name to whether it is checked for
// insertion by default.
type Settings struct {
	WorkTimeHours   int             `json:"workTimeHours"`
	WorkTimeMinutes int             `json:"workTimeMinutes"`
	Templates       map[string]bool `json:"templatedTasks"`
}

// DefaultSettings returns the settings used when no settings file
// exists or it cannot be parsed.
func DefaultSettings() Settings {
	return Settings{
		WorkTimeHours:   constants.DefaultWorkTimeHours,
		WorkTimeMinutes: constants.DefaultWorkTimeMinutes,
		Templates:       make(map[string]bool),
	}
}

// WorkTime returns the configured daily quota as a duration.
func (s Settings) WorkTime() time.Duration {
	return time.Duration(s.WorkTimeHours)*time.Hour + time.Duration(s.WorkTimeMinutes)*time.Minute
}

// settingsJSON mirrors Settings with the template field kept raw so the
// legacy list form can be detected.
type settingsJSON struct {
	WorkTimeHours   int             `json:"workTimeHours"`
	WorkTimeMinutes int             `json:"workTimeMinutes"`
	Templates       json.RawMessage `json:"templatedTasks"`
}

// UnmarshalJSON reads both template formats: the current name→checked
// mapping and the legacy plain list of names, which is migrated to an
// all-unchecked mapping. Writes always use the mapping form.
func (s *Settings) UnmarshalJSON(data []byte) error {
	var raw settingsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.WorkTimeHours = raw.WorkTimeHours
	s.WorkTimeMinutes = raw.WorkTimeMinutes
	s.Templates = make(map[string]bool)

	if len(raw.Templates) == 0 {
		return nil
	}

	var asMap map[string]bool
	if err := json.Unmarshal(raw.Templates, &asMap); err == nil {
		if asMap != nil {
			s.Templates = asMap
		}
		return nil
	}

	var asList []string
	if err := json.Unmarshal(raw.Templates, &asList); err == nil {
		for _, name := range asList {
			s.Templates[name] = false
		}
		return nil
	}

	// Unknown shape: keep the quota fields, drop the templates.
	return nil
}
