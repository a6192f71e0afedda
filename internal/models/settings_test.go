package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSettingsWorkTime(t *testing.T) {
	s := Settings{WorkTimeHours: 7, WorkTimeMinutes: 30}
	if got := s.WorkTime(); got != 7*time.Hour+30*time.Minute {
		t.Errorf("WorkTime = %v, want 7h30m", got)
	}
}

func TestSettingsUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		data string
		want map[string]bool
	}{
		{
			name: "legacy list migrates to unchecked mapping",
			data: `{"workTimeHours": 8, "workTimeMinutes": 0, "templatedTasks": ["A", "B"]}`,
			want: map[string]bool{"A": false, "B": false},
		},
		{
			name: "mapping form read directly",
			data: `{"workTimeHours": 8, "workTimeMinutes": 0, "templatedTasks": {"A": true, "B": false}}`,
			want: map[string]bool{"A": true, "B": false},
		},
		{
			name: "absent templates",
			data: `{"workTimeHours": 8, "workTimeMinutes": 15}`,
			want: map[string]bool{},
		},
		{
			name: "null templates",
			data: `{"workTimeHours": 8, "workTimeMinutes": 0, "templatedTasks": null}`,
			want: map[string]bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Settings
			if err := json.Unmarshal([]byte(tt.data), &s); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if s.Templates == nil {
				t.Fatal("Templates is nil")
			}
			if len(s.Templates) != len(tt.want) {
				t.Fatalf("Templates = %v, want %v", s.Templates, tt.want)
			}
			for name, checked := range tt.want {
				if s.Templates[name] != checked {
					t.Errorf("Templates[%q] = %v, want %v", name, s.Templates[name], checked)
				}
			}
		})
	}
}

func TestSettingsMarshalWritesMappingForm(t *testing.T) {
	s := Settings{WorkTimeHours: 8, Templates: map[string]bool{"A": true}}
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	var templates map[string]bool
	if err := json.Unmarshal(raw["templatedTasks"], &templates); err != nil {
		t.Fatalf("templatedTasks is not a mapping: %s", raw["templatedTasks"])
	}
	if !templates["A"] {
		t.Errorf("templatedTasks = %v, want A checked", templates)
	}
}
