package storage

import (
	"path/filepath"
	"testing"

	"github.com/blsam/trackie/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "trackie.db"))
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return store
}

func TestSQLiteDayRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)
	want := sampleTasks()

	if err := store.SaveDay(testDay(), want); err != nil {
		t.Fatalf("SaveDay failed: %v", err)
	}

	got, err := store.LoadDay(testDay())
	if err != nil {
		t.Fatalf("LoadDay failed: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("loaded %d tasks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i].Name {
			t.Errorf("task %d name = %q, want %q", i, got[i].Name, want[i].Name)
		}
		if got[i].Comments != want[i].Comments {
			t.Errorf("task %d comments = %q, want %q", i, got[i].Comments, want[i].Comments)
		}
		if len(got[i].Spans) != len(want[i].Spans) {
			t.Fatalf("task %d has %d spans, want %d", i, len(got[i].Spans), len(want[i].Spans))
		}
	}
	if !got[1].IsStarted() {
		t.Error("open interval lost in round trip")
	}
}

func TestSQLiteSaveDayReplacesPriorState(t *testing.T) {
	store := newTestSQLiteStore(t)

	if err := store.SaveDay(testDay(), sampleTasks()); err != nil {
		t.Fatalf("first SaveDay failed: %v", err)
	}
	if err := store.SaveDay(testDay(), []models.Task{{Name: "Only"}}); err != nil {
		t.Fatalf("second SaveDay failed: %v", err)
	}

	got, err := store.LoadDay(testDay())
	if err != nil {
		t.Fatalf("LoadDay failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Only" {
		t.Errorf("day not replaced: %v", got)
	}
}

func TestSQLiteDaysAreIndependent(t *testing.T) {
	store := newTestSQLiteStore(t)

	if err := store.SaveDay(testDay(), sampleTasks()); err != nil {
		t.Fatalf("SaveDay failed: %v", err)
	}

	other, err := store.LoadDay(testDay().AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("LoadDay failed: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("next day has %d tasks, want 0", len(other))
	}
}

func TestSQLiteSettingsDefaults(t *testing.T) {
	store := newTestSQLiteStore(t)

	settings, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if settings.WorkTimeHours != 8 || settings.WorkTimeMinutes != 0 {
		t.Errorf("default quota = %dh%dm, want 8h0m", settings.WorkTimeHours, settings.WorkTimeMinutes)
	}

	settings.WorkTimeHours = 6
	settings.Templates["Daily"] = true
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	got, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if got.WorkTimeHours != 6 {
		t.Errorf("quota hours = %d, want 6", got.WorkTimeHours)
	}
	if !got.Templates["Daily"] {
		t.Errorf("Templates = %v, want Daily checked", got.Templates)
	}
}
