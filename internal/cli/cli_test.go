package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blsam/trackie/internal/storage"
	"github.com/blsam/trackie/internal/utils"
)

func setupTestStore(t *testing.T) (*Context, func()) {
	t.Helper()
	store := storage.New(t.TempDir())
	ctx := &Context{Store: store}
	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}
	return ctx, cleanup
}

func TestTaskAddCmd(t *testing.T) {
	ctx, cleanup := setupTestStore(t)
	defer cleanup()

	cmd := &TaskAddCmd{Name: "Email", Comments: "inbox"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("task add failed: %v", err)
	}

	manager, err := ctx.LoadDay(utils.Today())
	if err != nil {
		t.Fatalf("failed to load day: %v", err)
	}
	index := FindTask(manager, "Email")
	if index < 0 {
		t.Fatal("expected task to be persisted")
	}
	task, _ := manager.Get(index)
	if task.Comments != "inbox" {
		t.Errorf("expected comments %q, got %q", "inbox", task.Comments)
	}
}

func TestTaskAddCmd_Duplicate(t *testing.T) {
	ctx, cleanup := setupTestStore(t)
	defer cleanup()

	cmd := &TaskAddCmd{Name: "Email"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("task add failed: %v", err)
	}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected duplicate add to fail")
	}
}

func TestTaskEditCmd_RejectsTakenName(t *testing.T) {
	ctx, cleanup := setupTestStore(t)
	defer cleanup()

	for _, name := range []string{"Email", "Review"} {
		if err := (&TaskAddCmd{Name: name}).Run(ctx); err != nil {
			t.Fatalf("task add failed: %v", err)
		}
	}

	cmd := &TaskEditCmd{Name: "Review", NewName: "Email"}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected rename onto existing task to fail")
	}
}

func TestStartStopCmd(t *testing.T) {
	ctx, cleanup := setupTestStore(t)
	defer cleanup()

	if err := (&StartCmd{Name: "Email"}).Run(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	manager, err := ctx.LoadDay(utils.Today())
	if err != nil {
		t.Fatalf("failed to load day: %v", err)
	}
	if _, ok := manager.Active(); !ok {
		t.Fatal("expected a running task after start")
	}

	if err := (&StopCmd{}).Run(ctx); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	manager, err = ctx.LoadDay(utils.Today())
	if err != nil {
		t.Fatalf("failed to load day: %v", err)
	}
	if _, ok := manager.Active(); ok {
		t.Error("expected no running task after stop")
	}
}

func TestStartCmd_SwitchesActiveTask(t *testing.T) {
	ctx, cleanup := setupTestStore(t)
	defer cleanup()

	if err := (&StartCmd{Name: "Email"}).Run(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := (&StartCmd{Name: "Review"}).Run(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	manager, err := ctx.LoadDay(utils.Today())
	if err != nil {
		t.Fatalf("failed to load day: %v", err)
	}
	active, ok := manager.Active()
	if !ok {
		t.Fatal("expected a running task")
	}
	if active.Name != "Review" {
		t.Errorf("expected Review to be active, got %s", active.Name)
	}
}

func TestTemplateApplyCmd(t *testing.T) {
	ctx, cleanup := setupTestStore(t)
	defer cleanup()

	if err := (&TemplateAddCmd{Name: "Standup", Checked: true}).Run(ctx); err != nil {
		t.Fatalf("template add failed: %v", err)
	}
	if err := (&TemplateAddCmd{Name: "Email"}).Run(ctx); err != nil {
		t.Fatalf("template add failed: %v", err)
	}

	if err := (&TemplateApplyCmd{}).Run(ctx); err != nil {
		t.Fatalf("template apply failed: %v", err)
	}

	manager, err := ctx.LoadDay(utils.Today())
	if err != nil {
		t.Fatalf("failed to load day: %v", err)
	}
	if !manager.Has("Standup") {
		t.Error("expected checked template to be instantiated")
	}
	if manager.Has("Email") {
		t.Error("expected unchecked template to be skipped")
	}

	// Applying again must not duplicate or fail.
	if err := (&TemplateApplyCmd{All: true}).Run(ctx); err != nil {
		t.Fatalf("template apply failed: %v", err)
	}
	manager, _ = ctx.LoadDay(utils.Today())
	if manager.Len() != 2 {
		t.Errorf("expected 2 tasks, got %d", manager.Len())
	}
}

func TestTemplateAddCmd_Duplicate(t *testing.T) {
	ctx, cleanup := setupTestStore(t)
	defer cleanup()

	if err := (&TemplateAddCmd{Name: "Standup"}).Run(ctx); err != nil {
		t.Fatalf("template add failed: %v", err)
	}
	if err := (&TemplateAddCmd{Name: "Standup"}).Run(ctx); err == nil {
		t.Error("expected duplicate template add to fail")
	}
}

func TestSettingsSetCmd(t *testing.T) {
	ctx, cleanup := setupTestStore(t)
	defer cleanup()

	hours := 6
	minutes := 30
	cmd := &SettingsSetCmd{Hours: &hours, Minutes: &minutes}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings set failed: %v", err)
	}

	settings, err := ctx.Store.LoadSettings()
	if err != nil {
		t.Fatalf("failed to load settings: %v", err)
	}
	if settings.WorkTimeHours != 6 || settings.WorkTimeMinutes != 30 {
		t.Errorf("expected 6h30m, got %dh%dm", settings.WorkTimeHours, settings.WorkTimeMinutes)
	}
}

func TestSettingsSetCmd_Bounds(t *testing.T) {
	ctx, cleanup := setupTestStore(t)
	defer cleanup()

	tests := []struct {
		name    string
		hours   *int
		minutes *int
	}{
		{"hours too high", intPtr(13), nil},
		{"hours negative", intPtr(-1), nil},
		{"minutes too high", nil, intPtr(60)},
		{"minutes negative", nil, intPtr(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &SettingsSetCmd{Hours: tt.hours, Minutes: tt.minutes}
			if err := cmd.Run(ctx); err == nil {
				t.Error("expected out-of-range value to be rejected")
			}
		})
	}
}

func TestReportCmd(t *testing.T) {
	ctx, cleanup := setupTestStore(t)
	defer cleanup()

	if err := (&TaskAddCmd{Name: "Email", Comments: "inbox"}).Run(ctx); err != nil {
		t.Fatalf("task add failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "report.txt")
	cmd := &ReportCmd{Generator: "text", Output: out}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("report failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if !strings.HasPrefix(string(data), "1. Email") {
		t.Errorf("unexpected report content: %q", string(data))
	}
}

func TestReportCmd_RefusesWhileRunning(t *testing.T) {
	ctx, cleanup := setupTestStore(t)
	defer cleanup()

	if err := (&StartCmd{Name: "Email"}).Run(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	cmd := &ReportCmd{Generator: "text", Output: filepath.Join(t.TempDir(), "report.txt")}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected report to be refused while a task is running")
	}
}

func intPtr(i int) *int { return &i }
