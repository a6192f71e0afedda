package report

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/blsam/trackie/internal/models"
)

func reportTasks() []models.Task {
	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	stop := start.Add(90 * time.Minute)
	short := start.Add(30 * time.Minute)
	return []models.Task{
		{
			Name:     "Email",
			Comments: "inbox\nreplies",
			Spans:    []models.TimeSpan{{Start: start, Stop: &stop}},
		},
		{
			Name:  "Standup",
			Spans: []models.TimeSpan{{Start: start, Stop: &short}},
		},
	}
}

func reportDay() time.Time {
	return time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
}

func TestTextGenerator(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, reportDay(), reportTasks()); err != nil {
		t.Fatalf("Text failed: %v", err)
	}

	got := buf.String()
	wantLines := []string{
		"1. Email - 1.50h - inbox\n\treplies",
		"2. Standup - 0.50h",
	}
	for _, want := range wantLines {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestCSVGenerator(t *testing.T) {
	var buf bytes.Buffer
	if err := CSV(&buf, reportDay(), reportTasks()); err != nil {
		t.Fatalf("CSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2", len(records))
	}
	if records[1][1] != "Email" || records[1][2] != "5400" {
		t.Errorf("unexpected first record: %v", records[1])
	}
	if records[2][3] != "0.50" {
		t.Errorf("unexpected hours in second record: %v", records[2])
	}
}

func TestRegistry(t *testing.T) {
	names := Names()
	for _, want := range []string{"csv", "text"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
			}
		}
		if !found {
			t.Errorf("built-in generator %q not registered (have %v)", want, names)
		}
	}

	if _, ok := Get("nope"); ok {
		t.Error("Get returned a generator for an unknown name")
	}

	var buf bytes.Buffer
	if err := Generate("nope", &buf, reportDay(), nil); err == nil {
		t.Error("Generate accepted an unknown generator name")
	}

	called := false
	Register("custom", func(w io.Writer, day time.Time, tasks []models.Task) error {
		called = true
		return nil
	})
	if err := Generate("custom", &buf, reportDay(), nil); err != nil {
		t.Fatalf("Generate failed for registered generator: %v", err)
	}
	if !called {
		t.Error("registered generator was not invoked")
	}
}
