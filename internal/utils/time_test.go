package utils

import (
	"testing"
	"time"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{name: "zero", seconds: 0, want: "0:00:00"},
		{name: "quarter hour", seconds: 900, want: "0:15:00"},
		{name: "mixed", seconds: 3723, want: "1:02:03"},
		{name: "over a day", seconds: 90000, want: "25:00:00"},
		{name: "negative uses magnitude", seconds: -900, want: "0:15:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSeconds(tt.seconds); got != tt.want {
				t.Errorf("FormatSeconds(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormatHours(t *testing.T) {
	if got := FormatHours(5400); got != "1.50" {
		t.Errorf("FormatHours(5400) = %q, want 1.50", got)
	}
}

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2024-01-15")
	if err != nil {
		t.Fatalf("ParseDay failed: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.January || got.Day() != 15 {
		t.Errorf("ParseDay = %v", got)
	}

	if _, err := ParseDay("15.01.2024"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 1, 15, 0, 1, 0, 0, time.UTC)
	b := time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC)
	c := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Error("SameDay(a, b) = false")
	}
	if SameDay(a, c) {
		t.Error("SameDay(a, c) = true")
	}
}
