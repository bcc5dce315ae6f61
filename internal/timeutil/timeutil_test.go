package timeutil

import (
	"testing"
	"time"

	"github.com/fetsare/manbacken-depart/internal/models"
)

func TestMinutesUntil(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 2, 8, 10, 30, 0, loc)

	tests := []struct {
		name      string
		timeOfDay string
		expected  models.MinutesUntil
	}{
		{"later today", "08:25:00", models.In(14)},
		{"same minute", "08:11:00", models.In(0)},
		{"without seconds", "09:10", models.In(59)},
		{"already left", "08:05:00", models.Departed()},
		{"garbage", "soon", models.Departed()},
		{"out of range", "25:00:00", models.Departed()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MinutesUntil(tt.timeOfDay, now)
			if result != tt.expected {
				t.Errorf("MinutesUntil(%q) = %v, want %v", tt.timeOfDay, result, tt.expected)
			}
		})
	}
}

func TestMinutesUntilRollover(t *testing.T) {
	lateEvening := time.Date(2026, 3, 2, 23, 55, 0, 0, time.UTC)
	if got := MinutesUntil("00:05:00", lateEvening); got != models.In(10) {
		t.Errorf("Expected departure after midnight to be 10 minutes away, got %v", got)
	}

	justAfterMidnight := time.Date(2026, 3, 3, 0, 2, 0, 0, time.UTC)
	if got := MinutesUntil("23:58:00", justAfterMidnight); !got.IsDeparted() {
		t.Errorf("Expected yesterday's departure to be departed, got %v", got)
	}
}

func TestStripParenthetical(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Slussen (via Danvikstull)", "Slussen"},
		{"Gullmarsplan", "Gullmarsplan"},
		{"Ropsten (T) (Lidingö)", "Ropsten"},
		{"Hjulsta (T-bana) Centrum", "Hjulsta (T-bana) Centrum"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := StripParenthetical(tt.input); got != tt.expected {
				t.Errorf("StripParenthetical(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTruncateToMinute(t *testing.T) {
	if got := TruncateToMinute("08:15:30"); got != "08:15" {
		t.Errorf("Expected 08:15, got %s", got)
	}
	if got := TruncateToMinute("0815"); got != "0815" {
		t.Errorf("Expected input unchanged, got %s", got)
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := map[int]string{
		0:   "0 min",
		45:  "45 min",
		60:  "1 h",
		125: "2 h 5 min",
	}
	for in, expected := range tests {
		if got := FormatMinutes(in); got != expected {
			t.Errorf("FormatMinutes(%d) = %q, want %q", in, got, expected)
		}
	}
}
