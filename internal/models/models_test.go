package models

import (
	"encoding/json"
	"testing"
)

func TestMinutesUntilJSON(t *testing.T) {
	tests := []struct {
		name     string
		value    MinutesUntil
		expected string
	}{
		{"numeric", In(7), "7"},
		{"zero", In(0), "0"},
		{"departed", Departed(), `"Departed"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if string(data) != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, data)
			}

			var decoded MinutesUntil
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if decoded != tt.value {
				t.Errorf("Expected %v after decode, got %v", tt.value, decoded)
			}
		})
	}

	var m MinutesUntil
	if err := json.Unmarshal([]byte(`"soon"`), &m); err == nil {
		t.Error("Expected error for unknown marker")
	}
}

func TestMinutesUntilAccessors(t *testing.T) {
	n, ok := In(12).Minutes()
	if !ok || n != 12 {
		t.Errorf("Expected (12, true), got (%d, %v)", n, ok)
	}

	if _, ok := Departed().Minutes(); ok {
		t.Error("Departed marker should not be numeric")
	}
	if !Departed().IsDeparted() {
		t.Error("Expected IsDeparted to be true")
	}
}

func TestDepartureJSON(t *testing.T) {
	next := 12
	dep := Departure{
		Line:                 "17",
		TransportType:        Metro,
		DisplayTime:          "08:15",
		MinutesUntil:         In(5),
		Direction:            "Norr",
		Station:              "A",
		NextDepartureMinutes: &next,
	}

	data, err := json.Marshal(dep)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if fields["transportType"] != "Metro" {
		t.Errorf("Expected transportType Metro, got %v", fields["transportType"])
	}
	if fields["nextDepartureTimeLeft"] != float64(12) {
		t.Errorf("Expected nextDepartureTimeLeft 12, got %v", fields["nextDepartureTimeLeft"])
	}
	if _, ok := fields["journeyDuration"]; ok {
		t.Error("journeyDuration should be omitted when absent")
	}

	var decoded Departure
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if decoded.TransportType != Metro {
		t.Errorf("Expected Metro after decode, got %v", decoded.TransportType)
	}
}
