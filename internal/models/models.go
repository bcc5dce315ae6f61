package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// LineConfig describes how one monitored line is shown on a board
type LineConfig struct {
	Line             string   `yaml:"line" json:"line" validate:"required"`
	Directions       []string `yaml:"directions,omitempty" json:"directions,omitempty" validate:"omitempty,dive,required"`
	MinTimeThreshold *int     `yaml:"minTimeThreshold,omitempty" json:"minTimeThreshold,omitempty" validate:"omitempty,gte=0"`
	MetroColor       string   `yaml:"metroColor,omitempty" json:"metroColor,omitempty" validate:"omitempty,oneof=green blue"`
}

// StationConfig is one physical stop monitored by a board
type StationConfig struct {
	Name  string       `yaml:"name" json:"name" validate:"required"`
	ID    string       `yaml:"id" json:"id" validate:"required"`
	Lines []LineConfig `yaml:"lines" json:"lines" validate:"dive"`
}

// BoardConfig is the full configuration of a single display board
type BoardConfig struct {
	Stations []StationConfig `yaml:"stations" json:"stations" validate:"required,min=1,dive"`
}

// RawStop is a downstream stop of a raw departure
type RawStop struct {
	Name        string `json:"name"`
	ArrivalTime string `json:"arrTime,omitempty"`
}

// RawDeparture is a departure as reported by the upstream provider
type RawDeparture struct {
	Line         string
	CategoryText string
	TimeOfDay    string
	Direction    string
	Stops        []RawStop
}

// TransportType is the canonical mode of a departure
type TransportType int

const (
	Unknown TransportType = iota
	Bus
	Metro
	Train
	Tram
)

var transportTypeNames = map[TransportType]string{
	Unknown: "Unknown",
	Bus:     "Bus",
	Metro:   "Metro",
	Train:   "Train",
	Tram:    "Tram",
}

func (t TransportType) String() string {
	if name, ok := transportTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

func (t TransportType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TransportType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for k, v := range transportTypeNames {
		if v == s {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown transport type %q", s)
}

// DepartedMarker is the JSON form of a departure that has already left
const DepartedMarker = "Departed"

// MinutesUntil is either a whole number of minutes from now or the
// departed marker
type MinutesUntil struct {
	minutes  int
	departed bool
}

// In returns a numeric offset of n minutes
func In(n int) MinutesUntil {
	return MinutesUntil{minutes: n}
}

// Departed returns the already-departed marker
func Departed() MinutesUntil {
	return MinutesUntil{departed: true}
}

// Minutes returns the numeric offset and whether one is present
func (m MinutesUntil) Minutes() (int, bool) {
	if m.departed {
		return 0, false
	}
	return m.minutes, true
}

func (m MinutesUntil) IsDeparted() bool {
	return m.departed
}

func (m MinutesUntil) String() string {
	if m.departed {
		return DepartedMarker
	}
	return strconv.Itoa(m.minutes)
}

func (m MinutesUntil) MarshalJSON() ([]byte, error) {
	if m.departed {
		return json.Marshal(DepartedMarker)
	}
	return json.Marshal(m.minutes)
}

func (m *MinutesUntil) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*m = In(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s != DepartedMarker {
		return fmt.Errorf("invalid minutes value %q", s)
	}
	*m = Departed()
	return nil
}

// Departure is a normalized departure ready for display
type Departure struct {
	Line                 string        `json:"line"`
	TransportType        TransportType `json:"transportType"`
	DisplayTime          string        `json:"time"`
	MinutesUntil         MinutesUntil  `json:"timeLeft"`
	Direction            string        `json:"direction"`
	Station              string        `json:"station"`
	MetroColor           string        `json:"metroColor,omitempty"`
	NextDepartureMinutes *int          `json:"nextDepartureTimeLeft,omitempty"`
	ArrivalAtLastStop    string        `json:"arrivalTime,omitempty"`
	JourneyMinutes       *int          `json:"journeyDuration,omitempty"`
}

