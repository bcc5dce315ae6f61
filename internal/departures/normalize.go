package departures

import (
	"strings"
	"time"

	"github.com/fetsare/manbacken-depart/internal/models"
	"github.com/fetsare/manbacken-depart/internal/timeutil"
)

// MinutesFunc converts a time of day into minutes from now
type MinutesFunc func(timeOfDay string, now time.Time) models.MinutesUntil

// CleanFunc strips annotations from a free-text direction
type CleanFunc func(text string) string

// transportTokens are matched case-insensitively against the category
// text, first match wins. Swedish names are what ResRobot reports.
var transportTokens = []struct {
	token string
	kind  models.TransportType
}{
	{"bus", models.Bus},
	{"metro", models.Metro},
	{"tunnelbana", models.Metro},
	{"tram", models.Tram},
	{"spårväg", models.Tram},
	{"train", models.Train},
	{"tåg", models.Train},
}

// ParseTransportType extracts the transport mode from category text
func ParseTransportType(category string) models.TransportType {
	lower := strings.ToLower(category)
	for _, t := range transportTokens {
		if strings.Contains(lower, t.token) {
			return t.kind
		}
	}
	return models.Unknown
}

// Normalizer maps raw upstream records onto canonical departures, all
// relative to the same instant Now.
type Normalizer struct {
	Now          time.Time
	MinutesUntil MinutesFunc
	Clean        CleanFunc
}

// NewNormalizer returns a Normalizer using the default time and
// direction utilities
func NewNormalizer(now time.Time) Normalizer {
	return Normalizer{
		Now:          now,
		MinutesUntil: timeutil.MinutesUntil,
		Clean:        timeutil.StripParenthetical,
	}
}

// Normalize converts one raw departure of the named station. It never
// drops or rejects a record.
func (n Normalizer) Normalize(raw models.RawDeparture, station string) models.Departure {
	dep := models.Departure{
		Line:          raw.Line,
		TransportType: ParseTransportType(raw.CategoryText),
		DisplayTime:   timeutil.TruncateToMinute(raw.TimeOfDay),
		MinutesUntil:  n.MinutesUntil(raw.TimeOfDay, n.Now),
		Direction:     n.Clean(raw.Direction),
		Station:       station,
	}

	if len(raw.Stops) == 0 {
		return dep
	}
	last := raw.Stops[len(raw.Stops)-1]
	if last.ArrivalTime == "" {
		return dep
	}

	dep.ArrivalAtLastStop = timeutil.TruncateToMinute(last.ArrivalTime)
	arrival, arrOK := n.MinutesUntil(last.ArrivalTime, n.Now).Minutes()
	departure, depOK := dep.MinutesUntil.Minutes()
	if arrOK && depOK {
		duration := arrival - departure
		dep.JourneyMinutes = &duration
	}
	return dep
}

// NormalizeAll converts every raw departure of a station
func (n Normalizer) NormalizeAll(raw []models.RawDeparture, station string) []models.Departure {
	out := make([]models.Departure, 0, len(raw))
	for _, r := range raw {
		out = append(out, n.Normalize(r, station))
	}
	return out
}
