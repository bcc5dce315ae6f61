package departures

import (
	"log/slog"
	"strings"

	"github.com/fetsare/manbacken-depart/internal/models"
)

// LineFilter decides which departures of one station may be displayed
type LineFilter struct {
	station          string
	lines            map[string]models.LineConfig
	defaultThreshold int
	logger           *slog.Logger
}

// NewLineFilter builds the line lookup for station once
func NewLineFilter(station models.StationConfig, defaultThreshold int, logger *slog.Logger) *LineFilter {
	if logger == nil {
		logger = slog.Default()
	}
	lines := make(map[string]models.LineConfig, len(station.Lines))
	for _, l := range station.Lines {
		lines[l.Line] = l
	}
	return &LineFilter{
		station:          station.Name,
		lines:            lines,
		defaultThreshold: defaultThreshold,
		logger:           logger,
	}
}

// Eligible reports whether dep may be shown and returns its line config
func (f *LineFilter) Eligible(dep models.Departure) (models.LineConfig, bool) {
	cfg, ok := f.lines[dep.Line]
	if !ok {
		f.logger.Debug("Skipping unconfigured line", "station", f.station, "line", dep.Line)
		return models.LineConfig{}, false
	}

	if dep.TransportType == models.Unknown {
		return cfg, false
	}
	minutes, ok := dep.MinutesUntil.Minutes()
	if !ok {
		return cfg, false
	}

	threshold := f.defaultThreshold
	if cfg.MinTimeThreshold != nil {
		threshold = *cfg.MinTimeThreshold
	}
	// Too close to catch.
	if minutes <= threshold {
		return cfg, false
	}

	if cfg.Directions != nil && !matchesDirection(dep.Direction, cfg.Directions) {
		return cfg, false
	}
	return cfg, true
}

// Apply returns the eligible departures in their original order
func (f *LineFilter) Apply(deps []models.Departure) []models.Departure {
	var out []models.Departure
	for _, dep := range deps {
		cfg, ok := f.Eligible(dep)
		if !ok {
			continue
		}
		if dep.TransportType == models.Metro {
			dep.MetroColor = cfg.MetroColor
		}
		out = append(out, dep)
	}
	return out
}

func matchesDirection(direction string, filters []string) bool {
	direction = strings.ToLower(direction)
	for _, f := range filters {
		if strings.Contains(direction, strings.ToLower(f)) {
			return true
		}
	}
	return false
}
