package departures

import (
	"github.com/fetsare/manbacken-depart/internal/models"
)

type groupKey struct {
	line      string
	direction string
}

// linkKey groups departures whose next departure is looked up. The station
// is deliberately not part of the key, so stations sharing a line and
// direction text link to each other.
func linkKey(dep models.Departure) groupKey {
	return groupKey{line: dep.Line, direction: dep.Direction}
}

// LinkNextDepartures sets NextDepartureMinutes on each departure to the
// minutes of the following departure in its group. deps must already be in
// display order; the returned slice is a copy.
func LinkNextDepartures(deps []models.Departure) []models.Departure {
	groups := make(map[groupKey][]models.Departure)
	for _, dep := range deps {
		key := linkKey(dep)
		groups[key] = append(groups[key], dep)
	}

	linked := make([]models.Departure, len(deps))
	for i, dep := range deps {
		dep.NextDepartureMinutes = nil
		group := groups[linkKey(dep)]
		if pos := indexInGroup(group, dep); pos >= 0 && pos+1 < len(group) {
			if next, ok := group[pos+1].MinutesUntil.Minutes(); ok {
				dep.NextDepartureMinutes = &next
			}
		}
		linked[i] = dep
	}
	return linked
}

// indexInGroup finds dep by display time and station, first match wins
func indexInGroup(group []models.Departure, dep models.Departure) int {
	for i, d := range group {
		if d.DisplayTime == dep.DisplayTime && d.Station == dep.Station {
			return i
		}
	}
	return -1
}
