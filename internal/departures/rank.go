package departures

import (
	"sort"

	"github.com/fetsare/manbacken-depart/internal/models"
)

// Rank orders departures for display. Buses are placed ahead of every other
// mode before a stable sort by minutes, so equal minutes keep buses first
// and otherwise keep arrival order.
func Rank(deps []models.Departure) []models.Departure {
	ranked := make([]models.Departure, 0, len(deps))
	var others []models.Departure
	for _, dep := range deps {
		if dep.TransportType == models.Bus {
			ranked = append(ranked, dep)
		} else {
			others = append(others, dep)
		}
	}
	ranked = append(ranked, others...)

	sort.SliceStable(ranked, func(i, j int) bool {
		return sortMinutes(ranked[i]) < sortMinutes(ranked[j])
	})
	return ranked
}

// Truncate keeps at most limit departures
func Truncate(deps []models.Departure, limit int) []models.Departure {
	if limit < 0 {
		limit = 0
	}
	if len(deps) <= limit {
		return deps
	}
	return deps[:limit]
}

func sortMinutes(dep models.Departure) int {
	if n, ok := dep.MinutesUntil.Minutes(); ok {
		return n
	}
	return int(^uint(0) >> 1)
}
