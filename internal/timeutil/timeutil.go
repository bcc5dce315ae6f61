package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fetsare/manbacken-depart/internal/models"
)

// rolloverWindow decides whether a time of day belongs to the previous or
// next calendar day relative to now.
const rolloverWindow = 12 * time.Hour

var trailingParenthetical = regexp.MustCompile(`\s*\([^()]*\)\s*$`)

// MinutesUntil converts an "HH:MM[:SS]" wall-clock time in now's location
// into whole minutes from now. Times in the past, or that cannot be parsed,
// yield the departed marker.
func MinutesUntil(timeOfDay string, now time.Time) models.MinutesUntil {
	h, m, s, err := parseTimeOfDay(timeOfDay)
	if err != nil {
		return models.Departed()
	}

	at := time.Date(now.Year(), now.Month(), now.Day(), h, m, s, 0, now.Location())
	diff := at.Sub(now)
	switch {
	case diff < -rolloverWindow:
		at = at.AddDate(0, 0, 1)
	case diff > rolloverWindow:
		at = at.AddDate(0, 0, -1)
	}

	diff = at.Sub(now)
	if diff < 0 {
		return models.Departed()
	}
	return models.In(int(diff / time.Minute))
}

// StripParenthetical removes trailing parenthetical annotations such as
// "Slussen (via Danvikstull)" -> "Slussen".
func StripParenthetical(text string) string {
	for {
		stripped := trailingParenthetical.ReplaceAllString(text, "")
		if stripped == text {
			return strings.TrimSpace(text)
		}
		text = stripped
	}
}

// TruncateToMinute drops the seconds of an "HH:MM:SS" string
func TruncateToMinute(timeOfDay string) string {
	parts := strings.Split(timeOfDay, ":")
	if len(parts) < 2 {
		return timeOfDay
	}
	return parts[0] + ":" + parts[1]
}

// FormatMinutes renders a duration in minutes for people, e.g. "1 h 5 min"
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%d h", h)
	}
	return fmt.Sprintf("%d h %d min", h, m)
}

func parseTimeOfDay(timeOfDay string) (int, int, int, error) {
	parts := strings.Split(strings.TrimSpace(timeOfDay), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid time of day %q", timeOfDay)
	}

	limits := []int{23, 59, 59}
	values := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || v > limits[i] {
			return 0, 0, 0, fmt.Errorf("invalid time of day %q", timeOfDay)
		}
		values[i] = v
	}
	return values[0], values[1], values[2], nil
}
