package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fetsare/manbacken-depart/internal/models"
	"github.com/fetsare/manbacken-depart/internal/timeutil"
)

const minRows = 5

// lineColors is keyed by transport type; Unknown never passes the line filter
var lineColors = map[models.TransportType]lipgloss.Color{
	models.Train: lipgloss.Color("#ec619f"),
	models.Metro: lipgloss.Color("#007db8"),
	models.Bus:   lipgloss.Color("#000000"),
	models.Tram:  lipgloss.Color("#b65f1f"),
}

var metroColors = map[string]lipgloss.Color{
	"green": lipgloss.Color("#4ba946"),
	"blue":  lipgloss.Color("#007db8"),
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	lineCol      = lipgloss.NewStyle().Width(6)
	directionCol = lipgloss.NewStyle().Width(24)
	stationCol   = lipgloss.NewStyle().Width(18)
	timeCol      = lipgloss.NewStyle().Width(8)
	leftCol      = lipgloss.NewStyle().Width(12)
	nextCol      = lipgloss.NewStyle().Width(10)
)

func badge(dep models.Departure) string {
	color, ok := lineColors[dep.TransportType]
	if !ok {
		color = lipgloss.Color("#6b7280")
	}
	if c, ok := metroColors[dep.MetroColor]; ok && dep.TransportType == models.Metro {
		color = c
	}
	return lipgloss.NewStyle().
		Background(color).
		Foreground(lipgloss.Color("#ffffff")).
		Padding(0, 1).
		Render(dep.Line)
}

func minutesText(m models.MinutesUntil) string {
	n, ok := m.Minutes()
	if !ok {
		return m.String()
	}
	return timeutil.FormatMinutes(n)
}

// renderBoard prints a board as a table. Short lists are padded with empty
// rows so the layout does not jump between refreshes.
func renderBoard(title string, deps []models.Departure, now time.Time) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render("Last updated: " + now.Format("15:04:05")))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lineCol.Render(headerStyle.Render("Line")),
		directionCol.Render(headerStyle.Render("Direction")),
		stationCol.Render(headerStyle.Render("Station")),
		timeCol.Render(headerStyle.Render("Time")),
		leftCol.Render(headerStyle.Render("Leaves")),
		nextCol.Render(headerStyle.Render("Next")),
	))
	b.WriteString("\n")

	if len(deps) == 0 {
		b.WriteString(mutedStyle.Render("No departures"))
		b.WriteString("\n")
	}

	for _, dep := range deps {
		next := ""
		if dep.NextDepartureMinutes != nil {
			next = timeutil.FormatMinutes(*dep.NextDepartureMinutes)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			lineCol.Render(badge(dep)),
			directionCol.Render(dep.Direction),
			stationCol.Render(dep.Station),
			timeCol.Render(dep.DisplayTime),
			leftCol.Render(minutesText(dep.MinutesUntil)),
			nextCol.Render(next),
		))
		if dep.ArrivalAtLastStop != "" && dep.JourneyMinutes != nil {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  arrives %s (%s)", dep.ArrivalAtLastStop, timeutil.FormatMinutes(*dep.JourneyMinutes))))
		}
		b.WriteString("\n")
	}

	for i := len(deps); i < minRows; i++ {
		b.WriteString("\n")
	}
	return b.String()
}
