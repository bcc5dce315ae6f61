package board

import (
	"time"

	"github.com/fetsare/manbacken-depart/internal/config"
	"github.com/fetsare/manbacken-depart/internal/departures"
	"github.com/fetsare/manbacken-depart/internal/store"
)

// Client defines the interface for accessing board departures
// Abstracts different data sources (local vs remote) behind common interface
type Client interface {
	GetBoards() ([]string, error)
	GetBoard(name string) (store.Snapshot, error)

	GetLastUpdate() time.Time
}

// Options translates the application config into aggregation limits
func Options(cfg *config.AppConfig) departures.Options {
	return departures.Options{
		Horizon:                 time.Duration(cfg.ResRobot.DurationMinutes) * time.Minute,
		Timeout:                 time.Duration(cfg.ResRobot.TimeoutMS) * time.Millisecond,
		MaxDisplay:              cfg.Display.MaxDepartures,
		DefaultMinTimeThreshold: cfg.Display.DefaultMinTimeThreshold,
	}
}
