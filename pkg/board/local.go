package board

import (
	"log/slog"
	"time"

	"github.com/fetsare/manbacken-depart/internal/config"
	"github.com/fetsare/manbacken-depart/internal/departures"
	"github.com/fetsare/manbacken-depart/internal/feed"
	"github.com/fetsare/manbacken-depart/internal/resrobot"
	"github.com/fetsare/manbacken-depart/internal/store"
)

// LocalClient implements the Client interface for local usage
// Manages in-memory snapshot store and background board refreshes
type LocalClient struct {
	store       *store.Store
	feedManager *feed.Manager
}

// NewLocal creates a new local board client backed by ResRobot
// Starts background feed manager for automatic board updates
func NewLocal(cfg *config.AppConfig, logger *slog.Logger) (*LocalClient, error) {
	provider := resrobot.NewClient(cfg.ResRobot.BaseURL, cfg.ResRobot.AccessID)
	aggregator := departures.NewAggregator(provider, Options(cfg), departures.WithLogger(logger))
	return newLocal(aggregator, config.BoardDir(cfg.Boards.Dir), cfg, logger), nil
}

func newLocal(aggregator feed.Aggregator, boards feed.BoardSource, cfg *config.AppConfig, logger *slog.Logger) *LocalClient {
	s := store.NewStore()

	interval := time.Duration(cfg.Refresh.IntervalSeconds) * time.Second
	fm := feed.NewManager(aggregator, boards, s, interval, interval, logger)
	fm.Start()

	return &LocalClient{
		store:       s,
		feedManager: fm,
	}
}

// Close gracefully shuts down the local client
// Must be called to stop background goroutines and prevent leaks
func (c *LocalClient) Close() {
	c.feedManager.Stop()
}

func (c *LocalClient) GetBoards() ([]string, error) {
	return c.store.GetBoards(), nil
}

func (c *LocalClient) GetBoard(name string) (store.Snapshot, error) {
	return c.store.GetSnapshot(name)
}

func (c *LocalClient) GetLastUpdate() time.Time {
	return c.store.GetLastUpdate()
}
