package feed

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/fetsare/manbacken-depart/internal/models"
	"github.com/fetsare/manbacken-depart/internal/store"
)

// Aggregator produces the display list of one board
type Aggregator interface {
	Aggregate(ctx context.Context, board *models.BoardConfig) ([]models.Departure, error)
}

// BoardSource lists board names and loads their configuration
type BoardSource interface {
	ListBoards() ([]string, error)
	LoadBoard(name string) (*models.BoardConfig, error)
}

// Manager re-runs the aggregation of every board on a fixed interval and
// publishes the results to the store
type Manager struct {
	aggregator     Aggregator
	boards         BoardSource
	store          *store.Store
	updateInterval time.Duration
	runTimeout     time.Duration
	logger         *slog.Logger
	ctx            context.Context
	cancel         context.CancelFunc
	wg             sync.WaitGroup
}

// NewManager creates a new feed manager. runTimeout bounds a single board
// run; zero leaves it unbounded.
func NewManager(aggregator Aggregator, boards BoardSource, s *store.Store, updateInterval, runTimeout time.Duration, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		aggregator:     aggregator,
		boards:         boards,
		store:          s,
		updateInterval: updateInterval,
		runTimeout:     runTimeout,
		logger:         logger,
		ctx:            ctx,
		cancel:         cancel,
	}
}

// Start begins the feed update loop
func (m *Manager) Start() {
	m.wg.Add(1)
	go m.updateLoop()
}

// Stop cancels in-flight runs and waits for the loop to exit
func (m *Manager) Stop() {
	m.cancel()
	m.wg.Wait()
}

func (m *Manager) updateLoop() {
	defer m.wg.Done()

	// Initial update
	if err := m.Update(m.ctx); err != nil {
		m.logger.Error("Initial update failed", "error", err)
	}

	ticker := time.NewTicker(m.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := m.Update(m.ctx); err != nil {
				m.logger.Error("Update failed", "error", err)
			}
		case <-m.ctx.Done():
			return
		}
	}
}

// Update refreshes the board list and re-aggregates every board
func (m *Manager) Update(ctx context.Context) error {
	names, err := m.boards.ListBoards()
	if err != nil {
		return err
	}
	m.store.SetBoards(names)

	for _, name := range names {
		if err := m.RefreshBoard(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

// RefreshBoard aggregates one board and stores the snapshot. A broken board
// is stored as an empty snapshot carrying the error; only cancellation of
// ctx is returned.
func (m *Manager) RefreshBoard(ctx context.Context, name string) error {
	runCtx := ctx
	if m.runTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, m.runTimeout)
		defer cancel()
	}

	start := time.Now()
	board, err := m.boards.LoadBoard(name)
	var deps []models.Departure
	if err == nil {
		deps, err = m.aggregator.Aggregate(runCtx, board)
	}

	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, context.DeadlineExceeded) {
			m.logger.Warn("Board run timed out", "board", name, "error", err)
		} else {
			m.logger.Error("Board run failed", "board", name, "error", err)
		}
	} else {
		m.logger.Info("Board updated", "board", name, "departures", len(deps), "duration", time.Since(start))
	}

	m.store.UpdateSnapshot(store.NewSnapshot(name, deps, err, time.Now()))
	return nil
}
