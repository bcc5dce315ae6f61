package departures

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fetsare/manbacken-depart/internal/config"
	"github.com/fetsare/manbacken-depart/internal/models"
	"github.com/fetsare/manbacken-depart/internal/timeutil"
)

// Options holds the limits of an aggregation run
type Options struct {
	// Horizon is how far ahead the provider is asked for departures
	Horizon time.Duration
	// Timeout bounds each station fetch, zero means no per-station bound
	Timeout                 time.Duration
	MaxDisplay              int
	DefaultMinTimeThreshold int
}

// Aggregator turns a board configuration into its display list
type Aggregator struct {
	provider     Provider
	opts         Options
	minutesUntil MinutesFunc
	clean        CleanFunc
	now          func() time.Time
	logger       *slog.Logger
}

// Option customises an Aggregator
type Option func(*Aggregator)

// WithLogger sets the logger, slog.Default() otherwise
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) { a.logger = logger }
}

// WithClock sets the source of the instant captured at the start of a run
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

// WithMinutesFunc replaces the time-difference utility
func WithMinutesFunc(fn MinutesFunc) Option {
	return func(a *Aggregator) { a.minutesUntil = fn }
}

// WithCleaner replaces the direction cleaning utility
func WithCleaner(fn CleanFunc) Option {
	return func(a *Aggregator) { a.clean = fn }
}

func NewAggregator(provider Provider, opts Options, options ...Option) *Aggregator {
	a := &Aggregator{
		provider:     provider,
		opts:         opts,
		minutesUntil: timeutil.MinutesUntil,
		clean:        timeutil.StripParenthetical,
		now:          time.Now,
		logger:       slog.Default(),
	}
	for _, o := range options {
		o(a)
	}
	return a
}

// Aggregate runs the whole pipeline for one board: fetch every station in
// parallel, normalize, filter per station, rank, link next departures and
// truncate. An invalid board fails the run; station failures do not.
func (a *Aggregator) Aggregate(ctx context.Context, board *models.BoardConfig) ([]models.Departure, error) {
	if err := config.ValidateBoard(board); err != nil {
		return nil, err
	}
	if a.opts.MaxDisplay <= 0 {
		return nil, fmt.Errorf("%w: max display must be positive, got %d", config.ErrInvalidBoard, a.opts.MaxDisplay)
	}

	now := a.now()
	results, err := FetchStations(ctx, a.provider, board.Stations, FetchOptions{
		Horizon: a.opts.Horizon,
		Timeout: a.opts.Timeout,
	}, a.logger)
	if err != nil {
		return nil, fmt.Errorf("fetch stations: %w", err)
	}

	normalizer := Normalizer{Now: now, MinutesUntil: a.minutesUntil, Clean: a.clean}
	var eligible []models.Departure
	for _, r := range results {
		filter := NewLineFilter(r.Station, a.opts.DefaultMinTimeThreshold, a.logger)
		eligible = append(eligible, filter.Apply(normalizer.NormalizeAll(r.Departures, r.Station.Name))...)
	}

	linked := LinkNextDepartures(Rank(eligible))
	out := Truncate(linked, a.opts.MaxDisplay)

	a.logger.Debug("Aggregated board",
		"stations", len(results), "eligible", len(eligible), "shown", len(out))
	return out, nil
}
