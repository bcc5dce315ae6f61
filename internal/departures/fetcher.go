package departures

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fetsare/manbacken-depart/internal/models"
)

// Provider returns the raw departures of one station within horizon
type Provider interface {
	Departures(ctx context.Context, stationID string, horizon time.Duration) ([]models.RawDeparture, error)
}

// StationResult pairs a station with what its fetch returned. Err is set
// when the fetch failed, in which case Departures is empty.
type StationResult struct {
	Station    models.StationConfig
	Departures []models.RawDeparture
	Err        error
}

// FetchOptions controls a single fan-out over a board's stations
type FetchOptions struct {
	Horizon time.Duration
	// Timeout bounds each station fetch. Zero leaves fetches bounded only by ctx.
	Timeout time.Duration
}

// FetchStations fetches every station concurrently, one goroutine per
// station. A failing station is logged and yields an empty result; it never
// affects the others. Results follow the order of stations. If ctx is
// cancelled the partial results are discarded and ctx.Err() is returned.
func FetchStations(ctx context.Context, provider Provider, stations []models.StationConfig, opts FetchOptions, logger *slog.Logger) ([]StationResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	results := make([]StationResult, len(stations))
	g, gctx := errgroup.WithContext(ctx)

	for i, station := range stations {
		i, station := i, station
		g.Go(func() error {
			fetchCtx := gctx
			if opts.Timeout > 0 {
				var cancel context.CancelFunc
				fetchCtx, cancel = context.WithTimeout(gctx, opts.Timeout)
				defer cancel()
			}

			start := time.Now()
			raw, err := provider.Departures(fetchCtx, station.ID, opts.Horizon)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logger.Warn("Failed to fetch departures for station",
					"station", station.Name, "id", station.ID, "error", err)
				results[i] = StationResult{Station: station, Err: err}
				return nil
			}

			logger.Debug("Fetched station departures",
				"station", station.Name, "count", len(raw), "duration", time.Since(start))
			results[i] = StationResult{Station: station, Departures: raw}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
