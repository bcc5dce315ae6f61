package resrobot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/resty.v1"

	"github.com/fetsare/manbacken-depart/internal/models"
)

// ErrStatus is returned when the departure board answers with a non-200 status
var ErrStatus = errors.New("unexpected status code")

var lineNumber = regexp.MustCompile(`\b(\d+[A-Z]?)\b`)

// Client fetches departure boards from the ResRobot API
type Client struct {
	baseURL  string
	accessID string
	http     *resty.Client
}

// NewClient creates a ResRobot client. Request timeouts are left to the
// caller's context.
func NewClient(baseURL, accessID string) *Client {
	return &Client{
		baseURL:  baseURL,
		accessID: accessID,
		http: resty.New().
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", "manbacken-depart/1.0"),
	}
}

// Departures returns the departures of stationID within horizon. A body
// without a Departure field means there is nothing to show.
func (c *Client) Departures(ctx context.Context, stationID string, horizon time.Duration) ([]models.RawDeparture, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"id":       stationID,
			"format":   "json",
			"accessId": c.accessID,
			"duration": strconv.Itoa(int(horizon / time.Minute)),
		}).
		Get(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch departures: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())
	}

	var board departureBoard
	if err := json.Unmarshal(resp.Body(), &board); err != nil {
		return nil, fmt.Errorf("failed to decode departures JSON: %w", err)
	}

	out := make([]models.RawDeparture, 0, len(board.Departures))
	for _, d := range board.Departures {
		out = append(out, d.toRaw())
	}
	return out, nil
}

func (d departure) toRaw() models.RawDeparture {
	raw := models.RawDeparture{
		Line:         d.line(),
		CategoryText: d.Name,
		TimeOfDay:    d.Time,
		Direction:    d.Direction,
	}
	if d.Product != nil && d.Product.CatOutL != "" {
		raw.CategoryText = d.Product.CatOutL
	}
	if d.Stops != nil {
		for _, s := range d.Stops.Stop {
			raw.Stops = append(raw.Stops, models.RawStop{Name: s.Name, ArrivalTime: s.ArrTime})
		}
	}
	return raw
}

// line prefers the printed line number; names look like "Länstrafik - Buss 4"
func (d departure) line() string {
	if d.Product != nil {
		if d.Product.DisplayNumber != "" {
			return d.Product.DisplayNumber
		}
		if d.Product.Line != "" {
			return d.Product.Line
		}
	}
	if m := lineNumber.FindAllString(d.Name, -1); len(m) > 0 {
		return m[len(m)-1]
	}
	return ""
}
