package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fetsare/manbacken-depart/internal/models"
)

// ErrBoardNotFound is returned for a board the store has never seen
var ErrBoardNotFound = errors.New("board not found")

// Snapshot is the most recent departure list of one board. A run that
// failed leaves an empty list and a description of the failure, never an
// older list.
type Snapshot struct {
	Board      string             `json:"board"`
	Title      string             `json:"title"`
	Departures []models.Departure `json:"departures"`
	Error      string             `json:"error,omitempty"`
	Updated    time.Time          `json:"updated"`
}

// NewSnapshot builds a snapshot for board at the given time
func NewSnapshot(board string, deps []models.Departure, runErr error, at time.Time) Snapshot {
	if deps == nil || runErr != nil {
		deps = []models.Departure{}
	}
	s := Snapshot{
		Board:      board,
		Title:      BoardTitle(board),
		Departures: deps,
		Updated:    at,
	}
	if runErr != nil {
		s.Error = runErr.Error()
	}
	return s
}

// BoardTitle turns a board name such as "manbacken" into "Manbacken"
func BoardTitle(board string) string {
	return cases.Title(language.Swedish).String(board)
}

// Store manages the latest snapshot of each board in memory
type Store struct {
	mu         sync.RWMutex
	snapshots  map[string]Snapshot
	boards     []string
	lastUpdate time.Time
}

// NewStore creates a new store instance
func NewStore() *Store {
	return &Store{
		snapshots: make(map[string]Snapshot),
	}
}

// SetBoards replaces the set of known boards and forgets snapshots of
// boards that no longer exist
func (s *Store) SetBoards(names []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	known := make(map[string]bool, len(names))
	s.boards = make([]string, 0, len(names))
	for _, name := range names {
		if known[name] {
			continue
		}
		known[name] = true
		s.boards = append(s.boards, name)
	}
	sort.Strings(s.boards)

	for name := range s.snapshots {
		if !known[name] {
			delete(s.snapshots, name)
		}
	}
}

// UpdateSnapshot stores the result of a board run
func (s *Store) UpdateSnapshot(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshots[snap.Board] = snap
	if snap.Updated.After(s.lastUpdate) {
		s.lastUpdate = snap.Updated
	}
}

// GetSnapshot returns the latest snapshot of a board. A known board that
// has not been aggregated yet returns an empty snapshot.
func (s *Store) GetSnapshot(board string) (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if snap, ok := s.snapshots[board]; ok {
		return copySnapshot(snap), nil
	}
	for _, name := range s.boards {
		if name == board {
			return NewSnapshot(board, nil, nil, time.Time{}), nil
		}
	}
	return Snapshot{}, fmt.Errorf("%w: %s", ErrBoardNotFound, board)
}

// GetBoards returns the names of all known boards
func (s *Store) GetBoards() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]string, len(s.boards))
	copy(result, s.boards)
	return result
}

// GetLastUpdate returns the time of the most recent snapshot
func (s *Store) GetLastUpdate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdate
}

func copySnapshot(snap Snapshot) Snapshot {
	deps := make([]models.Departure, len(snap.Departures))
	copy(deps, snap.Departures)
	snap.Departures = deps
	return snap
}
