package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fetsare/manbacken-depart/internal/models"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadAppConfig(t *testing.T) {
	t.Setenv(AccessIDEnv, "")
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", `
server:
  port: 9000
resrobot:
  accessID: secret
  timeoutMS: 5000
display:
  maxDepartures: 6
`)

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.ResRobot.AccessID != "secret" {
		t.Errorf("expected access id from file, got %q", cfg.ResRobot.AccessID)
	}
	if cfg.ResRobot.BaseURL != DefaultResRobotURL {
		t.Errorf("expected default base URL, got %q", cfg.ResRobot.BaseURL)
	}
	if cfg.Display.MaxDepartures != 6 {
		t.Errorf("expected max departures 6, got %d", cfg.Display.MaxDepartures)
	}
	if cfg.Display.DefaultMinTimeThreshold != DefaultMinTimeThreshold {
		t.Errorf("expected default threshold, got %d", cfg.Display.DefaultMinTimeThreshold)
	}
	if cfg.Refresh.IntervalSeconds != DefaultRefreshIntervalSeconds {
		t.Errorf("expected default refresh interval, got %d", cfg.Refresh.IntervalSeconds)
	}
}

func TestLoadAppConfig_AccessIDFromEnv(t *testing.T) {
	t.Setenv(AccessIDEnv, "from-env")
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "server:\n  port: 8081\n")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.ResRobot.AccessID != "from-env" {
		t.Errorf("expected access id from env, got %q", cfg.ResRobot.AccessID)
	}
}

func TestLoadAppConfig_Errors(t *testing.T) {
	t.Setenv(AccessIDEnv, "")
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"missing access id", "server:\n  port: 8080\n"},
		{"invalid yaml", "invalid: yaml: content: [[["},
		{"invalid port", "server:\n  port: -1\nresrobot:\n  accessID: x\n"},
		{"invalid url", "resrobot:\n  accessID: x\n  baseURL: not a url\n"},
		{"zero max departures", "resrobot:\n  accessID: x\ndisplay:\n  maxDepartures: 0\n"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, fmt.Sprintf("case%d.yml", i), tt.content)
			if _, err := LoadAppConfig(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	if _, err := LoadAppConfig(filepath.Join(dir, "missing.yml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoadBoard(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "manbacken.yml", `
stations:
  - name: Manbacken
    id: "740021680"
    lines:
      - line: "4"
        minTimeThreshold: 3
      - line: "17"
        directions: ["Slussen", "Gullmarsplan"]
        metroColor: green
`)

	board, err := LoadBoard(path)
	if err != nil {
		t.Fatalf("failed to load board: %v", err)
	}

	if len(board.Stations) != 1 {
		t.Fatalf("expected 1 station, got %d", len(board.Stations))
	}
	st := board.Stations[0]
	if st.ID != "740021680" || st.Name != "Manbacken" {
		t.Errorf("unexpected station %+v", st)
	}
	if len(st.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(st.Lines))
	}
	if st.Lines[0].MinTimeThreshold == nil || *st.Lines[0].MinTimeThreshold != 3 {
		t.Errorf("expected threshold 3 on line 4")
	}
	if st.Lines[1].MinTimeThreshold != nil {
		t.Errorf("expected unset threshold on line 17")
	}
	if len(st.Lines[1].Directions) != 2 {
		t.Errorf("expected 2 directions on line 17, got %v", st.Lines[1].Directions)
	}
}

func TestLoadBoard_JSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "slussen.json", `{
  "stations": [
    {"name": "Slussen", "id": "740000031", "lines": [{"line": "2"}]}
  ]
}`)

	board, err := LoadBoard(path)
	if err != nil {
		t.Fatalf("failed to load JSON board: %v", err)
	}
	if board.Stations[0].Lines[0].Line != "2" {
		t.Errorf("unexpected line %+v", board.Stations[0].Lines[0])
	}
}

func TestValidateBoard(t *testing.T) {
	negative := -1
	tests := []struct {
		name  string
		board *models.BoardConfig
	}{
		{"nil board", nil},
		{"no stations", &models.BoardConfig{}},
		{"station without id", &models.BoardConfig{Stations: []models.StationConfig{{Name: "A"}}}},
		{"station without name", &models.BoardConfig{Stations: []models.StationConfig{{ID: "1"}}}},
		{"line without name", &models.BoardConfig{Stations: []models.StationConfig{
			{Name: "A", ID: "1", Lines: []models.LineConfig{{}}},
		}}},
		{"negative threshold", &models.BoardConfig{Stations: []models.StationConfig{
			{Name: "A", ID: "1", Lines: []models.LineConfig{{Line: "4", MinTimeThreshold: &negative}}},
		}}},
		{"duplicate line", &models.BoardConfig{Stations: []models.StationConfig{
			{Name: "A", ID: "1", Lines: []models.LineConfig{{Line: "4"}, {Line: "4"}}},
		}}},
		{"unknown metro color", &models.BoardConfig{Stations: []models.StationConfig{
			{Name: "A", ID: "1", Lines: []models.LineConfig{{Line: "17", MetroColor: "red"}}},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBoard(tt.board)
			if !errors.Is(err, ErrInvalidBoard) {
				t.Errorf("expected ErrInvalidBoard, got %v", err)
			}
		})
	}

	valid := &models.BoardConfig{Stations: []models.StationConfig{
		{Name: "A", ID: "1", Lines: []models.LineConfig{{Line: "4"}}},
	}}
	if err := ValidateBoard(valid); err != nil {
		t.Errorf("expected valid board, got %v", err)
	}
}

func TestListAndLoadBoardByName(t *testing.T) {
	dir := t.TempDir()
	board := "stations:\n  - name: A\n    id: \"1\"\n    lines:\n      - line: \"4\"\n"
	writeFile(t, dir, "slussen.yaml", board)
	writeFile(t, dir, "manbacken.yml", board)
	writeFile(t, dir, "notes.txt", "ignored")
	if err := os.Mkdir(filepath.Join(dir, "archive.yml"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	names, err := ListBoards(dir)
	if err != nil {
		t.Fatalf("failed to list boards: %v", err)
	}
	if len(names) != 2 || names[0] != "manbacken" || names[1] != "slussen" {
		t.Errorf("expected [manbacken slussen], got %v", names)
	}

	if _, err := LoadBoardByName(dir, "slussen"); err != nil {
		t.Errorf("failed to load board by name: %v", err)
	}
	if _, err := LoadBoardByName(dir, "missing"); !errors.Is(err, ErrBoardNotFound) {
		t.Errorf("expected ErrBoardNotFound, got %v", err)
	}
	if _, err := LoadBoardByName(dir, "../etc/passwd"); !errors.Is(err, ErrBoardNotFound) {
		t.Errorf("expected ErrBoardNotFound for path traversal, got %v", err)
	}
}
