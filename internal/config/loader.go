package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/fetsare/manbacken-depart/internal/models"
)

const (
	DefaultPort                   = 8080
	DefaultResRobotURL            = "https://api.resrobot.se/v2.1/departureBoard"
	DefaultDurationMinutes        = 60
	DefaultBoardsDir              = "configs"
	DefaultMaxDepartures          = 10
	DefaultMinTimeThreshold       = 2
	DefaultRefreshIntervalSeconds = 30
	AccessIDEnv                   = "RESROBOT_ACCESS_ID"
)

var (
	// ErrInvalidBoard is returned for a board that fails validation
	ErrInvalidBoard = errors.New("invalid board configuration")
	// ErrBoardNotFound is returned when no board file has the given name
	ErrBoardNotFound = errors.New("board not found")
)

var (
	defaultPaths   = []string{"config.yml", "./config/config.yml"}
	boardExts      = []string{".yml", ".yaml", ".json"}
	boardNameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	validate       = validator.New()
)

// Default returns the configuration used when a field is not set
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{Port: DefaultPort},
		ResRobot: ResRobotConfig{
			BaseURL:         DefaultResRobotURL,
			DurationMinutes: DefaultDurationMinutes,
		},
		Boards: BoardsConfig{Dir: DefaultBoardsDir},
		Display: DisplayConfig{
			MaxDepartures:           DefaultMaxDepartures,
			DefaultMinTimeThreshold: DefaultMinTimeThreshold,
		},
		Refresh: RefreshConfig{IntervalSeconds: DefaultRefreshIntervalSeconds},
	}
}

// LoadAppConfig loads and validates the application configuration. An
// empty path tries config.yml and ./config/config.yml and falls back to the
// defaults when neither exists. The access ID may come from the
// RESROBOT_ACCESS_ID environment variable.
func LoadAppConfig(path string) (*AppConfig, error) {
	cfg := Default()

	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}
	if data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if id := os.Getenv(AccessIDEnv); id != "" {
		cfg.ResRobot.AccessID = id
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return data, nil
	}

	for _, p := range defaultPaths {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil, nil
}

// ValidateBoard checks that a board can be aggregated
func ValidateBoard(board *models.BoardConfig) error {
	if board == nil {
		return fmt.Errorf("%w: missing board", ErrInvalidBoard)
	}
	if err := validate.Struct(board); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBoard, err)
	}
	for _, st := range board.Stations {
		seen := make(map[string]bool, len(st.Lines))
		for _, l := range st.Lines {
			if seen[l.Line] {
				return fmt.Errorf("%w: station %s configures line %s twice", ErrInvalidBoard, st.Name, l.Line)
			}
			seen[l.Line] = true
		}
	}
	return nil
}

// LoadBoard reads and validates a single board file
func LoadBoard(path string) (*models.BoardConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read board %s: %w", path, err)
	}

	var board models.BoardConfig
	if err := yaml.Unmarshal(data, &board); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidBoard, path, err)
	}
	if err := ValidateBoard(&board); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &board, nil
}

// LoadBoardByName finds the board file called name in dir and loads it
func LoadBoardByName(dir, name string) (*models.BoardConfig, error) {
	if !boardNameRegex.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrBoardNotFound, name)
	}
	for _, ext := range boardExts {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return LoadBoard(path)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrBoardNotFound, name)
}

// ListBoards returns the sorted names of all board files in dir
func ListBoards(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read boards directory: %w", err)
	}

	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if !isBoardExt(ext) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ext)
		if !boardNameRegex.MatchString(name) || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func isBoardExt(ext string) bool {
	for _, e := range boardExts {
		if e == ext {
			return true
		}
	}
	return false
}

// BoardDir is a directory of board files
type BoardDir string

func (d BoardDir) ListBoards() ([]string, error) {
	return ListBoards(string(d))
}

func (d BoardDir) LoadBoard(name string) (*models.BoardConfig, error) {
	return LoadBoardByName(string(d), name)
}
