package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// ResRobotConfig contains upstream departure provider configuration
type ResRobotConfig struct {
	BaseURL         string `yaml:"baseURL" validate:"required,url"`
	AccessID        string `yaml:"accessID" validate:"required"`
	DurationMinutes int    `yaml:"durationMinutes" validate:"gt=0"`
	TimeoutMS       int    `yaml:"timeoutMS" validate:"gte=0"`
}

// BoardsConfig tells where board files are found
type BoardsConfig struct {
	Dir string `yaml:"dir" validate:"required"`
}

// DisplayConfig contains limits applied to every board
type DisplayConfig struct {
	MaxDepartures           int `yaml:"maxDepartures" validate:"gt=0"`
	DefaultMinTimeThreshold int `yaml:"defaultMinTimeThreshold" validate:"gte=0"`
}

// RefreshConfig controls how often boards are re-aggregated
type RefreshConfig struct {
	IntervalSeconds int `yaml:"intervalSeconds" validate:"gt=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	ResRobot ResRobotConfig `yaml:"resrobot"`
	Boards   BoardsConfig   `yaml:"boards"`
	Display  DisplayConfig  `yaml:"display"`
	Refresh  RefreshConfig  `yaml:"refresh"`
}
