// Package config loads the application configuration and the per-board
// station configuration.
//
// The application configuration is read from config.yml, overlaid on
// defaults, and validated using struct tags. Boards live one per file in a
// directory; the board name is the file name without extension. Board files
// may be YAML or JSON.
package config
