package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fetsare/manbacken-depart/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "depart",
	Short: "Real time departures for configured boards",
	Long: `depart aggregates live ResRobot departures for the stations of a board
and prints them the way the board shows them.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (defaults to config.yml)")
	rootCmd.PersistentFlags().String("boards", "", "Board configuration directory (overrides config)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// loadConfig reads the app config and applies persistent flag overrides
func loadConfig(cmd *cobra.Command) (*config.AppConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	boardsDir, _ := cmd.Flags().GetString("boards")

	cfg, err := config.LoadAppConfig(path)
	if err != nil {
		return nil, err
	}
	if boardsDir != "" {
		cfg.Boards.Dir = boardsDir
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
