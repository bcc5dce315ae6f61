package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/fetsare/manbacken-depart/internal/config"
	"github.com/fetsare/manbacken-depart/internal/departures"
	"github.com/fetsare/manbacken-depart/internal/resrobot"
	"github.com/fetsare/manbacken-depart/internal/store"
	"github.com/fetsare/manbacken-depart/pkg/board"
)

var showCmd = &cobra.Command{
	Use:   "show <board>",
	Short: "Fetch and print the current departures of a board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		timeout, _ := cmd.Flags().GetDuration("timeout")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := newLogger(cmd)

		boardCfg, err := config.LoadBoardByName(cfg.Boards.Dir, name)
		if err != nil {
			fmt.Print(renderBoard(store.BoardTitle(name), nil, time.Now()))
			return fmt.Errorf("board %s: %w", name, err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		provider := resrobot.NewClient(cfg.ResRobot.BaseURL, cfg.ResRobot.AccessID)
		agg := departures.NewAggregator(provider, board.Options(cfg), departures.WithLogger(logger))

		deps, err := agg.Aggregate(ctx, boardCfg)
		if err != nil {
			return err
		}

		fmt.Print(renderBoard(store.BoardTitle(name), deps, time.Now()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().DurationP("timeout", "t", 30*time.Second, "Upper bound for the whole run")
}
