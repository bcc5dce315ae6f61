package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fetsare/manbacken-depart/internal/config"
	"github.com/fetsare/manbacken-depart/internal/store"
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List the configured boards",
	RunE: func(cmd *cobra.Command, args []string) error {
		boardsDir, _ := cmd.Flags().GetString("boards")
		if boardsDir == "" {
			boardsDir = config.DefaultBoardsDir
		}

		names, err := config.ListBoards(boardsDir)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No board configurations found.")
			return nil
		}
		for _, name := range names {
			fmt.Printf("%-20s %s\n", name, store.BoardTitle(name))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(boardsCmd)
}
