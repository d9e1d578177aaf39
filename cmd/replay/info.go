package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-replay/internal/match"
	"github.com/vovakirdan/tui-replay/internal/storage"
)

var infoCmd = &cobra.Command{
	Use:   "info <log>",
	Short: "Print match log details",
	Long: `Load the specified match log and print its court dimensions,
frame count and tick range without starting playback.

Examples:
  replay info match.jsonl`,
	Args: cobra.ExactArgs(1),
	Run:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) {
	logPath := args[0]

	mt, err := match.Load(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := mt.Config
	fmt.Printf("Match log: %s\n", logPath)
	fmt.Println()
	fmt.Printf("  Court:         %dx%d\n", cfg.Width, cfg.Height)
	fmt.Printf("  Paddles:       %dx%d\n", cfg.PaddleWidth, cfg.PaddleLength)
	fmt.Printf("  Ball radius:   %d\n", cfg.BallRadius)
	fmt.Printf("  Frames:        %d\n", mt.Len())
	fmt.Printf("  Ticks:         %d .. %d\n", mt.FirstTick(), mt.LastTick())

	// Watch count is informational; skip it if the database is unavailable
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return
	}
	defer store.Close()

	if count, countErr := store.ViewCount(logPath); countErr == nil && count > 0 {
		fmt.Printf("  Times watched: %d\n", count)
	}
}
