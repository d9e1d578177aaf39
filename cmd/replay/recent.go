package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-replay/internal/storage"
)

var flagRecentLimit int

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recently watched matches",
	Long: `Display the most recently watched match logs.

Examples:
  replay recent
  replay recent --limit 5`,
	Run: runRecent,
}

func init() {
	recentCmd.Flags().IntVar(&flagRecentLimit, "limit", 10, "Maximum number of entries to show")
}

func runRecent(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	views, err := store.RecentViews(flagRecentLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recently watched matches")
	fmt.Println()

	if len(views) == 0 {
		fmt.Println("No matches watched yet.")
		fmt.Println()
		fmt.Println("Run 'replay view <log>' to watch one.")
		return
	}

	// Calculate column width
	maxPathLen := 4 // "Path" header
	for _, v := range views {
		if len(v.LogPath) > maxPathLen {
			maxPathLen = len(v.LogPath)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-8s  %-8s  %s\n", maxPathLen, "Path", "Frames", "Watched", "Date")
	fmt.Printf("  %-*s  %-8s  %-8s  %s\n", maxPathLen, "----", "------", "-------", "----")

	// Print entries
	for _, v := range views {
		dateStr := v.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-*s  %-8d  %-8s  %s\n", maxPathLen, v.LogPath, v.Frames,
			fmt.Sprintf("%ds", v.WatchedSecs), dateStr)
	}
}
