// replay is a TUI viewer for recorded paddle-ball match logs.
//
// Usage:
//
//	replay view <log>        - Watch a recorded match
//	replay info <log>        - Print match log details
//	replay recent            - Show recently watched matches
//	replay serve             - Start SSH server for remote viewing
//
// Global flags:
//
//	--fps <rate>    - Set playback frame rate (default: 60)
//	--db <path>     - Set history database path (default: ~/.replay/history.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay - Watch recorded paddle-ball matches in your terminal",
	Long: `Replay is a terminal-based viewer for paddle-ball match logs.

It plays back recorded matches frame by frame with play/pause, speed
control and a clickable scrub bar.

Available commands:
  view     - Watch a recorded match
  info     - Print match log details
  recent   - Show recently watched matches
  serve    - Start SSH server for remote viewing

Examples:
  replay view match.jsonl
  replay view match.jsonl --fps 30
  replay info match.jsonl
  replay recent
  replay serve --ssh :2222 --logs ./matches`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Playback frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.replay/history.db", "Path to view history database")

	// Add subcommands
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(serveCmd)
}
