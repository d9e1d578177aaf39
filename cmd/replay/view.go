package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-replay/internal/config"
	"github.com/vovakirdan/tui-replay/internal/match"
	"github.com/vovakirdan/tui-replay/internal/platform/tui"
	"github.com/vovakirdan/tui-replay/internal/storage"
	"github.com/vovakirdan/tui-replay/internal/viewer"
)

var flagConfig string

var viewCmd = &cobra.Command{
	Use:   "view <log>",
	Short: "Watch a recorded match",
	Long: `Play back the specified match log.

Controls:
  Space          - Play/Pause (or click the button)
  Right/./=      - Double playback speed
  Left/,/-       - Halve playback speed
  Click/drag bar - Scrub to a position in the match
  Q/Esc/Ctrl+C   - Quit

Examples:
  replay view match.jsonl
  replay view match.jsonl --fps 30
  replay view match.jsonl --config ./my-theme.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runView,
}

func init() {
	viewCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom viewer config YAML")
}

func runView(cmd *cobra.Command, args []string) {
	logPath := args[0]

	// Load and validate the log before touching the terminal
	mt, err := match.Load(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = flagFPS
	}

	v, err := viewer.New(mt, cfg.BuildTheme(), cfg.UIHeight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the initial screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open view history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		// Continue without storage - playback still works
		store = nil
	}

	runErr := tui.Run(v, store, logPath, width, height, cfg.FPS)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", runErr)
		os.Exit(1)
	}
}
