package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-replay/internal/config"
	"github.com/vovakirdan/tui-replay/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagLogDir      string
	flagSSHDBPath   string
	flagIdleTimeout int
	flagSSHConfig   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the replay SSH server",
	Long: `Start an SSH server that lets users connect and watch match replays.

Each SSH connection gets a picker listing the match logs in the served
directory. View history is stored per-server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.replay/host_key

Examples:
  replay serve                           # Serve the current directory on :23234
  replay serve --ssh :2222 --logs ./matches
  replay serve --host-key ./my_host_key  # Use specific host key
  replay serve --db ./history.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagLogDir, "logs", ".", "Directory of match logs to serve")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.replay/history.db", "Path to view history database")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagSSHConfig, "config", "", "Path to custom viewer config YAML")
}

func runServe(cmd *cobra.Command, _ []string) {
	viewCfg, err := config.Load(flagSSHConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("fps") {
		viewCfg.FPS = flagFPS
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		LogDir:      flagLogDir,
		DBPath:      flagSSHDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		FPS:         viewCfg.FPS,
		UIHeight:    viewCfg.UIHeight,
		Theme:       viewCfg.BuildTheme(),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting replay SSH server on %s\n", cfg.Address)
	fmt.Printf("Serving match logs from %s\n", cfg.LogDir)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
