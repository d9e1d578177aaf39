package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-replay/internal/match"
	"github.com/vovakirdan/tui-replay/internal/storage"
	"github.com/vovakirdan/tui-replay/internal/viewer"
)

// SSHServerConfig holds configuration for the SSH replay server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.replay/host_key.
	HostKeyPath string

	// LogDir is the directory of match logs offered to connecting users.
	LogDir string

	// DBPath is the path to the view history database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// FPS is the playback frame rate for served sessions.
	FPS int

	// UIHeight is the height of the control band in frame pixels.
	UIHeight int

	// Theme is the color theme applied to served playbacks.
	Theme viewer.Theme
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		LogDir:      ".",
		DBPath:      "~/.replay/history.db",
		IdleTimeout: 30 * time.Minute,
		FPS:         60,
		UIHeight:    viewer.DefaultUIHeight,
		Theme:       viewer.DefaultTheme(),
	}
}

// SSHServer wraps a Wish SSH server serving match replays.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "replay-ssh",
	})

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".replay", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	model := NewSessionModel(s.config, s.store, pty.Window.Width, pty.Window.Height)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "logs", s.config.LogDir)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages the full SSH session flow: picker -> playback -> picker.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	config   SSHServerConfig
	store    *storage.Store
	screenW  int
	screenH  int
	picker   PickerModel
	playback *Model
	playing  bool
	errMsg   string
	quitting bool
}

// NewSessionModel creates a session model starting in the log picker.
func NewSessionModel(cfg SSHServerConfig, store *storage.Store, screenW, screenH int) SessionModel {
	m := SessionModel{
		config:  cfg,
		store:   store,
		screenW: screenW,
		screenH: screenH,
	}
	picker, err := NewPickerModel(cfg.LogDir, screenW, screenH)
	if err != nil {
		m.errMsg = err.Error()
		return m
	}
	m.picker = picker
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.screenW = wsm.Width
		m.screenH = wsm.Height
	}

	if m.errMsg != "" {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.playing && m.playback != nil {
		return m.updatePlayback(msg)
	}
	return m.updatePicker(msg)
}

// updatePicker handles updates while choosing a log.
func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if m.picker.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if path := m.picker.Choice(); path != "" {
		playback, err := m.startPlayback(path)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.playback = &playback
		m.playing = true
		return m, m.playback.Init()
	}

	return m, cmd
}

// startPlayback loads the chosen log and builds a playback model for it.
func (m SessionModel) startPlayback(path string) (Model, error) {
	mt, err := match.Load(path)
	if err != nil {
		return Model{}, err
	}
	v, err := viewer.New(mt, m.config.Theme, m.config.UIHeight)
	if err != nil {
		return Model{}, err
	}
	return NewModel(v, m.store, path, m.screenW, m.screenH, m.config.FPS), nil
}

// updatePlayback handles updates while a match is playing.
func (m SessionModel) updatePlayback(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.playback.Update(msg)
	if playback, ok := newModel.(Model); ok {
		m.playback = &playback
	}

	// Playback quitting sends the user back to the picker rather than
	// dropping the connection.
	if m.playback.quitting {
		m.playing = false
		m.playback = nil
		picker, err := NewPickerModel(m.config.LogDir, m.screenW, m.screenH)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.picker = picker
		return m, m.picker.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.errMsg != "" {
		return pickerTitleStyle.Render("Error: "+m.errMsg) + "\n  press any key to disconnect\n"
	}
	if m.playing && m.playback != nil {
		return m.playback.View()
	}
	return m.picker.View()
}
