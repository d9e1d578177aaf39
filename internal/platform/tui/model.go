package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-replay/internal/core"
	"github.com/vovakirdan/tui-replay/internal/storage"
	"github.com/vovakirdan/tui-replay/internal/viewer"
)

// Model is the Bubble Tea model running one match playback.
type Model struct {
	view      *viewer.Viewer
	screen    *core.Screen
	canvas    *cellCanvas
	keys      *KeyMapper
	store     *storage.Store
	logPath   string
	fps       int
	startedAt time.Time
	quitting  bool
}

// NewModel creates a playback model for an already-constructed viewer.
func NewModel(v *viewer.Viewer, store *storage.Store, logPath string, screenW, screenH, fps int) Model {
	layout := v.Layout()
	screen := core.NewScreen(core.Max(screenW, 1), core.Max(screenH, 1))
	return Model{
		view:      v,
		screen:    screen,
		canvas:    newCellCanvas(screen, layout.FrameW, layout.FrameH),
		keys:      NewKeyMapper(),
		store:     store,
		logPath:   logPath,
		fps:       fps,
		startedAt: time.Now(),
	}
}

// Init starts the render loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key := m.keys.MapKey(msg); key != core.KeyNone {
			if m.view.HandleEvent(core.KeyDownEvent{Key: key}) {
				return m.quit()
			}
		}
		return m, nil

	case tea.MouseMsg:
		if ev := m.keys.MapMouse(msg, m.canvas); ev != nil {
			if m.view.HandleEvent(ev) {
				return m.quit()
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		// Exactly one playback advance per rendered frame
		m.view.Tick()
		return m, tickCmd(m.fps)
	}

	return m, nil
}

// quit records the view and shuts the program down.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.recordView()
	return m, tea.Quit
}

// recordView saves this viewing to the history store. Best-effort: playback
// worked, a failed history write is not worth surfacing.
func (m Model) recordView() {
	if m.store == nil || m.logPath == "" {
		return
	}
	match := m.view.Match()
	watched := int(time.Since(m.startedAt).Seconds())
	//nolint:errcheck // Best-effort save
	m.store.RecordView(m.logPath, match.Len(), match.LastTick(), watched)
}

// View renders the current frame to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.view.Render(m.canvas)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for one local playback.
func Run(v *viewer.Viewer, store *storage.Store, logPath string, screenW, screenH, fps int) error {
	model := NewModel(v, store, logPath, screenW, screenH, fps)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Button clicks + drag on the scrub bar
	)

	_, err := p.Run()
	return err
}
