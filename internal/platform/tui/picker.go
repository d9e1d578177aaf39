package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// logExtensions are the file suffixes treated as match logs.
var logExtensions = map[string]bool{
	".log":   true,
	".txt":   true,
	".jsonl": true,
}

// PickerKeyMap defines the key bindings for the log picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "watch"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var pickerTitleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 2)

// PickerModel is the Bubble Tea model for choosing a match log from a
// directory. When the user confirms a choice, Choice() returns its path.
type PickerModel struct {
	dir      string
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	choice   string
	quitting bool
}

// NewPickerModel lists the match logs in dir and builds the picker.
func NewPickerModel(dir string, width, height int) (PickerModel, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return PickerModel{}, fmt.Errorf("cannot read log directory %s: %w", dir, err)
	}

	var rows []table.Row
	for _, e := range entries {
		if e.IsDir() || !logExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		rows = append(rows, table.Row{
			e.Name(),
			fmt.Sprintf("%d KB", (info.Size()+1023)/1024),
			info.ModTime().Format("2006-01-02 15:04"),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })

	nameWidth := minDim(width - 30)
	columns := []table.Column{
		{Title: "Match log", Width: nameWidth},
		{Title: "Size", Width: 8},
		{Title: "Recorded", Width: 17},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(minDim(height-6)),
	)

	return PickerModel{
		dir:   dir,
		table: t,
		help:  help.New(),
		keys:  DefaultPickerKeyMap(),
	}, nil
}

// minDim keeps layout dimensions usable on tiny terminals.
func minDim(v int) int {
	if v < 10 {
		return 10
	}
	return v
}

// Choice returns the selected log path, or empty if nothing was chosen.
func (m PickerModel) Choice() string {
	return m.choice
}

// Quitting reports whether the user backed out of the picker.
func (m PickerModel) Quitting() bool {
	return m.quitting
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles picker input.
func (m PickerModel) Update(msg tea.Msg) (PickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Select):
			if row := m.table.SelectedRow(); row != nil {
				m.choice = filepath.Join(m.dir, row[0])
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PickerModel) View() string {
	if len(m.table.Rows()) == 0 {
		return pickerTitleStyle.Render("No match logs found in " + m.dir)
	}
	return pickerTitleStyle.Render("Pick a match to replay") + "\n" +
		m.table.View() + "\n" +
		m.help.View(m.keys)
}
