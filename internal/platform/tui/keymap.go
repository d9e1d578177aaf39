package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-replay/internal/core"
)

// KeyMapper translates Bubble Tea key messages to viewer key identifiers.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a viewer key. Keys the viewer does not
// react to map to KeyNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Key {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.KeyQuit
	case " ":
		return core.KeySpace
	case "left":
		return core.KeyLeft
	case "right":
		return core.KeyRight
	case ",":
		return core.KeyComma
	case ".":
		return core.KeyPeriod
	case "-":
		return core.KeyMinus
	case "=", "+":
		return core.KeyEquals
	}
	return core.KeyNone
}

// MapMouse translates a mouse message into a pointer event in frame space.
// The canvas supplies the cell-to-pixel mapping. Returns nil for mouse
// activity the viewer ignores (releases, wheel).
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, canvas *cellCanvas) core.Event {
	pos := canvas.PixelPos(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return core.PointerDownEvent{Button: core.ButtonLeft, Pos: pos}
		case tea.MouseButtonRight:
			return core.PointerDownEvent{Button: core.ButtonRight, Pos: pos}
		}

	case tea.MouseActionMotion:
		// Cell-motion tracking only reports motion while a button is held;
		// the held button arrives on the event itself.
		var mask core.ButtonMask
		switch msg.Button {
		case tea.MouseButtonLeft:
			mask = core.MaskLeft
		case tea.MouseButtonRight:
			mask = core.MaskRight
		}
		return core.PointerMoveEvent{Buttons: mask, Pos: pos}
	}
	return nil
}
