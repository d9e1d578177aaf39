package core

// Key identifies a pressed key, abstracted from the terminal backend.
// Only keys the viewer reacts to get an identifier; everything else maps
// to KeyNone and is ignored.
type Key int

const (
	KeyNone Key = iota
	KeySpace
	KeyLeft
	KeyRight
	KeyComma
	KeyPeriod
	KeyMinus
	KeyEquals
	KeyQuit
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeySpace:
		return "Space"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyComma:
		return "Comma"
	case KeyPeriod:
		return "Period"
	case KeyMinus:
		return "Minus"
	case KeyEquals:
		return "Equals"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerButton identifies a pointer button.
type PointerButton int

const (
	ButtonNone PointerButton = iota
	ButtonLeft
	ButtonRight
)

// ButtonMask is a set of pointer buttons held during a motion event.
type ButtonMask uint8

const (
	MaskLeft ButtonMask = 1 << iota
	MaskRight
)

// Has returns true if the given button bit is set.
func (m ButtonMask) Has(b ButtonMask) bool {
	return m&b != 0
}

// Event is a raw input event delivered by the platform backend.
// It is a closed union: Quit, KeyDown, PointerDown and PointerMove are the
// only variants, and the router matches over all of them.
type Event interface {
	isEvent()
}

// QuitEvent signals that the user closed the window or session.
type QuitEvent struct{}

// KeyDownEvent carries a single key press.
type KeyDownEvent struct {
	Key Key
}

// PointerDownEvent carries a pointer button press at a frame position.
type PointerDownEvent struct {
	Button PointerButton
	Pos    Point
}

// PointerMoveEvent carries pointer motion with the buttons currently held.
type PointerMoveEvent struct {
	Buttons ButtonMask
	Pos     Point
}

func (QuitEvent) isEvent()        {}
func (KeyDownEvent) isEvent()     {}
func (PointerDownEvent) isEvent() {}
func (PointerMoveEvent) isEvent() {}
