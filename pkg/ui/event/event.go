// Package event defines the terminal input events backends can report.
package event

import "github.com/odvcencio/tessera/pkg/ui/geometry"

// Event represents a terminal input event.
type Event interface {
	eventMarker()
}

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// ModNone means no modifier was held.
const ModNone Modifiers = 0

// Contains reports whether every modifier in o is held.
func (m Modifiers) Contains(o Modifiers) bool {
	return m&o == o
}

// KeyEvent represents a key press.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mods Modifiers
}

func (KeyEvent) eventMarker() {}

// IsRune reports whether the event is the printable key r with no
// modifier other than shift.
func (e KeyEvent) IsRune(r rune) bool {
	return e.Key == KeyRune && e.Rune == r && e.Mods&^ModShift == 0
}

// IsCtrl reports whether the event is ctrl plus the letter r.
func (e KeyEvent) IsCtrl(r rune) bool {
	return e.Key == KeyRune && e.Rune == r && e.Mods.Contains(ModCtrl)
}

// ResizeEvent indicates the terminal size changed.
type ResizeEvent struct {
	Width  uint16
	Height uint16
}

func (ResizeEvent) eventMarker() {}

// Area returns the new drawable area, anchored at the origin.
func (e ResizeEvent) Area() geometry.Rect {
	return geometry.NewRect(0, 0, e.Width, e.Height)
}

// MouseEvent represents a mouse input event.
type MouseEvent struct {
	X, Y   uint16
	Button MouseButton
	Action MouseAction
	Mods   Modifiers
}

func (MouseEvent) eventMarker() {}

// Position returns the cell the event happened over.
func (e MouseEvent) Position() geometry.Position {
	return geometry.NewPosition(e.X, e.Y)
}

// IsClick reports whether the event is a button press. Wheel motion is
// not a click.
func (e MouseEvent) IsClick() bool {
	return e.Action == MousePress && e.Button.IsButton()
}

// IsClickAt reports whether the event is a click on cell (x, y).
func (e MouseEvent) IsClickAt(x, y uint16) bool {
	return e.IsClick() && e.X == x && e.Y == y
}

// IsClickIn reports whether the event is a click inside area.
func (e MouseEvent) IsClickIn(area geometry.Rect) bool {
	return e.IsClick() && area.Contains(e.Position())
}

// PasteEvent carries bracketed paste content.
type PasteEvent struct {
	Text string
}

func (PasteEvent) eventMarker() {}

// MouseButton identifies which mouse button or wheel direction was involved.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
	MouseWheelLeft
	MouseWheelRight
)

// IsButton reports whether b is a physical button rather than a wheel.
func (b MouseButton) IsButton() bool {
	return b == MouseLeft || b == MouseMiddle || b == MouseRight
}

// MouseAction identifies what happened with the mouse.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseDrag
	MouseMove
	MouseScroll
)

func (a MouseAction) String() string {
	switch a {
	case MousePress:
		return "press"
	case MouseRelease:
		return "release"
	case MouseDrag:
		return "drag"
	case MouseMove:
		return "move"
	case MouseScroll:
		return "scroll"
	}
	return "unknown"
}

// Key represents special keys.
type Key int

const (
	KeyNone Key = iota
	KeyRune     // Printable character, see KeyEvent.Rune
	KeyEnter
	KeyBackspace
	KeyTab
	KeyBackTab
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyInsert
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)
