// Package backend defines the terminal capability interface the renderer
// drives. This abstraction allows swapping between tcell (real terminals),
// a plain ANSI writer, and the in-memory simulation backend used in tests.
package backend

import (
	"github.com/odvcencio/tessera/pkg/ui/buffer"
	"github.com/odvcencio/tessera/pkg/ui/event"
	"github.com/odvcencio/tessera/pkg/ui/geometry"
	"github.com/odvcencio/tessera/pkg/ui/style"
)

//go:generate mockgen -package=terminal -destination=../terminal/mock_backend_test.go github.com/odvcencio/tessera/pkg/ui/backend Backend

// Backend is the terminal abstraction layer.
// Every method may fail with an implementation-specific error.
type Backend interface {
	// Size returns the drawable area, anchored at the origin.
	Size() (geometry.Rect, error)

	// Clear blanks the whole screen.
	Clear() error

	// ClearRegion blanks the cells inside r.
	ClearRegion(r geometry.Rect) error

	// HideCursor hides the terminal cursor.
	HideCursor() error

	// ShowCursor shows the terminal cursor.
	ShowCursor() error

	// GetCursor returns the cursor position.
	GetCursor() (geometry.Position, error)

	// SetCursor moves the cursor.
	SetCursor(x, y uint16) error

	// DrawCell writes one cell. Output may be buffered until Flush.
	DrawCell(x, y uint16, cell buffer.Cell) error

	// SetStyle sets the style used by subsequent raw output.
	SetStyle(s style.Style) error

	// ResetStyle restores the default style.
	ResetStyle() error

	// Flush pushes buffered output to the terminal.
	Flush() error

	// EnableRawMode switches input to unbuffered, unechoed mode.
	EnableRawMode() error

	// DisableRawMode restores the input mode saved by EnableRawMode.
	DisableRawMode() error

	// EnterAlternateScreen switches to the alternate screen buffer.
	EnterAlternateScreen() error

	// LeaveAlternateScreen returns to the main screen buffer.
	LeaveAlternateScreen() error
}

// EventSource is implemented by backends that can read terminal input.
// It is separate from Backend so output-only drivers stay valid.
type EventSource interface {
	// PollEvent blocks until an event is available and returns it. It
	// returns nil once the source is closed.
	PollEvent() event.Event

	// PostEvent injects an event into the event queue.
	PostEvent(ev event.Event) error
}
