// Package sim provides an in-memory backend for testing. It renders into a
// buffer instead of a terminal and records every call, so tests can assert
// both on what ended up on screen and on the order of terminal operations.
package sim

import (
	"strings"
	"sync"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"

	"github.com/odvcencio/tessera/pkg/ui/backend"
	"github.com/odvcencio/tessera/pkg/ui/buffer"
	"github.com/odvcencio/tessera/pkg/ui/event"
	"github.com/odvcencio/tessera/pkg/ui/geometry"
	"github.com/odvcencio/tessera/pkg/ui/style"
)

// Op names a backend operation in the call log.
type Op string

// Backend operations
const (
	OpSize                 Op = "size"
	OpClear                Op = "clear"
	OpClearRegion          Op = "clear_region"
	OpHideCursor           Op = "hide_cursor"
	OpShowCursor           Op = "show_cursor"
	OpGetCursor            Op = "get_cursor"
	OpSetCursor            Op = "set_cursor"
	OpDrawCell             Op = "draw_cell"
	OpSetStyle             Op = "set_style"
	OpResetStyle           Op = "reset_style"
	OpFlush                Op = "flush"
	OpEnableRawMode        Op = "enable_raw_mode"
	OpDisableRawMode       Op = "disable_raw_mode"
	OpEnterAlternateScreen Op = "enter_alternate_screen"
	OpLeaveAlternateScreen Op = "leave_alternate_screen"
)

// Backend is a backend.Backend that draws into a buffer.
type Backend struct {
	mu sync.Mutex

	buf           *buffer.Buffer
	style         style.Style
	cursor        geometry.Position
	cursorVisible bool
	rawMode       bool
	altScreen     bool
	flushes       int

	calls    []Op
	failures map[Op]error
	events   []event.Event
}

// New creates a simulation backend with the given dimensions.
func New(width, height uint16) *Backend {
	return &Backend{
		buf:           buffer.New(geometry.NewRect(0, 0, width, height)),
		cursorVisible: true,
		failures:      make(map[Op]error),
	}
}

// FailOn makes every later call of op return err. A nil err clears it.
func (s *Backend) FailOn(op Op, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// record logs op and returns the injected failure for it, if any.
// Callers hold s.mu.
func (s *Backend) record(op Op) error {
	s.calls = append(s.calls, op)
	return s.failures[op]
}

// Size returns the simulated screen area.
func (s *Backend) Size() (geometry.Rect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(OpSize); err != nil {
		return geometry.Rect{}, err
	}
	return s.buf.Area(), nil
}

// Clear blanks the screen.
func (s *Backend) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(OpClear); err != nil {
		return err
	}
	s.buf.Clear()
	return nil
}

// ClearRegion blanks the cells inside r.
func (s *Backend) ClearRegion(r geometry.Rect) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(OpClearRegion); err != nil {
		return err
	}
	s.buf.ClearRegion(r)
	return nil
}

// HideCursor hides the cursor.
func (s *Backend) HideCursor() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(OpHideCursor); err != nil {
		return err
	}
	s.cursorVisible = false
	return nil
}

// ShowCursor shows the cursor.
func (s *Backend) ShowCursor() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(OpShowCursor); err != nil {
		return err
	}
	s.cursorVisible = true
	return nil
}

// GetCursor returns the cursor position.
func (s *Backend) GetCursor() (geometry.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(OpGetCursor); err != nil {
		return geometry.Position{}, err
	}
	return s.cursor, nil
}

// SetCursor moves the cursor.
func (s *Backend) SetCursor(x, y uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(OpSetCursor); err != nil {
		return err
	}
	s.cursor = geometry.NewPosition(x, y)
	return nil
}

// DrawCell writes a cell into the simulated screen.
func (s *Backend) DrawCell(x, y uint16, cell buffer.Cell) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(OpDrawCell); err != nil {
		return err
	}
	s.buf.SetCell(x, y, cell)
	return nil
}

// SetStyle records the current style.
func (s *Backend) SetStyle(st style.Style) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(OpSetStyle); err != nil {
		return err
	}
	s.style = st
	return nil
}

// ResetStyle restores the default style.
func (s *Backend) ResetStyle() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(OpResetStyle); err != nil {
		return err
	}
	s.style = style.New()
	return nil
}

// Flush counts a flush; drawing is immediate.
func (s *Backend) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(OpFlush); err != nil {
		return err
	}
	s.flushes++
	return nil
}

// EnableRawMode records raw mode as on.
func (s *Backend) EnableRawMode() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(OpEnableRawMode); err != nil {
		return err
	}
	s.rawMode = true
	return nil
}

// DisableRawMode records raw mode as off.
func (s *Backend) DisableRawMode() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(OpDisableRawMode); err != nil {
		return err
	}
	s.rawMode = false
	return nil
}

// EnterAlternateScreen records the alternate screen as active.
func (s *Backend) EnterAlternateScreen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(OpEnterAlternateScreen); err != nil {
		return err
	}
	s.altScreen = true
	return nil
}

// LeaveAlternateScreen records the main screen as active.
func (s *Backend) LeaveAlternateScreen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(OpLeaveAlternateScreen); err != nil {
		return err
	}
	s.altScreen = false
	return nil
}

// Resize changes the simulated screen size, keeping overlapping content,
// and queues a ResizeEvent.
func (s *Backend) Resize(width, height uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.Resize(geometry.NewRect(0, 0, width, height))
	s.events = append(s.events, event.ResizeEvent{Width: width, Height: height})
}

// PollEvent returns the oldest queued event, or nil when the queue is
// empty. Unlike a real terminal it never blocks.
func (s *Backend) PollEvent() event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

// PostEvent queues ev for PollEvent.
func (s *Backend) PostEvent(ev event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

// Buffer returns a copy of the simulated screen.
func (s *Backend) Buffer() *buffer.Buffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Clone()
}

// Calls returns the operations issued so far, in order.
func (s *Backend) Calls() []Op {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Op(nil), s.calls...)
}

// ResetCalls clears the call log.
func (s *Backend) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

// CountCalls returns how many times op was issued.
func (s *Backend) CountCalls(op Op) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if c == op {
			n++
		}
	}
	return n
}

// CursorVisible reports whether the cursor is shown.
func (s *Backend) CursorVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursorVisible
}

// CursorPosition returns the cursor position without logging a call.
func (s *Backend) CursorPosition() geometry.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// RawMode reports whether raw mode is on.
func (s *Backend) RawMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rawMode
}

// AlternateScreen reports whether the alternate screen is active.
func (s *Backend) AlternateScreen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.altScreen
}

// FlushCount returns the number of successful flushes.
func (s *Backend) FlushCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushes
}

// Capture returns the screen content, one line per row.
func (s *Backend) Capture() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// CaptureCell returns the cell at (x, y).
func (s *Backend) CaptureCell(x, y uint16) (buffer.Cell, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Get(x, y)
}

// CaptureRegion returns the content of a rectangular region.
func (s *Backend) CaptureRegion(x, y, w, h uint16) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	region := geometry.NewRect(x, y, w, h).Intersection(s.buf.Area())
	var lines []string
	for row := region.Y; row < region.Bottom(); row++ {
		var line strings.Builder
		for col := region.X; col < region.Right(); col++ {
			c, _ := s.buf.Get(col, row)
			if !c.Skip {
				line.WriteString(c.Symbol)
			}
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// FindText returns the column and row where text first appears, or -1, -1.
func (s *Backend) FindText(text string) (x, y int) {
	lines := strings.Split(s.Capture(), "\n")
	for row, line := range lines {
		if idx := strings.Index(line, text); idx >= 0 {
			return runewidth.StringWidth(line[:idx]), row
		}
	}
	return -1, -1
}

// ContainsText returns true if the text appears anywhere on screen.
func (s *Backend) ContainsText(text string) bool {
	x, y := s.FindText(text)
	return x >= 0 && y >= 0
}

// AssertBuffer fails the test if the screen differs from want.
func (s *Backend) AssertBuffer(t testing.TB, want *buffer.Buffer) {
	t.Helper()
	got := s.Buffer()
	if !assert.Equal(t, want.String(), got.String(), "screen text") {
		return
	}
	assert.Equal(t, want.Area(), got.Area(), "screen area")
	assert.Equal(t, want.Content(), got.Content(), "screen cells")
}

// Ensure Backend implements backend.Backend
var (
	_ backend.Backend     = (*Backend)(nil)
	_ backend.EventSource = (*Backend)(nil)
)
