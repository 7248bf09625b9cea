// Package ansi provides a Backend that writes ANSI escape sequences to an
// io.Writer. Output is buffered until Flush. When attached to a terminal
// file descriptor it also manages raw mode and reads the window size.
package ansi

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/odvcencio/tessera/pkg/errors"
	"github.com/odvcencio/tessera/pkg/ui/backend"
	"github.com/odvcencio/tessera/pkg/ui/buffer"
	"github.com/odvcencio/tessera/pkg/ui/geometry"
	"github.com/odvcencio/tessera/pkg/ui/style"
)

// Backend implements backend.Backend over an ANSI-capable writer.
type Backend struct {
	out     *bufio.Writer
	profile termenv.Profile

	inFd  int
	outFd int
	saved *term.State

	fixed     geometry.Rect
	fixedSize bool

	cursor    geometry.Position
	lastStyle style.Style
	styleSet  bool
	lastX     int
	lastY     int
	posSet    bool
}

// Option configures a Backend.
type Option func(*Backend)

// WithProfile sets the color profile used to downsample styles.
// The default is termenv.TrueColor.
func WithProfile(p termenv.Profile) Option {
	return func(b *Backend) {
		b.profile = p
	}
}

// WithTTY attaches terminal files used for raw mode (in) and size (out).
func WithTTY(in, out *os.File) Option {
	return func(b *Backend) {
		b.inFd = int(in.Fd())
		b.outFd = int(out.Fd())
	}
}

// WithFixedSize reports a constant size instead of querying the terminal.
func WithFixedSize(width, height uint16) Option {
	return func(b *Backend) {
		b.fixed = geometry.NewRect(0, 0, width, height)
		b.fixedSize = true
	}
}

// New creates a backend writing to w.
func New(w io.Writer, opts ...Option) *Backend {
	b := &Backend{
		out:     bufio.NewWriterSize(w, 32*1024),
		profile: termenv.TrueColor,
		inFd:    -1,
		outFd:   -1,
		lastX:   -1,
		lastY:   -1,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewStdio creates a backend on the process's standard streams.
func NewStdio(profile termenv.Profile) *Backend {
	return New(os.Stdout, WithProfile(profile), WithTTY(os.Stdin, os.Stdout))
}

func (b *Backend) write(s string) error {
	if _, err := b.out.WriteString(s); err != nil {
		return ioError(err, "writing terminal output")
	}
	return nil
}

func ioError(err error, msg string) error {
	return errors.Wrap(err, errors.ErrCodeBackendIO, msg).WithRetryable(false)
}

// moveTo positions the cursor, skipping the sequence for sequential writes.
func (b *Backend) moveTo(x, y int) error {
	if b.posSet && b.lastY == y && b.lastX == x {
		return nil
	}
	if b.posSet && b.lastY == y {
		if delta := x - b.lastX; delta > 0 && delta < 5 {
			b.lastX = x
			return b.write(CursorForward(delta))
		}
	}
	b.lastX, b.lastY, b.posSet = x, y, true
	return b.write(CursorTo(x, y))
}

func (b *Backend) applyStyle(s style.Style) error {
	s = s.Downsample(b.profile)
	if b.styleSet && b.lastStyle == s {
		return nil
	}
	b.lastStyle, b.styleSet = s, true
	return b.write(SGR(s))
}

// Size returns the fixed size or the size of the attached terminal.
func (b *Backend) Size() (geometry.Rect, error) {
	if b.fixedSize {
		return b.fixed, nil
	}
	if b.outFd < 0 {
		return geometry.Rect{}, errors.New(errors.ErrCodeBackendUnsupported, "terminal size unavailable without a tty")
	}
	w, h, err := term.GetSize(b.outFd)
	if err != nil {
		return geometry.Rect{}, ioError(err, "reading terminal size")
	}
	return geometry.NewRect(0, 0, clampDim(w), clampDim(h)), nil
}

// Clear clears the screen and homes the cursor.
func (b *Backend) Clear() error {
	b.posSet = false
	b.styleSet = false
	return b.write(Reset + ClearScreen + CursorHome)
}

// ClearRegion overwrites the cells inside r with blanks.
func (b *Backend) ClearRegion(r geometry.Rect) error {
	if r.IsEmpty() {
		return nil
	}
	if err := b.applyStyle(style.New()); err != nil {
		return err
	}
	blank := strings.Repeat(" ", int(r.Width))
	for y := r.Y; y < r.Bottom(); y++ {
		if err := b.moveTo(int(r.X), int(y)); err != nil {
			return err
		}
		if err := b.write(blank); err != nil {
			return err
		}
		b.lastX += int(r.Width)
	}
	return nil
}

// HideCursor hides the cursor.
func (b *Backend) HideCursor() error {
	return b.write(CursorHide)
}

// ShowCursor shows the cursor.
func (b *Backend) ShowCursor() error {
	return b.write(CursorShow)
}

// GetCursor returns the last position passed to SetCursor.
func (b *Backend) GetCursor() (geometry.Position, error) {
	return b.cursor, nil
}

// SetCursor moves the cursor.
func (b *Backend) SetCursor(x, y uint16) error {
	b.cursor = geometry.NewPosition(x, y)
	b.posSet = false
	return b.moveTo(int(x), int(y))
}

// DrawCell writes one cell. Continuation cells of wide glyphs are skipped.
func (b *Backend) DrawCell(x, y uint16, cell buffer.Cell) error {
	if cell.Skip {
		return nil
	}
	if err := b.moveTo(int(x), int(y)); err != nil {
		return err
	}
	if err := b.applyStyle(cell.Style); err != nil {
		return err
	}
	if err := b.write(cell.Symbol); err != nil {
		return err
	}
	b.lastX += cell.Width()
	return nil
}

// SetStyle sets the style for subsequent output.
func (b *Backend) SetStyle(s style.Style) error {
	return b.applyStyle(s)
}

// ResetStyle restores the default style.
func (b *Backend) ResetStyle() error {
	b.styleSet = false
	return b.write(Reset)
}

// Flush writes buffered output.
func (b *Backend) Flush() error {
	if err := b.out.Flush(); err != nil {
		return ioError(err, "flushing terminal output")
	}
	return nil
}

// EnableRawMode puts the attached terminal into raw mode. Without a tty it
// does nothing.
func (b *Backend) EnableRawMode() error {
	if b.inFd < 0 || b.saved != nil {
		return nil
	}
	state, err := term.MakeRaw(b.inFd)
	if err != nil {
		return ioError(err, "enabling raw mode")
	}
	b.saved = state
	return nil
}

// DisableRawMode restores the terminal state saved by EnableRawMode.
func (b *Backend) DisableRawMode() error {
	if b.saved == nil {
		return nil
	}
	state := b.saved
	b.saved = nil
	if err := term.Restore(b.inFd, state); err != nil {
		return ioError(err, "restoring terminal mode")
	}
	return nil
}

// EnterAlternateScreen switches to the alternate screen buffer.
func (b *Backend) EnterAlternateScreen() error {
	b.posSet = false
	return b.write(AltScreen)
}

// LeaveAlternateScreen returns to the main screen buffer.
func (b *Backend) LeaveAlternateScreen() error {
	b.posSet = false
	return b.write(MainScreen)
}

func clampDim(n int) uint16 {
	if n < 0 {
		return 0
	}
	if n > 0xFFFF {
		return 0xFFFF
	}
	return uint16(n)
}

// Ensure Backend implements backend.Backend
var _ backend.Backend = (*Backend)(nil)
