// Package tcell provides a Backend implementation using tcell.
//
// tcell owns raw mode and the alternate screen together: Screen.Init enters
// both and Screen.Fini leaves both. The backend therefore initializes the
// screen on the first call that needs it and finalizes it on the first call
// that leaves either mode. Fini also restores the cursor, so showing the
// cursor and flushing after finalization succeed without doing anything.
package tcell

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/tessera/pkg/errors"
	"github.com/odvcencio/tessera/pkg/ui/backend"
	"github.com/odvcencio/tessera/pkg/ui/buffer"
	"github.com/odvcencio/tessera/pkg/ui/event"
	"github.com/odvcencio/tessera/pkg/ui/geometry"
	"github.com/odvcencio/tessera/pkg/ui/style"
)

// Backend implements backend.Backend using tcell.
type Backend struct {
	screen tcell.Screen

	started  bool
	finished bool

	cursor        geometry.Position
	cursorVisible bool

	mouse       bool
	mouseMotion bool

	// Input state, owned by the PollEvent goroutine.
	inPaste bool
	paste   strings.Builder
	held    event.MouseButton
}

// Option configures a Backend.
type Option func(*Backend)

// WithMouse turns on mouse reporting. Plain pointer motion without a held
// button is only reported when motion is true.
func WithMouse(motion bool) Option {
	return func(b *Backend) {
		b.mouse = true
		b.mouseMotion = motion
	}
}

// New creates a new tcell backend for the controlling terminal.
func New(opts ...Option) (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeBackendUnsupported, "opening terminal screen")
	}
	return NewWithScreen(screen, opts...), nil
}

// NewWithScreen creates a backend with an existing tcell screen (for testing).
func NewWithScreen(screen tcell.Screen, opts ...Option) *Backend {
	b := &Backend{screen: screen, cursorVisible: true}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ready initializes the screen on first use.
func (b *Backend) ready() error {
	if b.finished {
		return errors.New(errors.ErrCodeInvalidState, "tcell screen already finalized")
	}
	if b.started {
		return nil
	}
	if err := b.screen.Init(); err != nil {
		return errors.Wrap(err, errors.ErrCodeBackendIO, "initializing tcell screen")
	}
	b.screen.EnablePaste()
	if b.mouse {
		b.screen.EnableMouse()
	}
	b.started = true
	return nil
}

func (b *Backend) finish() error {
	if b.started && !b.finished {
		b.screen.Fini()
	}
	b.finished = true
	return nil
}

// Size returns the terminal dimensions.
func (b *Backend) Size() (geometry.Rect, error) {
	if err := b.ready(); err != nil {
		return geometry.Rect{}, err
	}
	w, h := b.screen.Size()
	return geometry.NewRect(0, 0, clampDim(w), clampDim(h)), nil
}

// Clear clears the screen.
func (b *Backend) Clear() error {
	if err := b.ready(); err != nil {
		return err
	}
	b.screen.Clear()
	return nil
}

// ClearRegion blanks the cells inside r.
func (b *Backend) ClearRegion(r geometry.Rect) error {
	if err := b.ready(); err != nil {
		return err
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			b.screen.SetContent(int(x), int(y), ' ', nil, tcell.StyleDefault)
		}
	}
	return nil
}

// HideCursor hides the cursor.
func (b *Backend) HideCursor() error {
	if err := b.ready(); err != nil {
		return err
	}
	b.screen.HideCursor()
	b.cursorVisible = false
	return nil
}

// ShowCursor shows the cursor at its last position.
func (b *Backend) ShowCursor() error {
	if b.finished {
		b.cursorVisible = true
		return nil
	}
	if err := b.ready(); err != nil {
		return err
	}
	b.screen.ShowCursor(int(b.cursor.X), int(b.cursor.Y))
	b.cursorVisible = true
	return nil
}

// GetCursor returns the last cursor position set through the backend;
// tcell does not query the terminal for it.
func (b *Backend) GetCursor() (geometry.Position, error) {
	if err := b.ready(); err != nil {
		return geometry.Position{}, err
	}
	return b.cursor, nil
}

// SetCursor moves the cursor. A hidden cursor stays hidden.
func (b *Backend) SetCursor(x, y uint16) error {
	if err := b.ready(); err != nil {
		return err
	}
	b.cursor = geometry.NewPosition(x, y)
	if b.cursorVisible {
		b.screen.ShowCursor(int(x), int(y))
	}
	return nil
}

// DrawCell sets a cell. Continuation cells of wide glyphs are skipped;
// tcell tracks glyph width itself. Hidden cells are drawn as blanks over
// every column the glyph covers, since the terminal's default background
// cannot be matched by a foreground color.
func (b *Backend) DrawCell(x, y uint16, cell buffer.Cell) error {
	if err := b.ready(); err != nil {
		return err
	}
	if cell.Skip {
		return nil
	}
	ts := convertStyle(cell.Style)
	if cell.Style.Modifiers().Contains(style.Hidden) {
		for i := 0; i < max(1, cell.Width()); i++ {
			b.screen.SetContent(int(x)+i, int(y), ' ', nil, ts)
		}
		return nil
	}
	mainc, comb := ' ', []rune(nil)
	if runes := []rune(cell.Symbol); len(runes) > 0 {
		mainc, comb = runes[0], runes[1:]
	}
	b.screen.SetContent(int(x), int(y), mainc, comb, ts)
	return nil
}

// SetStyle sets the style tcell uses for cleared cells.
func (b *Backend) SetStyle(s style.Style) error {
	if err := b.ready(); err != nil {
		return err
	}
	b.screen.SetStyle(convertStyle(s))
	return nil
}

// ResetStyle restores the default clear style.
func (b *Backend) ResetStyle() error {
	if err := b.ready(); err != nil {
		return err
	}
	b.screen.SetStyle(tcell.StyleDefault)
	return nil
}

// Flush synchronizes the buffer to the terminal.
func (b *Backend) Flush() error {
	if b.finished {
		return nil
	}
	if err := b.ready(); err != nil {
		return err
	}
	b.screen.Show()
	return nil
}

// EnableRawMode initializes the screen.
func (b *Backend) EnableRawMode() error {
	return b.ready()
}

// DisableRawMode finalizes the screen, restoring the terminal.
func (b *Backend) DisableRawMode() error {
	return b.finish()
}

// EnterAlternateScreen initializes the screen.
func (b *Backend) EnterAlternateScreen() error {
	return b.ready()
}

// LeaveAlternateScreen finalizes the screen, restoring the terminal.
func (b *Backend) LeaveAlternateScreen() error {
	return b.finish()
}

// convertStyle converts style.Style to tcell.Style.
func convertStyle(s style.Style) tcell.Style {
	fg, bg, mods := s.Decompose()
	ts := tcell.StyleDefault.
		Foreground(convertColor(fg)).
		Background(convertColor(bg))

	if mods.Contains(style.Bold) {
		ts = ts.Bold(true)
	}
	if mods.Contains(style.Dim) {
		ts = ts.Dim(true)
	}
	if mods.Contains(style.Italic) {
		ts = ts.Italic(true)
	}
	if mods.Contains(style.Underlined) {
		ts = ts.Underline(true)
	}
	if mods&(style.SlowBlink|style.RapidBlink) != 0 {
		ts = ts.Blink(true)
	}
	if mods.Contains(style.Reversed) {
		ts = ts.Reverse(true)
	}
	if mods.Contains(style.CrossedOut) {
		ts = ts.StrikeThrough(true)
	}
	if mods.Contains(style.Hidden) {
		ts = ts.Foreground(convertColor(bg))
	}

	return ts
}

// convertColor converts style.Color to tcell.Color.
func convertColor(c style.Color) tcell.Color {
	if c.IsRGB() {
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	if idx, ok := c.Index(); ok {
		return tcell.PaletteColor(int(idx))
	}
	return tcell.ColorDefault
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
