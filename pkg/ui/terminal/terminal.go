// Package terminal drives a Backend with double-buffered, diff-based
// rendering. A Terminal owns the terminal modes between New and Close:
// it enters the alternate screen, hides the cursor and enables raw mode on
// entry, and restores all of them exactly once on teardown.
//
// Each Draw renders into the back buffer, sends only the cells that differ
// from the front buffer, flushes, and swaps. A Terminal is not safe for
// concurrent use.
package terminal

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/odvcencio/tessera/pkg/errors"
	"github.com/odvcencio/tessera/pkg/logging"
	"github.com/odvcencio/tessera/pkg/telemetry"
	"github.com/odvcencio/tessera/pkg/ui/backend"
	"github.com/odvcencio/tessera/pkg/ui/buffer"
	"github.com/odvcencio/tessera/pkg/ui/geometry"
)

type state int

const (
	stateUninitialized state = iota
	stateReady
	stateTornDown
)

func (s state) String() string {
	switch s {
	case stateUninitialized:
		return "uninitialized"
	case stateReady:
		return "ready"
	case stateTornDown:
		return "torn_down"
	}
	return "unknown"
}

// Terminal renders frames to a backend.
type Terminal struct {
	backend backend.Backend
	opts    Options
	logger  *slog.Logger
	metrics *telemetry.Metrics
	tracer  trace.Tracer

	buffers [2]*buffer.Buffer
	current int
	area    geometry.Rect
	frames  uint64

	cursorHidden bool
	// stale is set when a draw failed after output may have reached the
	// backend; the next draw repaints everything.
	stale bool

	state     state
	closeOnce sync.Once
}

// New enters the terminal: it queries the size, enters the alternate screen
// and hides the cursor when configured, enables raw mode, clears and
// flushes. The first backend error aborts entry and is returned unmodified;
// steps already taken are not undone.
func New(b backend.Backend, opts ...Option) (*Terminal, error) {
	t := &Terminal{
		backend: b,
		opts:    DefaultOptions(),
		logger:  logging.Nop(),
		tracer:  noop.NewTracerProvider().Tracer(""),
	}
	for _, opt := range opts {
		opt(t)
	}

	area, err := b.Size()
	if err != nil {
		return nil, err
	}
	if t.opts.AlternateScreen {
		if err := b.EnterAlternateScreen(); err != nil {
			return nil, err
		}
	}
	if t.opts.HideCursor {
		if err := b.HideCursor(); err != nil {
			return nil, err
		}
		t.cursorHidden = true
	}
	if err := b.EnableRawMode(); err != nil {
		return nil, err
	}
	if err := b.Clear(); err != nil {
		return nil, err
	}
	if err := b.Flush(); err != nil {
		return nil, err
	}

	t.buffers = [2]*buffer.Buffer{buffer.New(area), buffer.New(area)}
	t.area = area
	t.state = stateReady

	t.logger.Info("terminal ready",
		slog.Int("width", int(area.Width)),
		slog.Int("height", int(area.Height)),
		slog.Bool("alternate_screen", t.opts.AlternateScreen),
		slog.Bool("hide_cursor", t.opts.HideCursor),
	)
	return t, nil
}

// Run creates a Terminal, calls fn with it and tears the terminal down
// afterwards, including when fn panics. It returns fn's error.
func Run(b backend.Backend, opts []Option, fn func(*Terminal) error) error {
	t, err := New(b, opts...)
	if err != nil {
		return err
	}
	defer t.Close()
	return fn(t)
}

// Draw renders one frame. See DrawContext.
func (t *Terminal) Draw(render func(*Frame)) error {
	_, err := t.DrawFrame(context.Background(), render)
	return err
}

// DrawContext renders one frame, tracing it under ctx.
func (t *Terminal) DrawContext(ctx context.Context, render func(*Frame)) error {
	_, err := t.DrawFrame(ctx, render)
	return err
}

// DrawFrame renders one frame and returns a snapshot of it. The terminal
// picks up size changes first, then calls render on a cleared back buffer,
// sends the cells that changed, flushes and swaps the buffers. A backend
// error aborts the frame and is returned unmodified; the buffers are only
// swapped on success.
func (t *Terminal) DrawFrame(ctx context.Context, render func(*Frame)) (CompletedFrame, error) {
	if t.state != stateReady {
		return CompletedFrame{}, errors.New(errors.ErrCodeInvalidState, "terminal is not ready").
			WithContext("state", t.state.String())
	}

	_, span := t.tracer.Start(ctx, "terminal.draw",
		trace.WithAttributes(telemetry.AttrFrame.Int64(int64(t.frames))))
	defer span.End()

	changes, err := t.draw(render, span)
	if err != nil {
		t.metrics.ObserveDrawError()
		span.RecordError(err)
		span.SetStatus(codes.Error, "draw failed")
		t.logger.Error("draw failed",
			slog.Uint64("frame", t.frames),
			slog.String("error", err.Error()),
		)
		return CompletedFrame{}, err
	}

	done := CompletedFrame{
		Buffer: t.buffers[t.current].Clone(),
		Area:   t.area,
		Count:  t.frames,
	}
	t.frames++
	t.metrics.ObserveFrame(changes, t.area)
	span.SetAttributes(telemetry.AttrChanges.Int(changes))
	return done, nil
}

func (t *Terminal) draw(render func(*Frame), span trace.Span) (int, error) {
	resized, err := t.autoresize()
	if err != nil {
		return 0, err
	}
	if t.stale {
		if err := t.Clear(); err != nil {
			return 0, err
		}
		t.stale = false
	}
	span.SetAttributes(
		telemetry.AttrWidth.Int(int(t.area.Width)),
		telemetry.AttrHeight.Int(int(t.area.Height)),
		telemetry.AttrResized.Bool(resized),
	)

	next := t.buffers[1-t.current]
	next.Clear()
	render(&Frame{buf: next, area: t.area, count: t.frames})

	changes := buffer.Diff(t.buffers[t.current], next)
	for i, c := range changes {
		if err := t.backend.DrawCell(c.X, c.Y, c.Cell); err != nil {
			t.stale = t.stale || i > 0
			return 0, err
		}
	}
	if err := t.backend.Flush(); err != nil {
		t.stale = t.stale || len(changes) > 0
		return 0, err
	}

	t.current = 1 - t.current
	return len(changes), nil
}

// autoresize adopts a new backend size: the screen is cleared, then both
// buffers are resized and the front buffer is blanked to match it. Nothing
// else changes when the clear fails; the terminal is marked stale since the
// screen has already changed size under the front buffer.
func (t *Terminal) autoresize() (bool, error) {
	area, err := t.backend.Size()
	if err != nil {
		return false, err
	}
	if area == t.area && t.buffers[t.current].Area() == area {
		return false, nil
	}

	if err := t.backend.Clear(); err != nil {
		t.stale = true
		return false, err
	}
	for _, b := range t.buffers {
		b.Resize(area)
	}
	t.buffers[t.current].Clear()

	t.logger.Info("terminal resized",
		slog.String("from", t.area.String()),
		slog.String("to", area.String()),
	)
	t.metrics.ObserveResize()
	t.area = area
	return true, nil
}

// Close restores the terminal: it disables raw mode, leaves the alternate
// screen, shows the cursor if it was hidden and flushes. Every step is
// attempted; failures are logged and otherwise ignored. Only the first call
// has any effect.
func (t *Terminal) Close() error {
	t.closeOnce.Do(func() {
		_, span := t.tracer.Start(context.Background(), "terminal.close")
		defer span.End()

		t.teardownStep("disable raw mode", t.backend.DisableRawMode)
		t.teardownStep("leave alternate screen", t.backend.LeaveAlternateScreen)
		if t.cursorHidden {
			if t.teardownStep("show cursor", t.backend.ShowCursor) {
				t.cursorHidden = false
			}
		}
		t.teardownStep("flush", t.backend.Flush)

		t.state = stateTornDown
		t.logger.Info("terminal restored", slog.Uint64("frames", t.frames))
	})
	return nil
}

func (t *Terminal) teardownStep(name string, step func() error) bool {
	if err := step(); err != nil {
		t.logger.Warn("terminal teardown step failed",
			slog.String("step", name),
			slog.String("error", err.Error()),
		)
		return false
	}
	return true
}

// Clear clears the screen and blanks the front buffer so the next draw
// repaints every cell.
func (t *Terminal) Clear() error {
	if err := t.backend.Clear(); err != nil {
		return err
	}
	t.buffers[t.current].Clear()
	return nil
}

// HideCursor hides the cursor.
func (t *Terminal) HideCursor() error {
	if err := t.backend.HideCursor(); err != nil {
		return err
	}
	t.cursorHidden = true
	return nil
}

// ShowCursor shows the cursor.
func (t *Terminal) ShowCursor() error {
	if err := t.backend.ShowCursor(); err != nil {
		return err
	}
	t.cursorHidden = false
	return nil
}

// SetCursor moves the cursor.
func (t *Terminal) SetCursor(x, y uint16) error {
	return t.backend.SetCursor(x, y)
}

// GetCursor returns the cursor position.
func (t *Terminal) GetCursor() (geometry.Position, error) {
	return t.backend.GetCursor()
}

// Size queries the backend for its current size.
func (t *Terminal) Size() (geometry.Rect, error) {
	return t.backend.Size()
}

// Events returns the backend's input source. Backends that only produce
// output report BACKEND_UNSUPPORTED. The source may be polled from its own
// goroutine while frames are drawn.
func (t *Terminal) Events() (backend.EventSource, error) {
	src, ok := t.backend.(backend.EventSource)
	if !ok {
		return nil, errors.New(errors.ErrCodeBackendUnsupported, "backend does not read input")
	}
	return src, nil
}

// Area returns the area used by the last draw.
func (t *Terminal) Area() geometry.Rect {
	return t.area
}

// Options returns the options the terminal was entered with.
func (t *Terminal) Options() Options {
	return t.opts
}

// Backend returns the underlying backend.
func (t *Terminal) Backend() backend.Backend {
	return t.backend
}

// CurrentBuffer returns the front buffer, which mirrors the screen.
func (t *Terminal) CurrentBuffer() *buffer.Buffer {
	return t.buffers[t.current]
}

// FrameCount returns the number of frames drawn successfully.
func (t *Terminal) FrameCount() uint64 {
	return t.frames
}

// CursorHidden reports whether the terminal last hid the cursor.
func (t *Terminal) CursorHidden() bool {
	return t.cursorHidden
}
