package terminal

import (
	"github.com/odvcencio/tessera/pkg/ui/buffer"
	"github.com/odvcencio/tessera/pkg/ui/geometry"
	"github.com/odvcencio/tessera/pkg/ui/style"
)

// Frame is the drawing surface handed to a render callback. It is only
// valid during the callback.
type Frame struct {
	buf   *buffer.Buffer
	area  geometry.Rect
	count uint64
}

// Area returns the full drawable area.
func (f *Frame) Area() geometry.Rect {
	return f.area
}

// Buffer returns the buffer being drawn.
func (f *Frame) Buffer() *buffer.Buffer {
	return f.buf
}

// Count returns the index of this frame, starting at zero.
func (f *Frame) Count() uint64 {
	return f.count
}

// RenderWidget draws w into area.
func (f *Frame) RenderWidget(w Widget, area geometry.Rect) {
	w.Render(area, f.buf)
}

// SetString writes text at (x, y) and returns the column after it.
func (f *Frame) SetString(x, y uint16, text string, st style.Style) uint16 {
	return f.buf.SetString(x, y, text, st)
}

// RenderStatefulWidget draws w into area with state. It is a function
// rather than a method because methods cannot take type parameters.
func RenderStatefulWidget[S any](f *Frame, w StatefulWidget[S], area geometry.Rect, state S) {
	w.Render(area, f.buf, state)
}

// CompletedFrame is a snapshot of a frame after it reached the backend.
type CompletedFrame struct {
	Buffer *buffer.Buffer
	Area   geometry.Rect
	Count  uint64
}
