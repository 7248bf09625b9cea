package terminal

import (
	"github.com/odvcencio/tessera/pkg/ui/buffer"
	"github.com/odvcencio/tessera/pkg/ui/geometry"
)

// Widget draws itself into a region of a buffer. Widgets are usually built
// per frame and discarded after rendering.
type Widget interface {
	Render(area geometry.Rect, buf *buffer.Buffer)
}

// WidgetFunc adapts a plain function to Widget.
type WidgetFunc func(area geometry.Rect, buf *buffer.Buffer)

// Render calls f.
func (f WidgetFunc) Render(area geometry.Rect, buf *buffer.Buffer) {
	f(area, buf)
}

// StatefulWidget is a widget whose rendering reads and updates state that
// outlives the frame, such as a scroll position.
type StatefulWidget[S any] interface {
	Render(area geometry.Rect, buf *buffer.Buffer, state S)
}
