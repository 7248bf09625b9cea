package widgets

import (
	"github.com/odvcencio/tessera/pkg/ui/buffer"
	"github.com/odvcencio/tessera/pkg/ui/geometry"
	"github.com/odvcencio/tessera/pkg/ui/style"
	"github.com/odvcencio/tessera/pkg/ui/text"
)

// Text draws a single styled line on the first row of its area,
// truncated with an ellipsis when it does not fit.
type Text struct {
	Content string
	Style   style.Style
	Align   geometry.Alignment
}

// NewText returns an unstyled line of text.
func NewText(s string) Text {
	return Text{Content: s}
}

// Render draws the line.
func (t Text) Render(area geometry.Rect, buf *buffer.Buffer) {
	area = area.Intersection(buf.Area())
	if area.IsEmpty() {
		return
	}
	line := text.Truncate(t.Content, int(area.Width))
	x := area.X + t.Align.Offset(area.Width, uint16(text.Width(line)))
	buf.SetStringN(x, area.Y, line, int(area.Width), t.Style)
}
