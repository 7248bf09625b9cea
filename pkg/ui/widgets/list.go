package widgets

import (
	"github.com/odvcencio/tessera/pkg/ui/buffer"
	"github.com/odvcencio/tessera/pkg/ui/geometry"
	"github.com/odvcencio/tessera/pkg/ui/style"
	"github.com/odvcencio/tessera/pkg/ui/symbols"
	"github.com/odvcencio/tessera/pkg/ui/text"
	"github.com/odvcencio/tessera/pkg/ui/viewport"
)

// List draws one item per row and highlights the selection held in a
// viewport.ScrollState. The state is updated to the list's size on every
// render so the selection always stays visible.
type List struct {
	Items           []string
	Style           style.Style
	HighlightStyle  style.Style
	HighlightSymbol string
	Block           *Block
}

// NewList returns a list that marks the selection with an angle marker
// and reversed colors.
func NewList(items ...string) List {
	return List{
		Items:           items,
		HighlightStyle:  style.New().Reverse(true),
		HighlightSymbol: symbols.MarkerAngle + " ",
	}
}

// Render draws the visible items. A nil state draws from the top with
// nothing selected.
func (l List) Render(area geometry.Rect, buf *buffer.Buffer, state *viewport.ScrollState) {
	area = area.Intersection(buf.Area())
	if l.Block != nil {
		l.Block.Render(area, buf)
		area = l.Block.Inner(area)
	}
	if area.IsEmpty() {
		return
	}
	if state == nil {
		state = &viewport.ScrollState{}
	}
	state.SetContentLength(len(l.Items))
	state.SetViewportHeight(int(area.Height))
	buf.SetStyle(area, l.Style)

	selected, hasSelection := state.Selected()
	prefix := text.Width(l.HighlightSymbol)
	blank := text.Pad("", prefix, geometry.AlignStart)

	start, end := state.VisibleRange()
	for i := start; i < end; i++ {
		y := area.Y + uint16(i-start)
		row := geometry.NewRect(area.X, y, area.Width, 1)
		st := l.Style
		marker := blank
		if hasSelection && i == selected {
			st = st.Patch(l.HighlightStyle)
			marker = l.HighlightSymbol
			buf.SetStyle(row, l.HighlightStyle)
		}
		x := area.X
		if hasSelection {
			x = buf.SetStringN(x, y, marker, int(area.Width), st)
		}
		width := int(area.Right()) - int(x)
		buf.SetStringN(x, y, text.Truncate(l.Items[i], width), width, st)
	}
}
