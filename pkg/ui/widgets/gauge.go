package widgets

import (
	"fmt"

	"github.com/odvcencio/tessera/pkg/ui/buffer"
	"github.com/odvcencio/tessera/pkg/ui/geometry"
	"github.com/odvcencio/tessera/pkg/ui/style"
	"github.com/odvcencio/tessera/pkg/ui/symbols"
	"github.com/odvcencio/tessera/pkg/ui/text"
)

// Gauge draws a horizontal progress bar with eighth-cell resolution and a
// centered label.
type Gauge struct {
	// Ratio is clamped to [0, 1].
	Ratio      float64
	Label      string
	Style      style.Style
	GaugeStyle style.Style
	Block      *Block
}

// Render draws the gauge on every row of area.
func (g Gauge) Render(area geometry.Rect, buf *buffer.Buffer) {
	area = area.Intersection(buf.Area())
	if g.Block != nil {
		g.Block.Render(area, buf)
		area = g.Block.Inner(area)
	}
	if area.IsEmpty() {
		return
	}
	buf.SetStyle(area, g.Style)

	bar := symbols.Bar(g.Ratio, int(area.Width))
	fill := g.Style.Patch(g.GaugeStyle)
	for y := area.Y; y < area.Bottom(); y++ {
		for i, glyph := range bar {
			buf.Set(area.X+uint16(i), y, glyph, fill)
		}
	}

	label := g.Label
	if label == "" {
		label = fmt.Sprintf("%d%%", int(min(max(g.Ratio, 0), 1)*100+0.5))
	}
	label = text.Truncate(label, int(area.Width))
	x := area.X + geometry.AlignCenter.Offset(area.Width, uint16(text.Width(label)))
	y := area.Y + area.Height/2
	buf.SetString(x, y, label, g.Style)
}
