package widgets

import (
	"strings"

	"github.com/odvcencio/tessera/pkg/ui/buffer"
	"github.com/odvcencio/tessera/pkg/ui/geometry"
	"github.com/odvcencio/tessera/pkg/ui/style"
	"github.com/odvcencio/tessera/pkg/ui/text"
)

// Paragraph draws multi-line text, optionally wrapped and inside a block.
type Paragraph struct {
	Text  string
	Style style.Style
	Align geometry.Alignment
	// Wrap breaks long lines at word boundaries; otherwise they are
	// truncated with an ellipsis.
	Wrap bool
	// Scroll skips that many lines from the top.
	Scroll int
	Block  *Block
}

// NewParagraph returns a wrapping paragraph.
func NewParagraph(s string) Paragraph {
	return Paragraph{Text: s, Wrap: true}
}

// Lines returns the lines the paragraph draws at the given width,
// before scrolling.
func (p Paragraph) Lines(width int) []string {
	if p.Wrap {
		return text.Wrap(p.Text, width)
	}
	lines := strings.Split(p.Text, "\n")
	for i, line := range lines {
		lines[i] = text.Truncate(line, width)
	}
	return lines
}

// Render draws the paragraph.
func (p Paragraph) Render(area geometry.Rect, buf *buffer.Buffer) {
	area = area.Intersection(buf.Area())
	if p.Block != nil {
		p.Block.Render(area, buf)
		area = p.Block.Inner(area)
	}
	if area.IsEmpty() {
		return
	}
	buf.SetStyle(area, p.Style)

	lines := p.Lines(int(area.Width))
	if p.Scroll > 0 {
		lines = lines[min(p.Scroll, len(lines)):]
	}
	for i, line := range lines {
		if i >= int(area.Height) {
			break
		}
		offset := p.Align.Offset(area.Width, uint16(text.Width(line)))
		buf.SetStringN(area.X+offset, area.Y+uint16(i), line, int(area.Width), p.Style)
	}
}
