// Package widgets provides the stock widgets drawn by a terminal frame.
// Widgets are plain values built per frame; stateful widgets keep their
// state in a separate value owned by the caller.
package widgets

import (
	"github.com/odvcencio/tessera/pkg/ui/buffer"
	"github.com/odvcencio/tessera/pkg/ui/geometry"
	"github.com/odvcencio/tessera/pkg/ui/style"
	"github.com/odvcencio/tessera/pkg/ui/symbols"
	"github.com/odvcencio/tessera/pkg/ui/text"
)

// Borders selects the sides of a Block that get a border.
type Borders uint8

const (
	BorderTop Borders = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft

	BorderNone Borders = 0
	BorderAll          = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// Has reports whether all sides in o are set.
func (b Borders) Has(o Borders) bool { return b&o == o }

// Block draws a border and an optional title around an area.
type Block struct {
	Title       string
	TitleAlign  geometry.Alignment
	TitleStyle  style.Style
	Borders     Borders
	Lines       symbols.LineSet
	BorderStyle style.Style
	Style       style.Style
	Padding     geometry.Margin
}

// NewBlock returns a block with plain borders on every side.
func NewBlock() Block {
	return Block{Borders: BorderAll, Lines: symbols.Plain}
}

// WithTitle returns a copy of b with the given title.
func (b Block) WithTitle(title string) Block {
	b.Title = title
	return b
}

// Inner returns the part of area left for content.
func (b Block) Inner(area geometry.Rect) geometry.Rect {
	x, y := int(area.X), int(area.Y)
	right, bottom := int(area.Right()), int(area.Bottom())
	if b.Borders.Has(BorderLeft) {
		x++
	}
	if b.Borders.Has(BorderTop) || (b.Title != "" && b.Borders == BorderNone) {
		y++
	}
	if b.Borders.Has(BorderRight) {
		right--
	}
	if b.Borders.Has(BorderBottom) {
		bottom--
	}
	if right <= x || bottom <= y {
		return geometry.NewRect(uint16(min(x, right)), uint16(min(y, bottom)), 0, 0)
	}
	inner := geometry.NewRect(uint16(x), uint16(y), uint16(right-x), uint16(bottom-y))
	return inner.Inner(b.Padding)
}

// Render draws the block.
func (b Block) Render(area geometry.Rect, buf *buffer.Buffer) {
	area = area.Intersection(buf.Area())
	if area.IsEmpty() {
		return
	}
	buf.SetStyle(area, b.Style)

	lines := b.Lines
	if lines.Horizontal == "" {
		lines = symbols.Plain
	}
	left, top := area.Left(), area.Top()
	right, bottom := area.Right()-1, area.Bottom()-1
	st := b.Style.Patch(b.BorderStyle)

	if b.Borders.Has(BorderTop) {
		for x := left; x <= right; x++ {
			buf.Set(x, top, lines.Horizontal, st)
		}
	}
	if b.Borders.Has(BorderBottom) {
		for x := left; x <= right; x++ {
			buf.Set(x, bottom, lines.Horizontal, st)
		}
	}
	if b.Borders.Has(BorderLeft) {
		for y := top; y <= bottom; y++ {
			buf.Set(left, y, lines.Vertical, st)
		}
	}
	if b.Borders.Has(BorderRight) {
		for y := top; y <= bottom; y++ {
			buf.Set(right, y, lines.Vertical, st)
		}
	}
	if b.Borders.Has(BorderTop | BorderLeft) {
		buf.Set(left, top, lines.TopLeft, st)
	}
	if b.Borders.Has(BorderTop | BorderRight) {
		buf.Set(right, top, lines.TopRight, st)
	}
	if b.Borders.Has(BorderBottom | BorderLeft) {
		buf.Set(left, bottom, lines.BottomLeft, st)
	}
	if b.Borders.Has(BorderBottom | BorderRight) {
		buf.Set(right, bottom, lines.BottomRight, st)
	}

	b.renderTitle(area, buf)
}

func (b Block) renderTitle(area geometry.Rect, buf *buffer.Buffer) {
	if b.Title == "" {
		return
	}
	x, width := int(area.X), int(area.Width)
	if b.Borders.Has(BorderLeft) {
		x++
		width--
	}
	if b.Borders.Has(BorderRight) {
		width--
	}
	if width <= 0 {
		return
	}
	title := text.Truncate(b.Title, width)
	offset := b.TitleAlign.Offset(uint16(width), uint16(text.Width(title)))
	buf.SetStringN(uint16(x)+offset, area.Y, title, width, b.Style.Patch(b.TitleStyle))
}
