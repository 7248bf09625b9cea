// Package buffer implements the in-memory cell grid that frames are rendered
// into, and the diff that turns two grids into a minimal list of cell writes.
package buffer

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/odvcencio/tessera/pkg/ui/geometry"
	"github.com/odvcencio/tessera/pkg/ui/style"
)

// Buffer is a rectangular grid of cells stored in row-major order.
// Out-of-range writes are ignored and out-of-range reads report false.
type Buffer struct {
	area  geometry.Rect
	cells []Cell
}

// New creates a buffer covering area, filled with default cells.
func New(area geometry.Rect) *Buffer {
	return Filled(area, EmptyCell())
}

// Filled creates a buffer covering area with every cell set to c.
func Filled(area geometry.Rect, c Cell) *Buffer {
	cells := make([]Cell, area.Area())
	for i := range cells {
		cells[i] = c
	}
	return &Buffer{area: area, cells: cells}
}

// WithLines creates a buffer at the origin sized to fit lines and writes
// each line into its row.
func WithLines(lines ...string) *Buffer {
	width := 0
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}
	b := New(geometry.NewRect(0, 0, uint16(min(width, math.MaxUint16)), uint16(len(lines))))
	for y, line := range lines {
		b.SetString(0, uint16(y), line, style.New())
	}
	return b
}

// Area returns the region the buffer covers.
func (b *Buffer) Area() geometry.Rect {
	return b.area
}

// Content returns the cells in row-major order. The slice aliases the buffer.
func (b *Buffer) Content() []Cell {
	return b.cells
}

// Index returns the offset of (x, y) in Content.
func (b *Buffer) Index(x, y uint16) (int, bool) {
	if !b.area.Contains(geometry.Position{X: x, Y: y}) {
		return 0, false
	}
	return int(y-b.area.Y)*int(b.area.Width) + int(x-b.area.X), true
}

// PosOf returns the coordinates of the cell at offset i.
func (b *Buffer) PosOf(i int) (x, y uint16) {
	w := int(b.area.Width)
	return b.area.X + uint16(i%w), b.area.Y + uint16(i/w)
}

// Get returns the cell at (x, y).
func (b *Buffer) Get(x, y uint16) (Cell, bool) {
	i, ok := b.Index(x, y)
	if !ok {
		return Cell{}, false
	}
	return b.cells[i], true
}

// Set writes symbol at (x, y) and reports whether the write landed.
// A wide symbol marks the columns it covers to its right as skipped;
// continuation columns past the right edge are dropped. Writing into a
// continuation column blanks the wide glyph that owned it.
func (b *Buffer) Set(x, y uint16, symbol string, st style.Style) bool {
	i, ok := b.Index(x, y)
	if !ok {
		return false
	}
	if b.cells[i].Skip {
		rowStart := i - int(x-b.area.X)
		for j := i - 1; j >= rowStart; j-- {
			cont := b.cells[j].Skip
			b.cells[j].Reset()
			if !cont {
				break
			}
		}
	}
	b.cells[i] = Cell{Symbol: symbol, Style: st}

	rowEnd := i + int(b.area.Right()-x)
	next := i + 1
	for w := runewidth.StringWidth(symbol); w > 1 && next < rowEnd; w-- {
		b.cells[next] = Cell{Symbol: " ", Skip: true}
		next++
	}
	// A narrower glyph no longer owns what the previous one spanned.
	for ; next < rowEnd && b.cells[next].Skip; next++ {
		b.cells[next].Reset()
	}
	return true
}

// SetCell writes c at (x, y) through the normal point-write path.
func (b *Buffer) SetCell(x, y uint16, c Cell) bool {
	if c.Skip {
		return false
	}
	return b.Set(x, y, c.Symbol, c.Style)
}

// SetString writes text starting at (x, y), one grapheme cluster per cell
// group, and returns the column after the last cluster written. Writing
// stops before the first cluster that would cross the right edge.
func (b *Buffer) SetString(x, y uint16, text string, st style.Style) uint16 {
	return b.SetStringN(x, y, text, math.MaxUint16, st)
}

// SetStringN is SetString limited to at most maxWidth columns.
func (b *Buffer) SetStringN(x, y uint16, text string, maxWidth int, st style.Style) uint16 {
	limit := min(int(b.area.Right()), int(x)+max(maxWidth, 0))
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		cluster := gr.Str()
		w := runewidth.StringWidth(cluster)
		if w == 0 {
			continue
		}
		if int(x)+w > limit {
			break
		}
		b.Set(x, y, cluster, st)
		x += uint16(w)
	}
	return x
}

// SetStyle patches st onto every cell inside r.
func (b *Buffer) SetStyle(r geometry.Rect, st style.Style) {
	r = r.Intersection(b.area)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			i, _ := b.Index(x, y)
			b.cells[i].Style = b.cells[i].Style.Patch(st)
		}
	}
}

// Fill sets every cell inside r to c.
func (b *Buffer) Fill(r geometry.Rect, c Cell) {
	r = r.Intersection(b.area)
	for y := r.Y; y < r.Bottom(); y++ {
		start, _ := b.Index(r.X, y)
		row := b.cells[start : start+int(r.Width)]
		for x := range row {
			row[x] = c
		}
	}
}

// Clear resets every cell.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i].Reset()
	}
}

// ClearRegion resets every cell inside r.
func (b *Buffer) ClearRegion(r geometry.Rect) {
	b.Fill(r, EmptyCell())
}

// Resize changes the covered area. Cells inside both the old and new areas
// keep their content; newly exposed cells are defaults.
func (b *Buffer) Resize(area geometry.Rect) {
	if area == b.area {
		return
	}
	fresh := New(area)
	overlap := b.area.Intersection(area)
	for y := overlap.Y; y < overlap.Bottom(); y++ {
		for x := overlap.X; x < overlap.Right(); x++ {
			src, _ := b.Index(x, y)
			dst, _ := fresh.Index(x, y)
			fresh.cells[dst] = b.cells[src]
		}
	}
	*b = *fresh
}

// Merge copies every non-skipped cell of other that lies inside b.
func (b *Buffer) Merge(other *Buffer) {
	overlap := b.area.Intersection(other.area)
	for y := overlap.Y; y < overlap.Bottom(); y++ {
		for x := overlap.X; x < overlap.Right(); x++ {
			c, _ := other.Get(x, y)
			b.SetCell(x, y, c)
		}
	}
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Buffer{area: b.area, cells: cells}
}

// Equal reports whether both buffers cover the same area with the same cells.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.area != other.area || len(b.cells) != len(other.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Row returns the rendered text of row y, skipping continuation cells.
func (b *Buffer) Row(y uint16) string {
	if y < b.area.Y || y >= b.area.Bottom() {
		return ""
	}
	var sb strings.Builder
	start, _ := b.Index(b.area.X, y)
	for _, c := range b.cells[start : start+int(b.area.Width)] {
		if !c.Skip {
			sb.WriteString(c.Symbol)
		}
	}
	return sb.String()
}

// String renders every row, separated by newlines.
func (b *Buffer) String() string {
	if b.area.IsEmpty() {
		return ""
	}
	rows := make([]string, 0, b.area.Height)
	for y := b.area.Y; y < b.area.Bottom(); y++ {
		rows = append(rows, b.Row(y))
	}
	return strings.Join(rows, "\n")
}
