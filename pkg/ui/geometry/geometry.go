// Package geometry provides the integer grid primitives used by the buffer,
// layout and terminal packages. All arithmetic saturates instead of wrapping.
package geometry

import (
	"fmt"
	"math"
)

// Position is a cell coordinate on the terminal grid.
type Position struct {
	X uint16
	Y uint16
}

// NewPosition creates a position.
func NewPosition(x, y uint16) Position {
	return Position{X: x, Y: y}
}

// Add returns p+o, saturating at the coordinate range.
func (p Position) Add(o Position) Position {
	return Position{X: satAdd(p.X, o.X), Y: satAdd(p.Y, o.Y)}
}

// Sub returns p-o, saturating at zero.
func (p Position) Sub(o Position) Position {
	return Position{X: satSub(p.X, o.X), Y: satSub(p.Y, o.Y)}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Size is a width/height pair.
type Size struct {
	Width  uint16
	Height uint16
}

// Rect is a rectangle given by its top-left corner and extent.
type Rect struct {
	X      uint16
	Y      uint16
	Width  uint16
	Height uint16
}

// NewRect creates a rectangle.
func NewRect(x, y, width, height uint16) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge.
func (r Rect) Left() uint16 { return r.X }

// Top returns the top edge.
func (r Rect) Top() uint16 { return r.Y }

// Right returns the exclusive right edge.
func (r Rect) Right() uint16 { return satAdd(r.X, r.Width) }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() uint16 { return satAdd(r.Y, r.Height) }

// Position returns the top-left corner.
func (r Rect) Position() Position { return Position{X: r.X, Y: r.Y} }

// Size returns the extent.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Area returns the number of cells covered.
func (r Rect) Area() uint32 {
	return uint32(r.Width) * uint32(r.Height)
}

// IsEmpty reports whether the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Intersection returns the overlapping region of r and o.
// Disjoint rectangles produce a zero-sized rectangle.
func (r Rect) Intersection(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.Right(), o.Right())
	y2 := min(r.Bottom(), o.Bottom())
	return Rect{X: x1, Y: y1, Width: satSub(x2, x1), Height: satSub(y2, y1)}
}

// Intersects reports whether r and o share at least one cell.
func (r Rect) Intersects(o Rect) bool {
	return !r.Intersection(o).IsEmpty()
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	x1 := min(r.X, o.X)
	y1 := min(r.Y, o.Y)
	x2 := max(r.Right(), o.Right())
	y2 := max(r.Bottom(), o.Bottom())
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Inner shrinks r by the margin on every side.
func (r Rect) Inner(m Margin) Rect {
	dw := uint32(m.Horizontal) * 2
	dh := uint32(m.Vertical) * 2
	if uint32(r.Width) < dw || uint32(r.Height) < dh {
		return Rect{X: satAdd(r.X, m.Horizontal), Y: satAdd(r.Y, m.Vertical)}
	}
	return Rect{
		X:      r.X + m.Horizontal,
		Y:      r.Y + m.Vertical,
		Width:  r.Width - uint16(dw),
		Height: r.Height - uint16(dh),
	}
}

// Clamp moves and shrinks r so it fits inside bounds.
func (r Rect) Clamp(bounds Rect) Rect {
	w := min(r.Width, bounds.Width)
	h := min(r.Height, bounds.Height)
	x := min(max(r.X, bounds.X), satSub(bounds.Right(), w))
	y := min(max(r.Y, bounds.Y), satSub(bounds.Bottom(), h))
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Rows splits r into one rectangle per row.
func (r Rect) Rows() []Rect {
	rows := make([]Rect, 0, r.Height)
	for y := r.Y; y < r.Bottom(); y++ {
		rows = append(rows, Rect{X: r.X, Y: y, Width: r.Width, Height: 1})
	}
	return rows
}

// Columns splits r into one rectangle per column.
func (r Rect) Columns() []Rect {
	cols := make([]Rect, 0, r.Width)
	for x := r.X; x < r.Right(); x++ {
		cols = append(cols, Rect{X: x, Y: r.Y, Width: 1, Height: r.Height})
	}
	return cols
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Margin is an inset applied symmetrically on each axis.
type Margin struct {
	Horizontal uint16
	Vertical   uint16
}

// NewMargin creates a margin with distinct horizontal and vertical insets.
func NewMargin(horizontal, vertical uint16) Margin {
	return Margin{Horizontal: horizontal, Vertical: vertical}
}

// UniformMargin creates a margin with the same inset on both axes.
func UniformMargin(n uint16) Margin {
	return Margin{Horizontal: n, Vertical: n}
}

// Alignment positions content within a larger span.
type Alignment uint8

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// Offset returns where content of the given size starts inside available.
func (a Alignment) Offset(available, size uint16) uint16 {
	free := satSub(available, size)
	switch a {
	case AlignCenter:
		return free / 2
	case AlignEnd:
		return free
	default:
		return 0
	}
}

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "start"
	}
}

func satAdd(a, b uint16) uint16 {
	s := uint32(a) + uint32(b)
	if s > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(s)
}

func satSub(a, b uint16) uint16 {
	if b > a {
		return 0
	}
	return a - b
}
