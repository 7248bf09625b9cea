// Package layout splits a rectangle into slots described by constraints.
//
//	rows := layout.Vertical(layout.Length(1), layout.Fill(1), layout.Length(1)).
//		WithCache(32).
//		Split(frame.Area())
package layout

import (
	"fmt"

	"github.com/odvcencio/tessera/pkg/ui/geometry"
)

// Direction is the axis slots are laid out along.
type Direction uint8

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

func (d Direction) String() string {
	if d == DirectionHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Flex decides where leftover space goes once every slot is sized.
type Flex uint8

const (
	FlexStart Flex = iota
	FlexCenter
	FlexEnd
	// FlexSpaceBetween splits leftover space evenly between slots.
	FlexSpaceBetween
	// FlexSpaceAround gives each slot an equal share of leftover space,
	// half on either side, so the outer edges get half a share.
	FlexSpaceAround
)

func (f Flex) String() string {
	switch f {
	case FlexCenter:
		return "center"
	case FlexEnd:
		return "end"
	case FlexSpaceBetween:
		return "space-between"
	case FlexSpaceAround:
		return "space-around"
	default:
		return "start"
	}
}

// Spacing is the distance between adjacent slots. Overlap lets neighbours
// share cells, for example to collapse adjoining borders.
type Spacing struct {
	overlap bool
	n       uint16
}

// Gap separates slots by n empty cells.
func Gap(n uint16) Spacing { return Spacing{n: n} }

// Overlap makes adjacent slots share n cells.
func Overlap(n uint16) Spacing { return Spacing{overlap: true, n: n} }

// signed returns the spacing as a signed step between slots.
func (s Spacing) signed() int64 {
	if s.overlap {
		return -int64(s.n)
	}
	return int64(s.n)
}

func (s Spacing) String() string {
	if s.overlap {
		return fmt.Sprintf("Overlap(%d)", s.n)
	}
	return fmt.Sprintf("Gap(%d)", s.n)
}

// Layout is a reusable description of how to split an area.
// Builder methods modify the layout in place and return it.
type Layout struct {
	direction   Direction
	constraints []Constraint
	flex        Flex
	spacing     Spacing
	margin      geometry.Margin
	cache       *Cache
}

// New creates a layout along direction.
func New(direction Direction, constraints ...Constraint) *Layout {
	return &Layout{direction: direction, constraints: constraints}
}

// Vertical creates a layout that stacks slots top to bottom.
func Vertical(constraints ...Constraint) *Layout {
	return New(DirectionVertical, constraints...)
}

// Horizontal creates a layout that places slots left to right.
func Horizontal(constraints ...Constraint) *Layout {
	return New(DirectionHorizontal, constraints...)
}

// WithDirection sets the layout axis.
func (l *Layout) WithDirection(d Direction) *Layout {
	l.direction = d
	return l
}

// WithConstraints replaces the constraints.
func (l *Layout) WithConstraints(constraints ...Constraint) *Layout {
	l.constraints = constraints
	return l
}

// WithFlex sets how leftover space is placed.
func (l *Layout) WithFlex(f Flex) *Layout {
	l.flex = f
	return l
}

// WithSpacing sets the spacing between slots.
func (l *Layout) WithSpacing(s Spacing) *Layout {
	l.spacing = s
	return l
}

// WithMargin shrinks the area by m before splitting.
func (l *Layout) WithMargin(m geometry.Margin) *Layout {
	l.margin = m
	return l
}

// WithCache gives the layout its own result cache of the given capacity.
// A non-positive capacity disables caching.
func (l *Layout) WithCache(capacity int) *Layout {
	l.cache = NewCache(capacity)
	return l
}

// WithSharedCache makes the layout use c, which may serve other layouts too.
func (l *Layout) WithSharedCache(c *Cache) *Layout {
	l.cache = c
	return l
}

// Cache returns the layout's cache, or nil.
func (l *Layout) Cache() *Cache {
	return l.cache
}

// Constraints returns the layout's constraints.
func (l *Layout) Constraints() []Constraint {
	return l.constraints
}

// Split divides area into one rectangle per constraint, in order.
// Every rectangle spans the full cross axis of the (margin-adjusted) area.
func (l *Layout) Split(area geometry.Rect) []geometry.Rect {
	if len(l.constraints) == 0 {
		return []geometry.Rect{}
	}
	if l.cache == nil {
		return l.solve(area)
	}

	key := cacheKey{
		area:        area,
		direction:   l.direction,
		flex:        l.flex,
		spacing:     l.spacing,
		margin:      l.margin,
		constraints: encodeConstraints(l.constraints),
	}
	if rects, ok := l.cache.get(key); ok {
		return rects
	}
	rects := l.solve(area)
	l.cache.put(key, rects)
	return rects
}

func (l *Layout) solve(area geometry.Rect) []geometry.Rect {
	inner := area.Inner(l.margin)
	origin, span := int64(inner.Y), int64(inner.Height)
	if l.direction == DirectionHorizontal {
		origin, span = int64(inner.X), int64(inner.Width)
	}

	n := len(l.constraints)
	sizes := make([]int64, n)

	// Fixed slots claim space in order; later ones get what is left.
	var claimed, totalWeight int64
	for i, c := range l.constraints {
		if c.IsFill() {
			totalWeight += int64(c.Weight())
			continue
		}
		size := min(int64(c.Apply(uint16(span))), span-claimed)
		sizes[i] = size
		claimed += size
	}

	step := l.spacing.signed()
	reserved := step * int64(n-1)

	if totalWeight > 0 {
		avail := max(0, span-claimed-reserved)
		for i, c := range l.constraints {
			if c.IsFill() {
				sizes[i] = avail * int64(c.Weight()) / totalWeight
			}
		}
	}

	used := reserved
	for _, s := range sizes {
		used += s
	}
	slack := max(0, span-used)

	offset := origin
	switch l.flex {
	case FlexCenter:
		offset += slack / 2
	case FlexEnd:
		offset += slack
	case FlexSpaceBetween:
		if n > 1 {
			step += slack / int64(n-1)
		}
	case FlexSpaceAround:
		offset += slack / int64(2*n)
		step += slack / int64(n)
	}

	end := origin + span
	rects := make([]geometry.Rect, n)
	for i, size := range sizes {
		pos := min(max(offset, origin), end)
		size = min(size, end-pos)
		if l.direction == DirectionHorizontal {
			rects[i] = geometry.Rect{X: uint16(pos), Y: inner.Y, Width: uint16(size), Height: inner.Height}
		} else {
			rects[i] = geometry.Rect{X: inner.X, Y: uint16(pos), Width: inner.Width, Height: uint16(size)}
		}
		offset += sizes[i] + step
	}
	return rects
}
