package buffer

// Change is one cell the terminal has to rewrite.
type Change struct {
	X    uint16
	Y    uint16
	Cell Cell
}

// Diff returns the cell writes that turn prev into next, in row-major order.
//
// When both buffers cover the same area only differing cells are reported.
// Continuation cells of wide glyphs are never reported: writing the glyph
// that owns them re-derives them. When the areas differ every renderable
// cell of next is reported so the caller can repaint from scratch.
func Diff(prev, next *Buffer) []Change {
	if prev.area != next.area {
		return repaint(next)
	}

	var changes []Change
	// Cells before spanEnd sit under a wide glyph written in this diff and
	// must be rewritten even if unchanged, since drawing the glyph covers them.
	spanEnd := 0
	for i, curr := range next.cells {
		if curr.Skip {
			continue
		}
		if i >= spanEnd && curr == prev.cells[i] && !spanChanged(prev, next, i) {
			continue
		}
		x, y := next.PosOf(i)
		changes = append(changes, Change{X: x, Y: y, Cell: curr})
		if end := spanOf(next, i); end > spanEnd {
			spanEnd = end
		}
	}
	return changes
}

// spanOf returns the exclusive end offset of the columns the glyph at
// offset i covers, clipped to its row.
func spanOf(b *Buffer, i int) int {
	c := b.cells[i]
	if len(c.Symbol) < 2 {
		return i + 1
	}
	x, _ := b.PosOf(i)
	return i + max(1, min(c.Width(), int(b.area.Right()-x)))
}

// spanChanged reports whether any continuation column of the wide glyph at
// offset i differs between the two buffers. The terminal lost the glyph if
// something else was drawn over its right half.
func spanChanged(prev, next *Buffer, i int) bool {
	end := spanOf(next, i)
	for j := i + 1; j < end; j++ {
		if prev.cells[j] != next.cells[j] {
			return true
		}
	}
	return false
}

func repaint(b *Buffer) []Change {
	changes := make([]Change, 0, len(b.cells))
	for i, c := range b.cells {
		if c.Skip {
			continue
		}
		x, y := b.PosOf(i)
		changes = append(changes, Change{X: x, Y: y, Cell: c})
	}
	return changes
}

// Apply replays changes onto b through the normal point-write path.
func (b *Buffer) Apply(changes []Change) {
	for _, ch := range changes {
		b.Set(ch.X, ch.Y, ch.Cell.Symbol, ch.Cell.Style)
	}
}
