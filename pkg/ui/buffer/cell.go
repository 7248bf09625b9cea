package buffer

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/tessera/pkg/ui/style"
)

// Cell is one terminal cell: a grapheme cluster and its style.
// Skip marks the continuation columns of a wide glyph; a skipped cell is
// never rendered itself and its Symbol is meaningless.
type Cell struct {
	Symbol string
	Style  style.Style
	Skip   bool
}

// EmptyCell returns the default cell: a space in the default style.
func EmptyCell() Cell {
	return Cell{Symbol: " "}
}

// NewCell creates a cell holding symbol.
func NewCell(symbol string, st style.Style) Cell {
	return Cell{Symbol: symbol, Style: st}
}

// Width returns the number of columns the symbol occupies.
func (c Cell) Width() int {
	return runewidth.StringWidth(c.Symbol)
}

// Reset restores the default cell.
func (c *Cell) Reset() {
	*c = EmptyCell()
}
