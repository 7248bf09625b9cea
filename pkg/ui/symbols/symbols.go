// Package symbols holds the glyph sets used to draw borders, bars and
// markers.
package symbols

// LineSet is a family of box-drawing glyphs.
type LineSet struct {
	Horizontal     string
	Vertical       string
	TopLeft        string
	TopRight       string
	BottomLeft     string
	BottomRight    string
	VerticalRight  string
	VerticalLeft   string
	HorizontalDown string
	HorizontalUp   string
	Cross          string
}

// Line sets
var (
	ASCII = LineSet{
		Horizontal:     "-",
		Vertical:       "|",
		TopLeft:        "+",
		TopRight:       "+",
		BottomLeft:     "+",
		BottomRight:    "+",
		VerticalRight:  "+",
		VerticalLeft:   "+",
		HorizontalDown: "+",
		HorizontalUp:   "+",
		Cross:          "+",
	}

	Plain = LineSet{
		Horizontal:     "─",
		Vertical:       "│",
		TopLeft:        "┌",
		TopRight:       "┐",
		BottomLeft:     "└",
		BottomRight:    "┘",
		VerticalRight:  "├",
		VerticalLeft:   "┤",
		HorizontalDown: "┬",
		HorizontalUp:   "┴",
		Cross:          "┼",
	}

	Rounded = LineSet{
		Horizontal:     "─",
		Vertical:       "│",
		TopLeft:        "╭",
		TopRight:       "╮",
		BottomLeft:     "╰",
		BottomRight:    "╯",
		VerticalRight:  "├",
		VerticalLeft:   "┤",
		HorizontalDown: "┬",
		HorizontalUp:   "┴",
		Cross:          "┼",
	}

	Double = LineSet{
		Horizontal:     "═",
		Vertical:       "║",
		TopLeft:        "╔",
		TopRight:       "╗",
		BottomLeft:     "╚",
		BottomRight:    "╝",
		VerticalRight:  "╠",
		VerticalLeft:   "╣",
		HorizontalDown: "╦",
		HorizontalUp:   "╩",
		Cross:          "╬",
	}

	Thick = LineSet{
		Horizontal:     "━",
		Vertical:       "┃",
		TopLeft:        "┏",
		TopRight:       "┓",
		BottomLeft:     "┗",
		BottomRight:    "┛",
		VerticalRight:  "┣",
		VerticalLeft:   "┫",
		HorizontalDown: "┳",
		HorizontalUp:   "┻",
		Cross:          "╋",
	}
)

// ScrollbarSet is the glyphs of a scrollbar.
type ScrollbarSet struct {
	Track string
	Thumb string
	Begin string
	End   string
}

// Scrollbar sets
var (
	ScrollbarDefault = ScrollbarSet{Track: "│", Thumb: "█", Begin: "▲", End: "▼"}
	ScrollbarBlock   = ScrollbarSet{Track: "░", Thumb: "█", Begin: "▲", End: "▼"}
)

// Partial block glyphs, in eighths of a cell.
const (
	BarFull         = "█"
	BarSevenEighths = "▉"
	BarThreeQuarter = "▊"
	BarFiveEighths  = "▋"
	BarHalf         = "▌"
	BarThreeEighths = "▍"
	BarQuarter      = "▎"
	BarOneEighth    = "▏"
)

// Blocks indexes the partial block glyphs by eighths filled, 0 through 8.
var Blocks = [9]string{
	" ",
	BarOneEighth,
	BarQuarter,
	BarThreeEighths,
	BarHalf,
	BarFiveEighths,
	BarThreeQuarter,
	BarSevenEighths,
	BarFull,
}

// Markers
const (
	Dot         = "•"
	Bullet      = "●"
	Circle      = "○"
	MarkerArrow = "→"
	MarkerAngle = "❯"
	MarkerCheck = "✓"
)

// Spinner is a braille spinner, one glyph per animation step.
var Spinner = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Braille returns the braille pattern whose dots are set in bits.
func Braille(bits uint8) rune {
	return rune(0x2800 + int(bits))
}

// Bar returns the glyphs for a horizontal bar filling ratio of width
// cells, using partial blocks for the last cell. Ratio is clamped to [0, 1].
func Bar(ratio float64, width int) []string {
	if width <= 0 {
		return nil
	}
	ratio = min(max(ratio, 0), 1)
	eighths := int(ratio*float64(width*8) + 0.5)

	cells := make([]string, width)
	for i := range cells {
		n := min(max(eighths-i*8, 0), 8)
		cells[i] = Blocks[n]
	}
	return cells
}
