package ansi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/odvcencio/tessera/pkg/ui/style"
)

// ANSI escape sequences.
const (
	Escape      = "\x1b["
	ClearScreen = "\x1b[2J"
	CursorHome  = "\x1b[H"
	CursorHide  = "\x1b[?25l"
	CursorShow  = "\x1b[?25h"
	Reset       = "\x1b[0m"
	AltScreen   = "\x1b[?1049h"
	MainScreen  = "\x1b[?1049l"
)

// CursorTo returns the sequence moving the cursor to (x, y).
// Coordinates are 0-indexed, but ANSI uses 1-indexed.
func CursorTo(x, y int) string {
	return fmt.Sprintf("\x1b[%d;%dH", y+1, x+1)
}

// CursorForward moves the cursor right n columns.
func CursorForward(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%dC", n)
}

var modifierCodes = []struct {
	mod  style.Modifier
	code string
}{
	{style.Bold, "1"},
	{style.Dim, "2"},
	{style.Italic, "3"},
	{style.Underlined, "4"},
	{style.SlowBlink, "5"},
	{style.RapidBlink, "6"},
	{style.Reversed, "7"},
	{style.Hidden, "8"},
	{style.CrossedOut, "9"},
}

// SGR returns the select-graphic-rendition sequence for s. The sequence
// always starts from a reset so it does not depend on the previous style.
func SGR(s style.Style) string {
	fg, bg, mods := s.Decompose()

	parts := []string{"0"}
	for _, m := range modifierCodes {
		if mods.Contains(m.mod) {
			parts = append(parts, m.code)
		}
	}
	parts = append(parts, colorParams(fg, true)...)
	parts = append(parts, colorParams(bg, false)...)

	return Escape + strings.Join(parts, ";") + "m"
}

// colorParams converts a color to SGR parameters. Unset and reset colors
// produce nothing since SGR starts from a reset.
func colorParams(c style.Color, fg bool) []string {
	switch {
	case c.IsNamed():
		idx, _ := c.Index()
		base := 30
		if !fg {
			base = 40
		}
		if idx >= 8 {
			return []string{strconv.Itoa(base + 60 + int(idx) - 8)}
		}
		return []string{strconv.Itoa(base + int(idx))}

	case c.IsIndexed():
		idx, _ := c.Index()
		lead := "38"
		if !fg {
			lead = "48"
		}
		return []string{lead, "5", strconv.Itoa(int(idx))}

	case c.IsRGB():
		r, g, b := c.RGB()
		lead := "38"
		if !fg {
			lead = "48"
		}
		return []string{lead, "2", strconv.Itoa(int(r)), strconv.Itoa(int(g)), strconv.Itoa(int(b))}
	}
	return nil
}
