// Package text measures, truncates and wraps strings by display width.
// Strings are handled per grapheme cluster, so combining marks and emoji
// sequences are never split.
package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"github.com/odvcencio/tessera/pkg/ui/geometry"
)

// Ellipsis marks truncated text.
const Ellipsis = "..."

// Width returns the number of columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Normalize returns s in NFC so decomposed accents render as one cluster
// where the terminal has a precomposed glyph.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Graphemes splits s into grapheme clusters.
func Graphemes(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// Truncate shortens s to at most maxWidth columns, ending it with an
// ellipsis when anything was cut. Widths too small for the ellipsis get a
// hard cut instead.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= len(Ellipsis) {
		return take(s, maxWidth)
	}
	return take(s, maxWidth-len(Ellipsis)) + Ellipsis
}

// take returns the longest prefix of s that fits in width columns.
func take(s string, width int) string {
	var b strings.Builder
	used := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := runewidth.StringWidth(gr.Str())
		if used+w > width {
			break
		}
		b.WriteString(gr.Str())
		used += w
	}
	return b.String()
}

// Pad aligns s within width columns, filling with spaces. Text wider than
// width is truncated.
func Pad(s string, width int, align geometry.Alignment) string {
	if width <= 0 {
		return ""
	}
	s = Truncate(s, width)
	free := width - Width(s)
	left := int(align.Offset(uint16(min(width, 0xFFFF)), uint16(min(Width(s), 0xFFFF))))
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", free-left)
}

// Wrap breaks s into lines of at most width columns. Lines break at
// whitespace; words wider than a line are split across lines. Explicit
// newlines are kept and empty paragraphs become empty lines.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var line strings.Builder
		lineWidth := 0
		flush := func() {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}

		for _, word := range words {
			wordWidth := Width(word)
			if lineWidth > 0 && lineWidth+1+wordWidth > width {
				flush()
			}
			if lineWidth > 0 {
				line.WriteByte(' ')
				lineWidth++
			}
			if wordWidth <= width-lineWidth {
				line.WriteString(word)
				lineWidth += wordWidth
				continue
			}

			for _, cluster := range Graphemes(word) {
				w := runewidth.StringWidth(cluster)
				if lineWidth+w > width && lineWidth > 0 {
					flush()
				}
				line.WriteString(cluster)
				lineWidth += w
			}
		}
		if lineWidth > 0 {
			flush()
		}
	}
	return lines
}
