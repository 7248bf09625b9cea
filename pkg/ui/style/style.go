// Package style holds the color, modifier and style values that the buffer
// attaches to every cell. Styles are small comparable values; builders return
// modified copies.
package style

import (
	"strings"

	"github.com/muesli/termenv"
)

// Modifier is a set of text attributes.
type Modifier uint16

// Modifier flags
const (
	Bold Modifier = 1 << iota
	Dim
	Italic
	Underlined
	SlowBlink
	RapidBlink
	Reversed
	Hidden
	CrossedOut
)

var modifierNames = []string{
	"BOLD", "DIM", "ITALIC", "UNDERLINED", "SLOW_BLINK", "RAPID_BLINK",
	"REVERSED", "HIDDEN", "CROSSED_OUT",
}

// Contains reports whether every flag in o is present in m.
func (m Modifier) Contains(o Modifier) bool {
	return m&o == o
}

func (m Modifier) String() string {
	if m == 0 {
		return "NONE"
	}
	var parts []string
	for i, name := range modifierNames {
		if m&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, " | ")
}

// Style combines optional foreground and background colors with modifiers to
// add and modifiers to strip. The zero value is the default style.
type Style struct {
	fg  Color
	bg  Color
	add Modifier
	sub Modifier
}

// New returns the default style.
func New() Style {
	return Style{}
}

// Foreground sets the foreground color.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background sets the background color.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

// AddModifier turns the given modifiers on.
func (s Style) AddModifier(m Modifier) Style {
	s.add |= m
	s.sub &^= m
	return s
}

// RemoveModifier turns the given modifiers off, including any inherited
// through Patch.
func (s Style) RemoveModifier(m Modifier) Style {
	s.sub |= m
	s.add &^= m
	return s
}

// Bold toggles bold.
func (s Style) Bold(on bool) Style { return s.toggle(Bold, on) }

// Dim toggles dim.
func (s Style) Dim(on bool) Style { return s.toggle(Dim, on) }

// Italic toggles italic.
func (s Style) Italic(on bool) Style { return s.toggle(Italic, on) }

// Underline toggles underline.
func (s Style) Underline(on bool) Style { return s.toggle(Underlined, on) }

// Blink toggles slow blink.
func (s Style) Blink(on bool) Style { return s.toggle(SlowBlink, on) }

// Reverse toggles reverse video.
func (s Style) Reverse(on bool) Style { return s.toggle(Reversed, on) }

// StrikeThrough toggles crossed-out text.
func (s Style) StrikeThrough(on bool) Style { return s.toggle(CrossedOut, on) }

func (s Style) toggle(m Modifier, on bool) Style {
	if on {
		return s.AddModifier(m)
	}
	return s.RemoveModifier(m)
}

// FG returns the foreground color, which may be unset.
func (s Style) FG() Color { return s.fg }

// BG returns the background color, which may be unset.
func (s Style) BG() Color { return s.bg }

// Modifiers returns the effective modifier set.
func (s Style) Modifiers() Modifier { return s.add &^ s.sub }

// Removed returns the modifiers this style strips from the layers below it.
func (s Style) Removed() Modifier { return s.sub }

// Patch layers o on top of s. Colors set in o win; modifiers accumulate, and
// a modifier o removes is removed even if s added it.
func (s Style) Patch(o Style) Style {
	if o.fg.IsSet() {
		s.fg = o.fg
	}
	if o.bg.IsSet() {
		s.bg = o.bg
	}
	s.add = (s.add &^ o.sub) | o.add
	s.sub = (s.sub &^ o.add) | o.sub
	return s
}

// Decompose returns the foreground, background and effective modifiers.
func (s Style) Decompose() (fg, bg Color, mods Modifier) {
	return s.fg, s.bg, s.Modifiers()
}

// Downsample converts both colors to what the profile can display.
func (s Style) Downsample(p termenv.Profile) Style {
	s.fg = s.fg.Downsample(p)
	s.bg = s.bg.Downsample(p)
	return s
}

// IsDefault reports whether s changes nothing.
func (s Style) IsDefault() bool {
	return s == Style{}
}
