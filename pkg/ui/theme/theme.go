// Package theme groups the styles widgets are drawn with, so a screen can
// switch palettes in one place.
package theme

import (
	"github.com/muesli/termenv"

	"github.com/odvcencio/tessera/pkg/ui/style"
)

// Theme defines the visual language of a screen.
type Theme struct {
	// Core palette
	Background style.Style
	Surface    style.Style

	// Text hierarchy
	Text      style.Style
	TextMuted style.Style
	Title     style.Style

	// Accents
	Accent    style.Style
	AccentDim style.Style

	// Semantic colors
	Success style.Style
	Warning style.Style
	Error   style.Style
	Info    style.Style

	// UI elements
	Border      style.Style
	BorderFocus style.Style
	Selection   style.Style

	// Swatches tell adjacent regions apart.
	Swatches []style.Style
}

// Default returns the dark amber theme.
func Default() *Theme {
	fg := func(r, g, b uint8) style.Style { return style.New().Foreground(style.RGB(r, g, b)) }

	return &Theme{
		// Deep blacks with a blue undertone
		Background: style.New().Background(style.RGB(12, 12, 16)),
		Surface:    style.New().Background(style.RGB(22, 22, 28)),

		Text:      fg(240, 238, 232),
		TextMuted: fg(100, 98, 92),
		Title:     fg(255, 183, 77).Bold(true),

		Accent:    fg(255, 183, 77),
		AccentDim: fg(180, 130, 60),

		Success: fg(134, 239, 172),
		Warning: fg(255, 138, 101),
		Error:   fg(255, 110, 90),
		Info:    fg(77, 182, 172),

		Border:      fg(80, 80, 96),
		BorderFocus: fg(255, 183, 77),
		Selection:   style.New().Background(style.RGB(60, 60, 80)).Bold(true),

		Swatches: []style.Style{
			fg(79, 195, 247),
			fg(134, 239, 172),
			fg(192, 132, 252),
			fg(77, 182, 172),
			fg(253, 224, 71),
		},
	}
}

// Mono returns a theme that relies on modifiers only, for terminals
// without color.
func Mono() *Theme {
	plain := style.New()
	return &Theme{
		Text:        plain,
		TextMuted:   plain.Dim(true),
		Title:       plain.Bold(true),
		Accent:      plain.Bold(true),
		AccentDim:   plain,
		Success:     plain,
		Warning:     plain.Bold(true),
		Error:       plain.Bold(true).Underline(true),
		Info:        plain,
		Border:      plain,
		BorderFocus: plain.Bold(true),
		Selection:   plain.Reverse(true),
		Swatches:    []style.Style{plain},
	}
}

// ForProfile picks Mono for terminals that cannot show color and Default
// otherwise. Colors are downsampled by the backend, so every color profile
// shares the Default theme.
func ForProfile(p termenv.Profile) *Theme {
	if p == termenv.Ascii {
		return Mono()
	}
	return Default()
}

// Swatch returns the i-th swatch, cycling through the list.
func (t *Theme) Swatch(i int) style.Style {
	if len(t.Swatches) == 0 {
		return style.New()
	}
	return t.Swatches[((i%len(t.Swatches))+len(t.Swatches))%len(t.Swatches)]
}
