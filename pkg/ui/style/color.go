package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/odvcencio/tessera/pkg/errors"
)

// Color is a terminal color. The zero value means "not set", which lets a
// style layer leave the color of the layer beneath it untouched.
type Color uint32

const (
	colorNamed   Color = 0x01000000
	colorIndexed Color = 0x02000000
	colorRGB     Color = 0x04000000
	colorKind    Color = 0xFF000000
)

// Reset restores the terminal's own default color.
const Reset Color = 0x08000000

// Named ANSI colors, in palette order.
const (
	Black Color = colorNamed | iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	Gray
	DarkGray
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightMagenta
	LightCyan
	White
)

var colorNames = []string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "gray",
	"darkgray", "lightred", "lightgreen", "lightyellow", "lightblue",
	"lightmagenta", "lightcyan", "white",
}

var colorAliases = map[string]Color{
	"grey":     Gray,
	"darkgrey": DarkGray,
	"silver":   Gray,
	"default":  Reset,
	"reset":    Reset,
}

// Indexed returns a 256-color palette entry.
func Indexed(n uint8) Color {
	return colorIndexed | Color(n)
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return colorRGB | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// IsSet reports whether the color carries a value.
func (c Color) IsSet() bool { return c != 0 }

// IsReset reports whether c is the terminal default color.
func (c Color) IsReset() bool { return c == Reset }

// IsNamed reports whether c is one of the 16 named ANSI colors.
func (c Color) IsNamed() bool { return c&colorKind == colorNamed }

// IsIndexed reports whether c is a 256-color palette entry.
func (c Color) IsIndexed() bool { return c&colorKind == colorIndexed }

// IsRGB reports whether c is a 24-bit color.
func (c Color) IsRGB() bool { return c&colorKind == colorRGB }

// Index returns the palette index of a named or indexed color.
func (c Color) Index() (uint8, bool) {
	if c.IsNamed() || c.IsIndexed() {
		return uint8(c & 0xFF), true
	}
	return 0, false
}

// RGB returns the components of a 24-bit color, or zeros otherwise.
func (c Color) RGB() (r, g, b uint8) {
	if !c.IsRGB() {
		return 0, 0, 0
	}
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the #rrggbb form of a 24-bit color, or "" otherwise.
func (c Color) Hex() string {
	if !c.IsRGB() {
		return ""
	}
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()
}

func (c Color) String() string {
	switch {
	case !c.IsSet():
		return "none"
	case c.IsReset():
		return "reset"
	case c.IsNamed():
		return colorNames[c&0xFF]
	case c.IsIndexed():
		return strconv.Itoa(int(c & 0xFF))
	case c.IsRGB():
		return c.Hex()
	}
	return fmt.Sprintf("Color(%#x)", uint32(c))
}

// Downsample converts c to the closest color the profile can display.
// Colors are dropped entirely for the ASCII profile.
func (c Color) Downsample(p termenv.Profile) Color {
	if !c.IsSet() || c.IsReset() {
		return c
	}
	var tc termenv.Color
	switch {
	case c.IsRGB():
		tc = termenv.RGBColor(c.Hex())
	case c.IsIndexed():
		tc = termenv.ANSI256Color(c & 0xFF)
	default:
		tc = termenv.ANSIColor(c & 0xFF)
	}
	switch v := p.Convert(tc).(type) {
	case termenv.ANSIColor:
		return colorNamed | Color(v)
	case termenv.ANSI256Color:
		return Indexed(uint8(v))
	case termenv.RGBColor:
		return c
	default:
		return 0
	}
}

// ParseColor parses a color name, "#rgb", "#rrggbb", "rgb(r,g,b)" or a
// palette index between 0 and 255.
func ParseColor(s string) (Color, error) {
	raw := s
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, errors.New(errors.ErrCodeInvalidInput, "empty color")
	}

	if strings.HasPrefix(s, "#") {
		hex := s
		if len(hex) == 4 {
			hex = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
		}
		cf, err := colorful.Hex(hex)
		if err != nil {
			return 0, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid hex color").
				WithContext("color", raw)
		}
		r, g, b := cf.RGB255()
		return RGB(r, g, b), nil
	}

	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		parts := strings.Split(s[4:len(s)-1], ",")
		if len(parts) != 3 {
			return 0, errors.New(errors.ErrCodeInvalidInput, "rgb() needs three components").
				WithContext("color", raw)
		}
		var comps [3]uint8
		for i, part := range parts {
			n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
			if err != nil {
				return 0, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid rgb component").
					WithContext("color", raw)
			}
			comps[i] = uint8(n)
		}
		return RGB(comps[0], comps[1], comps[2]), nil
	}

	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return Indexed(uint8(n)), nil
	}

	name := strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
	for i, candidate := range colorNames {
		if candidate == name {
			return colorNamed | Color(i), nil
		}
	}
	if c, ok := colorAliases[name]; ok {
		return c, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown color").WithContext("color", raw)
}
