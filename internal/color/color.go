// Package color resolves the selection tint used by shape previews.
package color

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("color: invalid color")

// Parse resolves s to an opaque or translucent NRGBA color.
//
// Accepted forms: "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA" (the leading '#'
// is optional) and SVG 1.1 color names such as "dodgerblue".
func Parse(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	var r, g, b, a uint32
	a = 255

	var ok bool
	switch len(hex) {
	case 3, 4:
		vals := make([]uint32, len(hex))
		for i := range hex {
			if vals[i], ok = parseHex(hex[i : i+1]); !ok {
				return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
			}
			vals[i] *= 17
		}
		r, g, b = vals[0], vals[1], vals[2]
		if len(hex) == 4 {
			a = vals[3]
		}
	case 6, 8:
		vals := make([]uint32, len(hex)/2)
		for i := range vals {
			if vals[i], ok = parseHex(hex[i*2 : i*2+2]); !ok {
				return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
			}
		}
		r, g, b = vals[0], vals[1], vals[2]
		if len(hex) == 8 {
			a = vals[3]
		}
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	// #nosec G115 -- every component is in [0, 255]
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// parseHex parses one or two hex digits.
func parseHex(s string) (uint32, bool) {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return val, true
}
