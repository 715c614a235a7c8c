// Package colour provides the colour primitives behind palette resolution:
// hex-representable RGB values, continuous colour ramps, the Brewer anchor
// table and the discrete sampler.
package colour

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the canonical hex form of the colour: uppercase with a
// leading '#' (e.g. "#1A2B3C"). Two colours are equal iff their canonical
// hex forms are equal.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Colorful converts the colour to a go-colorful colour for blending.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromColorful converts a go-colorful colour back to 8-bit RGB,
// clamping out-of-gamut channels first.
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// ParseHex parses a hex colour string into an RGB value. The leading '#' is
// optional and hex digits may be in either case; the parsed value always
// renders back in canonical form via Hex.
func ParseHex(s string) (RGB, error) {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "#") {
		t = "#" + t
	}
	if len(t) != 7 {
		return RGB{}, fmt.Errorf("invalid hex colour %q: want 6 hex digits", s)
	}
	c, err := colorful.Hex(t)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return FromColorful(c), nil
}

// ParseHexList parses a slice of hex colour strings, failing on the first
// unparseable entry.
func ParseHexList(values []string) ([]RGB, error) {
	colours := make([]RGB, len(values))
	for i, v := range values {
		c, err := ParseHex(v)
		if err != nil {
			return nil, err
		}
		colours[i] = c
	}
	return colours, nil
}

// mustParseHex parses a built-in hex constant, panicking on failure.
// Only used for the compiled-in anchor tables, where a parse failure is a
// programming error.
func mustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c RGB) float64 {
	r := gammaCorrect(float64(c.R) / 255.0)
	g := gammaCorrect(float64(c.G) / 255.0)
	b := gammaCorrect(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
