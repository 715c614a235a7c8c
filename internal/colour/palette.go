package colour

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Palette is the final output of a resolution: an ordered sequence of
// discrete colours together with the settings that produced it. A Palette is
// a value; it is never mutated after construction.
type Palette struct {
	Colours []RGB
	N       int
	Reverse bool
	Shuffle bool
}

// NewPalette creates a Palette from an already-sampled colour sequence.
func NewPalette(colours []RGB, reverse, shuffle bool) *Palette {
	return &Palette{
		Colours: colours,
		N:       len(colours),
		Reverse: reverse,
		Shuffle: shuffle,
	}
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colours)
}

// ToHex returns the palette colours as canonical hex strings.
func (p *Palette) ToHex() []string {
	hexColours := make([]string, len(p.Colours))
	for i, c := range p.Colours {
		hexColours[i] = c.Hex()
	}
	return hexColours
}

// ColourJSON represents a single colour in JSON output format.
type ColourJSON struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count    int          `json:"count"`
	Reversed bool         `json:"reversed"`
	Shuffled bool         `json:"shuffled"`
	Colours  []ColourJSON `json:"colours"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	colours := make([]ColourJSON, len(p.Colours))
	for i, c := range p.Colours {
		colours[i] = ColourJSON{Hex: c.Hex(), RGB: c}
	}
	return json.MarshalIndent(PaletteJSON{
		Count:    len(p.Colours),
		Reversed: p.Reverse,
		Shuffled: p.Shuffle,
		Colours:  colours,
	}, "", "  ")
}

// String returns a human-readable representation of the palette.
func (p *Palette) String() string {
	if len(p.Colours) == 0 {
		return "Empty palette"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Palette with %d colours:\n", len(p.Colours))
	for i, c := range p.Colours {
		fmt.Fprintf(&b, "  %2d: %s (%s)\n", i+1, c.Hex(), c.String())
	}
	return b.String()
}
