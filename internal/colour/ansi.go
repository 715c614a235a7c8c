package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 4
)

// SwatchPreview renders a colour as a solid ANSI truecolor block.
// Width specifies how many characters wide the block should be.
func SwatchPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// PaletteBar renders a palette as one contiguous bar of colour swatches,
// the preview handed back alongside resolved colour sequences.
func PaletteBar(colours []RGB, width int) string {
	var b strings.Builder
	for _, c := range colours {
		b.WriteString(SwatchPreview(c, width))
	}
	return b.String()
}

// FormatColourWithPreview formats a colour with its swatch and hex code.
func FormatColourWithPreview(c RGB, width int) string {
	return fmt.Sprintf("%s %s", SwatchPreview(c, width), c.Hex())
}

// SupportsANSIColours reports whether stdout is a terminal that likely
// supports ANSI colour codes. Preview rendering is skipped when it
// reports false.
func SupportsANSIColours() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
