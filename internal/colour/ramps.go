package colour

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Rainbow sweeps the HSV hue wheel at full saturation and value, from red
// at t=0 to magenta at t=1. The sweep stops short of a full circle so the
// two ends stay visually distinct.
func Rainbow(t float64) RGB {
	h := clamp01(t) * 300.0
	return FromColorful(colorful.Hsv(h, 1.0, 1.0))
}

// Built-in scientific ramps, matched case-sensitively by name.
// The anchor-table ramps blend piecewise between fixed stops.
var ramps = map[string]Func{
	"rainbow": Rainbow,
	"heat":    mustGradient("#FF0000", "#FF5500", "#FFAA00", "#FFFF00", "#FFFF80", "#FFFFFF"),
	"terrain": mustGradient("#00A600", "#63C600", "#E6E600", "#E9BD3A", "#ECB176", "#EFC2B3", "#F2F2F2"),
	"topo":    mustGradient("#4C00FF", "#0019FF", "#0080FF", "#00E5FF", "#00FF4D", "#4DFF00", "#E6FF00", "#FFFF00", "#FFE0B3"),
	"cm":      mustGradient("#80FFFF", "#B3FFFF", "#E6FFFF", "#FFFFFF", "#FFE6FF", "#FFB3FF", "#FF80FF"),
	"gray":    mustGradient("#4D4D4D", "#737373", "#999999", "#BFBFBF", "#E6E6E6"),

	// Perceptually uniform family.
	"viridis": mustGradient("#440154", "#482374", "#404387", "#345E8D", "#29788E", "#20908C", "#22A784", "#44BE70", "#79D151", "#BDDE26", "#FDE725"),
	"magma":   mustGradient("#000004", "#1C1044", "#4F127B", "#812581", "#B5367A", "#E55064", "#FB8761", "#FEC287", "#FCFDBF"),
	"plasma":  mustGradient("#0D0887", "#4B03A1", "#7D03A8", "#A82296", "#CB4679", "#E56B5D", "#F89441", "#FDC328", "#F0F921"),
	"inferno": mustGradient("#000004", "#280B54", "#65156E", "#9F2A63", "#D44842", "#F57D15", "#FAC127", "#FCFFA4"),
}

// Tableau-style orange to blue diverging ramp: the standard default.
var defaultOrangeBlue = mustGradient("#9E3D22", "#D45B21", "#F69035", "#F5BB68", "#DEDEDE", "#A7C9E2", "#67A0CB", "#3679A8", "#26456E")

// Earth to emerald diverging ramp: the alternate default.
var defaultEarthEmerald = mustGradient("#4E342E", "#795548", "#A1887F", "#D7CCC8", "#E8F5E9", "#A5D6A7", "#66BB6A", "#2E7D32", "#00695C")

// Ramp returns the built-in continuous ramp with the given name.
// Names are matched case-sensitively.
func Ramp(name string) (Func, bool) {
	fn, ok := ramps[name]
	return fn, ok
}

// RampNames returns the names of all built-in ramps in sorted order.
func RampNames() []string {
	names := make([]string, 0, len(ramps))
	for name := range ramps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRamp returns one of the two built-in default ramps. The orange to
// blue diverging ramp is the standard default; passing false selects the
// earth to emerald alternate. The returned function never fails and serves
// as the terminal fallback for every other colour source.
func DefaultRamp(orangeBlue bool) Func {
	if orangeBlue {
		return defaultOrangeBlue
	}
	return defaultEarthEmerald
}

// clamp01 clamps v to the [0, 1] interval.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
