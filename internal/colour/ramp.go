package colour

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Func is a continuous colour function: a deterministic mapping from a
// parameter in [0, 1] to a colour. Parameters outside the interval are
// clamped to the nearest endpoint.
type Func func(t float64) RGB

// Gradient builds a continuous colour function by piecewise blending across
// the given anchors in order, with the first anchor at t=0 and the last at
// t=1. Blending happens in HCL space for perceptually smoother transitions;
// anchor positions themselves are returned exactly, so sampling the endpoints
// reproduces the input colours byte for byte.
func Gradient(anchors []RGB) (Func, error) {
	if len(anchors) < 2 {
		return nil, fmt.Errorf("gradient requires at least 2 anchor colours, got %d", len(anchors))
	}

	stops := make([]colorful.Color, len(anchors))
	for i, a := range anchors {
		stops[i] = a.Colorful()
	}

	segments := float64(len(anchors) - 1)
	return func(t float64) RGB {
		if t <= 0 {
			return anchors[0]
		}
		if t >= 1 {
			return anchors[len(anchors)-1]
		}

		pos := t * segments
		i := int(pos)
		if i >= len(anchors)-1 {
			i = len(anchors) - 2
		}
		frac := pos - float64(i)
		if frac == 0 {
			return anchors[i]
		}
		return FromColorful(stops[i].BlendHcl(stops[i+1], frac))
	}, nil
}

// GradientFromHex builds a gradient from hex colour strings.
func GradientFromHex(values []string) (Func, error) {
	anchors, err := ParseHexList(values)
	if err != nil {
		return nil, err
	}
	return Gradient(anchors)
}

// mustGradient builds a gradient over compiled-in hex anchors, panicking on
// failure. Only used for the built-in ramp tables.
func mustGradient(values ...string) Func {
	fn, err := GradientFromHex(values)
	if err != nil {
		panic(err)
	}
	return fn
}
