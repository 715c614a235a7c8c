package resolver

import (
	"context"

	"github.com/jmylchreest/swatch/internal/colour"
)

// VectorStrategy resolves an explicit colour list by piecewise interpolation
// across the given colours in order: first at t=0, last at t=1.
type VectorStrategy struct{}

// Name returns the strategy name.
func (VectorStrategy) Name() string { return "vector" }

// Resolve builds a gradient over the listed colours. It fails only when a
// listed colour cannot be parsed.
func (VectorStrategy) Resolve(_ context.Context, d Descriptor) (colour.Func, error) {
	return colour.GradientFromHex(d.List)
}
