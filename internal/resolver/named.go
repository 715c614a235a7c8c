package resolver

import (
	"context"
	"fmt"

	"github.com/jmylchreest/swatch/internal/colour"
)

// RampStrategy resolves the name of a built-in scientific ramp directly to
// that ramp's continuous function. Names match case-sensitively.
type RampStrategy struct{}

// Name returns the strategy name.
func (RampStrategy) Name() string { return "ramp" }

// Resolve looks up the named built-in ramp.
func (RampStrategy) Resolve(_ context.Context, d Descriptor) (colour.Func, error) {
	fn, ok := colour.Ramp(d.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, d.Name)
	}
	return fn, nil
}

// BrewerStrategy resolves a Brewer palette name, matched case-insensitively,
// by interpolating across the table's anchor colours.
type BrewerStrategy struct{}

// Name returns the strategy name.
func (BrewerStrategy) Name() string { return "brewer" }

// Resolve looks up the Brewer anchors and builds a gradient over them.
func (BrewerStrategy) Resolve(_ context.Context, d Descriptor) (colour.Func, error) {
	anchors, ok := colour.BrewerLookup(d.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, d.Name)
	}
	return colour.Gradient(anchors)
}
