package resolver

import (
	"context"

	"github.com/jmylchreest/swatch/internal/colour"
)

// DefaultStrategy always succeeds. It serves both the absent descriptor and
// every other strategy's failure, selecting between the two built-in
// diverging ramps.
type DefaultStrategy struct {
	// OrangeBlue selects the Tableau-style orange to blue ramp; false
	// selects the earth to emerald ramp.
	OrangeBlue bool
}

// Name returns the strategy name.
func (DefaultStrategy) Name() string { return "default" }

// Resolve returns the selected built-in default ramp. It never fails.
func (s DefaultStrategy) Resolve(_ context.Context, _ Descriptor) (colour.Func, error) {
	return colour.DefaultRamp(s.OrangeBlue), nil
}
