package resolver

import (
	"context"
	"errors"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Strategy converts one descriptor classification into a continuous colour
// function. A strategy error never reaches the caller of Resolve; the
// resolver absorbs it and substitutes the default ramp.
type Strategy interface {
	// Name returns the strategy name, used in debug logging.
	Name() string

	// Resolve builds a continuous colour function from the descriptor.
	Resolve(ctx context.Context, d Descriptor) (colour.Func, error)
}

// ErrNoColours is returned when a colour source yields no usable colours.
var ErrNoColours = errors.New("no colours found in source")

// ErrUnknownName is returned when a name descriptor matches no known ramp
// or palette. Classification normally prevents this; it guards against a
// mis-built Descriptor.
var ErrUnknownName = errors.New("unknown ramp or palette name")
