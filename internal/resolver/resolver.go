package resolver

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/image"
)

// Config carries the collaborator settings shared by every resolution.
type Config struct {
	// Logger receives strategy fallback events at Debug level.
	// Nil means no logging.
	Logger hclog.Logger

	// ServiceURL overrides the remote palette service root.
	ServiceURL string

	// Timeout bounds remote palette and image fetches.
	Timeout time.Duration

	// ImageLoader overrides how image sources are loaded.
	ImageLoader image.Loader

	// ImageAnchors overrides how many anchor colours are extracted from an
	// image source.
	ImageAnchors int
}

// Options carries the per-call sampling settings.
type Options struct {
	// N is the number of colours to produce. Must be at least 1.
	N int

	// Reverse reverses the sampled sequence.
	Reverse bool

	// Shuffle permutes the sampled sequence with a fixed-seed shuffle.
	// When set together with Reverse, the shuffle wins; see colour.Sample.
	Shuffle bool

	// OrangeBlue selects which built-in default ramp backs the fallback:
	// true for the orange to blue diverging ramp, false for earth to
	// emerald.
	OrangeBlue bool
}

// Resolver turns classified descriptors into palettes. Each resolution call
// is independent; a Resolver is safe for concurrent use.
type Resolver struct {
	log    hclog.Logger
	remote RemoteStrategy
	img    ImageStrategy
	vector VectorStrategy
	ramp   RampStrategy
	brewer BrewerStrategy
}

// New creates a Resolver from the given configuration.
func New(cfg Config) *Resolver {
	log := cfg.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Resolver{
		log:    log,
		remote: RemoteStrategy{BaseURL: cfg.ServiceURL, Timeout: cfg.Timeout},
		img:    ImageStrategy{Loader: cfg.ImageLoader, Anchors: cfg.ImageAnchors, Timeout: cfg.Timeout},
	}
}

// Resolve classifies nothing itself: it takes an already-classified
// descriptor, picks the single strategy for its kind, and samples the
// resulting continuous function into exactly opts.N colours. Strategy
// failures never propagate; they are logged and replaced by the default
// ramp. The only error paths are invalid sampling settings.
func (r *Resolver) Resolve(ctx context.Context, d Descriptor, opts Options) (*colour.Palette, error) {
	if opts.N < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", opts.N)
	}

	fn := r.resolveFunc(ctx, d, opts.OrangeBlue)
	colours, err := colour.Sample(fn, opts.N, opts.Reverse, opts.Shuffle)
	if err != nil {
		return nil, err
	}
	return colour.NewPalette(colours, opts.Reverse, opts.Shuffle), nil
}

// resolveFunc runs the priority chain: the descriptor's kind names exactly
// one strategy, and that strategy's failure falls straight to the default
// ramp rather than to the next classification.
func (r *Resolver) resolveFunc(ctx context.Context, d Descriptor, orangeBlue bool) colour.Func {
	fallback := DefaultStrategy{OrangeBlue: orangeBlue}

	strategy := r.strategyFor(d.Kind)
	if strategy == nil {
		strategy = fallback
	}

	fn, err := strategy.Resolve(ctx, d)
	if err != nil {
		r.log.Debug("strategy failed, falling back to default ramp",
			"strategy", strategy.Name(), "descriptor", d.Kind.String(), "error", err)
		fn, _ = fallback.Resolve(ctx, d)
	}
	return fn
}

// strategyFor maps a classification onto its strategy. KindAbsent has no
// strategy; the caller substitutes the default ramp directly.
func (r *Resolver) strategyFor(k Kind) Strategy {
	switch k {
	case KindList:
		return r.vector
	case KindRamp:
		return r.ramp
	case KindBrewer:
		return r.brewer
	case KindRemote:
		return r.remote
	case KindImage:
		return r.img
	default:
		return nil
	}
}
