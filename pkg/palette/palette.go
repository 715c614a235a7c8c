// Package palette is the public API for resolving heterogeneous colour
// descriptors into fixed-size, ordered colour sequences for charts.
//
// A descriptor can be a built-in ramp name ("viridis"), a Brewer palette
// name ("Spectral", matched case-insensitively), a numeric remote palette
// identifier, an explicit list of hex colours, an image path or URL, or
// nothing at all. Resolution never fails on bad or unreachable input: every
// source failure falls back to a built-in default ramp, so a valid palette
// of exactly the requested size always comes back.
package palette

import (
	"context"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/resolver"
)

// DefaultN is the number of colours produced when no count is configured.
const DefaultN = 7

// ServiceURLEnv is the environment variable overriding the remote palette
// service root.
const ServiceURLEnv = "SWATCH_PALETTE_SERVICE"

// DefaultRamp selects which built-in ramp backs the fallback.
type DefaultRamp int

const (
	// OrangeBlue is the Tableau-style orange to blue diverging ramp.
	OrangeBlue DefaultRamp = iota
	// EarthEmerald is the earth to emerald diverging ramp.
	EarthEmerald
)

// Palette is the resolved colour sequence plus the settings that produced
// it. Colours are canonical uppercase "#RRGGBB" strings.
type Palette struct {
	Colours []string
	N       int
	Reverse bool
	Shuffle bool
}

type config struct {
	n          int
	reverse    bool
	shuffle    bool
	ramp       DefaultRamp
	serviceURL string
	timeout    time.Duration
	logger     hclog.Logger
}

// Option configures a single resolution.
type Option func(*config)

// WithN sets the number of colours to produce.
func WithN(n int) Option {
	return func(c *config) { c.n = n }
}

// WithReverse reverses the sampled sequence.
func WithReverse() Option {
	return func(c *config) { c.reverse = true }
}

// WithShuffle permutes the sampled sequence with a fixed-seed shuffle, so
// shuffled output is reproducible across runs. Shuffle takes precedence
// over reverse when both are set.
func WithShuffle() Option {
	return func(c *config) { c.shuffle = true }
}

// WithDefault selects which built-in ramp serves as the fallback.
func WithDefault(r DefaultRamp) Option {
	return func(c *config) { c.ramp = r }
}

// WithServiceURL overrides the remote palette service root.
func WithServiceURL(url string) Option {
	return func(c *config) { c.serviceURL = url }
}

// WithTimeout bounds remote palette and image fetches.
func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// WithLogger attaches a logger; strategy fallbacks are reported at Debug.
func WithLogger(l hclog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Resolve turns a descriptor into a palette of discrete colours.
//
// The descriptor slice is interpreted structurally: empty means no
// descriptor (the default ramp), a single element is a ramp name, Brewer
// key, remote identifier or image source, and two or more elements are an
// explicit colour list. The returned error is only ever a configuration
// error (a colour count below 1); descriptor problems of any kind resolve
// to the default ramp instead.
func Resolve(ctx context.Context, descriptor []string, opts ...Option) (*Palette, error) {
	cfg := config{
		n:          DefaultN,
		serviceURL: os.Getenv(ServiceURLEnv),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := resolver.New(resolver.Config{
		Logger:     cfg.logger,
		ServiceURL: cfg.serviceURL,
		Timeout:    cfg.timeout,
	})

	p, err := r.Resolve(ctx, resolver.Classify(descriptor), resolver.Options{
		N:          cfg.n,
		Reverse:    cfg.reverse,
		Shuffle:    cfg.shuffle,
		OrangeBlue: cfg.ramp == OrangeBlue,
	})
	if err != nil {
		return nil, err
	}

	return &Palette{
		Colours: p.ToHex(),
		N:       p.N,
		Reverse: p.Reverse,
		Shuffle: p.Shuffle,
	}, nil
}

// RampNames returns the built-in scientific ramp names, sorted.
func RampNames() []string {
	return colour.RampNames()
}

// BrewerNames returns the bundled Brewer palette names, sorted.
func BrewerNames() []string {
	return colour.BrewerNames()
}
