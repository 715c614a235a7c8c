package resolver

import (
	"context"
	"fmt"
	"time"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/image"
)

// defaultImageAnchors is how many representative colours are extracted from
// an image to anchor its ramp.
const defaultImageAnchors = 6

// ImageStrategy resolves a file path or URL by decoding the image,
// extracting representative anchor colours and interpolating across them.
// Unreachable sources, decode failures and single-colour images are all
// resolution failures.
type ImageStrategy struct {
	// Loader loads the image content. Nil means a SmartLoader handling
	// both local paths and HTTP(S) URLs.
	Loader image.Loader

	// Anchors is how many anchor colours to extract. Values below 2 mean
	// defaultImageAnchors.
	Anchors int

	// Timeout bounds URL fetches when the default loader is used. Zero
	// means the fetch helper's default.
	Timeout time.Duration
}

// Name returns the strategy name.
func (ImageStrategy) Name() string { return "image" }

// Resolve loads the image and builds a gradient over its dominant colours.
func (s ImageStrategy) Resolve(ctx context.Context, d Descriptor) (colour.Func, error) {
	loader := s.Loader
	if loader == nil {
		loader = &image.SmartLoader{Timeout: s.Timeout}
	}
	anchors := s.Anchors
	if anchors < 2 {
		anchors = defaultImageAnchors
	}

	img, err := loader.Load(ctx, d.Source)
	if err != nil {
		return nil, fmt.Errorf("image source: %w", err)
	}

	colours, err := colour.AnchorsFromImage(img, anchors)
	if err != nil {
		return nil, fmt.Errorf("image source: %w", err)
	}
	return colour.Gradient(colours)
}
