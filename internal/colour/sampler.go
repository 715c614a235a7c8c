package colour

import (
	"fmt"
	"math/rand"
)

// shuffleSeed is the fixed seed for the shuffle transform. Keeping it
// constant makes shuffled palettes reproducible across runs.
const shuffleSeed = 333

// Sample evaluates fn at n evenly spaced parameters across [0, 1], inclusive
// of both endpoints (t=0 alone when n is 1), and returns the colours in
// increasing parameter order.
//
// When reverse is set the sampled sequence is reversed. When shuffle is set
// the sampled sequence is permuted by a Fisher-Yates shuffle seeded with a
// fixed constant. Shuffle takes precedence: with both flags set the
// permutation is applied to the unreversed sequence and reverse has no
// observable effect.
func Sample(fn Func, n int, reverse, shuffle bool) ([]RGB, error) {
	if fn == nil {
		return nil, fmt.Errorf("colour function cannot be nil")
	}
	if n < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", n)
	}

	colours := make([]RGB, n)
	if n == 1 {
		colours[0] = fn(0)
		return applyTransforms(colours, reverse, shuffle), nil
	}

	for i := range colours {
		colours[i] = fn(float64(i) / float64(n-1))
	}
	return applyTransforms(colours, reverse, shuffle), nil
}

// applyTransforms applies the order transforms to a sampled sequence.
func applyTransforms(colours []RGB, reverse, shuffle bool) []RGB {
	if shuffle {
		r := rand.New(rand.NewSource(shuffleSeed))
		r.Shuffle(len(colours), func(i, j int) {
			colours[i], colours[j] = colours[j], colours[i]
		})
		return colours
	}
	if reverse {
		for i, j := 0, len(colours)-1; i < j; i, j = i+1, j-1 {
			colours[i], colours[j] = colours[j], colours[i]
		}
	}
	return colours
}
