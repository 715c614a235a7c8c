package resolver

import (
	"context"
	"slices"
	"testing"

	"github.com/jmylchreest/swatch/internal/colour"
)

// defaultColours samples the built-in default ramp the way the resolver's
// fallback does.
func defaultColours(t *testing.T, n int, orangeBlue bool) []string {
	t.Helper()
	colours, err := colour.Sample(colour.DefaultRamp(orangeBlue), n, false, false)
	if err != nil {
		t.Fatalf("failed to sample default ramp: %v", err)
	}
	return colour.NewPalette(colours, false, false).ToHex()
}

func resolveHex(t *testing.T, r *Resolver, args []string, opts Options) []string {
	t.Helper()
	p, err := r.Resolve(context.Background(), Classify(args), opts)
	if err != nil {
		t.Fatalf("Resolve(%v) unexpected error: %v", args, err)
	}
	if p.Len() != opts.N {
		t.Fatalf("Resolve(%v) returned %d colours, want %d", args, p.Len(), opts.N)
	}
	return p.ToHex()
}

func TestResolveAlwaysReturnsNColours(t *testing.T) {
	r := New(Config{ServiceURL: "http://127.0.0.1:1"})

	descriptors := [][]string{
		nil,
		{"viridis"},
		{"Spectral"},
		{"#CAF60D", "#19312A"},
		{"NotARealPalette"},
		{"/no/such/image.png"},
		{"999999"},
	}
	for _, args := range descriptors {
		for _, n := range []int{1, 2, 7, 13} {
			got := resolveHex(t, r, args, Options{N: n, OrangeBlue: true})
			if len(got) != n {
				t.Errorf("Resolve(%v, n=%d) returned %d colours", args, n, len(got))
			}
		}
	}
}

func TestResolveVectorEndpointPreservation(t *testing.T) {
	r := New(Config{})

	got := resolveHex(t, r, []string{"#CAF60D", "#18D33A"}, Options{N: 2, OrangeBlue: true})
	if got[0] != "#CAF60D" || got[1] != "#18D33A" {
		t.Errorf("two-colour list with n=2 = %v, want the endpoints back", got)
	}

	got = resolveHex(t, r, []string{"#CAF60D", "#18D33A"}, Options{N: 1, OrangeBlue: true})
	if got[0] != "#CAF60D" {
		t.Errorf("two-colour list with n=1 = %v, want [#CAF60D]", got)
	}
}

func TestResolveVectorFiveColours(t *testing.T) {
	r := New(Config{})
	list := []string{"#CAF60D", "#18D33A", "#4255EC", "#E60873", "#19312A"}

	got := resolveHex(t, r, list, Options{N: 5, OrangeBlue: true})
	if got[0] != "#CAF60D" {
		t.Errorf("first colour = %s, want #CAF60D", got[0])
	}
	if got[4] != "#19312A" {
		t.Errorf("last colour = %s, want #19312A", got[4])
	}
}

func TestResolveVectorUnparseableFallsBack(t *testing.T) {
	r := New(Config{})

	got := resolveHex(t, r, []string{"#CAF60D", "definitely-not-a-colour"}, Options{N: 5, OrangeBlue: true})
	want := defaultColours(t, 5, true)
	if !slices.Equal(got, want) {
		t.Errorf("unparseable list should fall back to the default ramp: got %v want %v", got, want)
	}
}

func TestResolveBrewerAnyCasingDoesNotFallBack(t *testing.T) {
	r := New(Config{})
	fallback := defaultColours(t, 7, true)

	for _, key := range []string{"Spectral", "spectral", "SPECTRAL"} {
		got := resolveHex(t, r, []string{key}, Options{N: 7, OrangeBlue: true})
		if slices.Equal(got, fallback) {
			t.Errorf("Resolve(%q) fell back to the default ramp", key)
		}
		if got[0] != "#9E0142" {
			t.Errorf("Resolve(%q) first colour = %s, want Spectral's #9E0142", key, got[0])
		}
	}
}

func TestResolveUnknownNameFallsBackToDefault(t *testing.T) {
	r := New(Config{ServiceURL: "http://127.0.0.1:1"})

	got := resolveHex(t, r, []string{"/not/a/palette/or/image"}, Options{N: 7, OrangeBlue: true})
	want := defaultColours(t, 7, true)
	if !slices.Equal(got, want) {
		t.Errorf("unknown descriptor should resolve to the orange-blue default: got %v want %v", got, want)
	}
}

func TestResolveRemoteFailureFallsBack(t *testing.T) {
	// Nothing listens here; the fetch fails immediately.
	r := New(Config{ServiceURL: "http://127.0.0.1:1"})

	got := resolveHex(t, r, []string{"894243"}, Options{N: 7, OrangeBlue: true})
	want := defaultColours(t, 7, true)
	if !slices.Equal(got, want) {
		t.Errorf("remote failure should resolve to the default ramp: got %v want %v", got, want)
	}
}

func TestResolveAbsentDescriptorSelectsDefaultVariant(t *testing.T) {
	r := New(Config{})

	orangeBlue := resolveHex(t, r, nil, Options{N: 7, OrangeBlue: true})
	earthEmerald := resolveHex(t, r, nil, Options{N: 7, OrangeBlue: false})

	if slices.Equal(orangeBlue, earthEmerald) {
		t.Error("the two default ramp variants should produce different sequences")
	}
	if !slices.Equal(orangeBlue, defaultColours(t, 7, true)) {
		t.Error("absent descriptor did not sample the orange-blue ramp")
	}
	if !slices.Equal(earthEmerald, defaultColours(t, 7, false)) {
		t.Error("absent descriptor did not sample the earth-emerald ramp")
	}
}

func TestResolveReverseProperty(t *testing.T) {
	r := New(Config{})

	forward := resolveHex(t, r, []string{"viridis"}, Options{N: 7, OrangeBlue: true})
	backward := resolveHex(t, r, []string{"viridis"}, Options{N: 7, Reverse: true, OrangeBlue: true})

	for i := range forward {
		if forward[i] != backward[len(backward)-1-i] {
			t.Fatalf("reverse mismatch at %d: %s vs %s", i, forward[i], backward[len(backward)-1-i])
		}
	}
}

func TestResolveShuffleDeterministic(t *testing.T) {
	r := New(Config{})
	opts := Options{N: 9, Shuffle: true, OrangeBlue: true}

	first := resolveHex(t, r, []string{"Spectral"}, opts)
	second := resolveHex(t, r, []string{"Spectral"}, opts)
	if !slices.Equal(first, second) {
		t.Error("shuffled resolution differs between identical calls")
	}
}

func TestResolveInvalidCount(t *testing.T) {
	r := New(Config{})
	if _, err := r.Resolve(context.Background(), Classify(nil), Options{N: 0}); err == nil {
		t.Error("expected error for n=0")
	}
}
