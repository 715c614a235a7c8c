package colour

import (
	"slices"
	"testing"
)

func testRamp(t *testing.T) Func {
	t.Helper()
	fn, err := GradientFromHex([]string{"#000000", "#FF0000", "#FFFFFF"})
	if err != nil {
		t.Fatalf("failed to build test ramp: %v", err)
	}
	return fn
}

func TestSampleLength(t *testing.T) {
	fn := testRamp(t)
	for _, n := range []int{1, 2, 3, 7, 16, 100} {
		colours, err := Sample(fn, n, false, false)
		if err != nil {
			t.Fatalf("Sample(n=%d) unexpected error: %v", n, err)
		}
		if len(colours) != n {
			t.Errorf("Sample(n=%d) returned %d colours", n, len(colours))
		}
	}
}

func TestSampleEndpoints(t *testing.T) {
	fn := testRamp(t)
	colours, err := Sample(fn, 2, false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if colours[0].Hex() != "#000000" {
		t.Errorf("first colour = %s, want #000000", colours[0].Hex())
	}
	if colours[1].Hex() != "#FFFFFF" {
		t.Errorf("last colour = %s, want #FFFFFF", colours[1].Hex())
	}
}

func TestSampleSingleColourUsesStart(t *testing.T) {
	fn := testRamp(t)
	colours, err := Sample(fn, 1, false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if colours[0].Hex() != "#000000" {
		t.Errorf("Sample(n=1) = %s, want the t=0 colour #000000", colours[0].Hex())
	}
}

func TestSampleReverse(t *testing.T) {
	fn := testRamp(t)
	forward, err := Sample(fn, 7, false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reversed, err := Sample(fn, 7, true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range forward {
		if forward[i] != reversed[len(reversed)-1-i] {
			t.Fatalf("reversed[%d] = %s, want %s", len(reversed)-1-i,
				reversed[len(reversed)-1-i].Hex(), forward[i].Hex())
		}
	}
}

func TestSampleShuffleDeterministic(t *testing.T) {
	fn := testRamp(t)
	first, err := Sample(fn, 9, false, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Sample(fn, 9, false, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(first, second) {
		t.Error("shuffled output differs between identical calls")
	}
}

func TestSampleShufflePermutesBaseSequence(t *testing.T) {
	fn := testRamp(t)
	base, err := Sample(fn, 9, false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	shuffled, err := Sample(fn, 9, false, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(shuffled) != len(base) {
		t.Fatalf("shuffle changed length: %d vs %d", len(shuffled), len(base))
	}
	counts := make(map[RGB]int)
	for i := range base {
		counts[base[i]]++
		counts[shuffled[i]]--
	}
	for c, n := range counts {
		if n != 0 {
			t.Errorf("shuffle is not a permutation: %s off by %d", c.Hex(), n)
		}
	}
}

func TestSampleShuffleTakesPrecedenceOverReverse(t *testing.T) {
	fn := testRamp(t)
	shuffled, err := Sample(fn, 9, false, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	both, err := Sample(fn, 9, true, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(shuffled, both) {
		t.Error("setting reverse changed the shuffled output; shuffle should win")
	}
}

func TestSampleInvalidArguments(t *testing.T) {
	fn := testRamp(t)
	if _, err := Sample(fn, 0, false, false); err == nil {
		t.Error("expected error for n=0")
	}
	if _, err := Sample(fn, -3, false, false); err == nil {
		t.Error("expected error for negative n")
	}
	if _, err := Sample(nil, 5, false, false); err == nil {
		t.Error("expected error for nil colour function")
	}
}
