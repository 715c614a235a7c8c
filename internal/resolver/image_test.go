package resolver

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

// testPNGImage builds the two-tone fixture image shared by the image tests.
func testPNGImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if x < 16 {
				img.Set(x, y, color.RGBA{R: 220, G: 40, B: 40, A: 255})
			} else {
				img.Set(x, y, color.RGBA{R: 40, G: 40, B: 220, A: 255})
			}
		}
	}
	return img
}

// writeTestPNG writes the two-tone PNG fixture and returns its path.
func writeTestPNG(t *testing.T) string {
	t.Helper()

	img := testPNGImage()
	path := filepath.Join(t.TempDir(), "fixture.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	return path
}

func TestImageStrategyResolvesFixture(t *testing.T) {
	path := writeTestPNG(t)

	s := ImageStrategy{}
	fn, err := s.Resolve(context.Background(), Descriptor{Kind: KindImage, Source: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Anchors are ordered dark to light, so the ramp runs blue to red.
	if got := fn(0).Hex(); got != "#2828DC" {
		t.Errorf("fn(0) = %s, want #2828DC", got)
	}
	if got := fn(1).Hex(); got != "#DC2828" {
		t.Errorf("fn(1) = %s, want #DC2828", got)
	}
}

func TestImageStrategyFailures(t *testing.T) {
	s := ImageStrategy{}

	tests := []struct {
		name   string
		source string
	}{
		{name: "missing file", source: "/no/such/image.png"},
		{name: "empty path", source: ""},
		{name: "unreachable url", source: "http://127.0.0.1:1/a.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Resolve(context.Background(), Descriptor{Kind: KindImage, Source: tt.source}); err == nil {
				t.Error("expected a resolution failure")
			}
		})
	}
}

func TestImageStrategyRejectsNonImageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-image.png")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	s := ImageStrategy{}
	if _, err := s.Resolve(context.Background(), Descriptor{Kind: KindImage, Source: path}); err == nil {
		t.Error("expected a decode failure")
	}
}

// slowPNGServer serves the fixture PNG after the given delay.
func slowPNGServer(t *testing.T, delay time.Duration) *httptest.Server {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, testPNGImage()); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(delay)
		w.Write(buf.Bytes())
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestImageStrategyHonoursTimeout(t *testing.T) {
	srv := slowPNGServer(t, 500*time.Millisecond)

	s := ImageStrategy{Timeout: 50 * time.Millisecond}
	if _, err := s.Resolve(context.Background(), Descriptor{Kind: KindImage, Source: srv.URL + "/fixture.png"}); err == nil {
		t.Error("expected a timeout failure")
	}
}

func TestResolverTimeoutBoundsImageFetch(t *testing.T) {
	srv := slowPNGServer(t, 500*time.Millisecond)
	r := New(Config{Timeout: 50 * time.Millisecond})

	p, err := r.Resolve(context.Background(), Classify([]string{srv.URL + "/fixture.png"}), Options{N: 4, OrangeBlue: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := p.ToHex(), defaultColours(t, 4, true); !slices.Equal(got, want) {
		t.Errorf("slow image fetch resolved to %v, want the default ramp %v", got, want)
	}
}

func TestResolverUsesImageFixture(t *testing.T) {
	path := writeTestPNG(t)
	r := New(Config{})

	p, err := r.Resolve(context.Background(), Classify([]string{path}), Options{N: 2, OrangeBlue: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := p.ToHex()
	if got[0] != "#2828DC" || got[1] != "#DC2828" {
		t.Errorf("image palette = %v, want [#2828DC #DC2828]", got)
	}
}
