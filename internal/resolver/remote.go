package resolver

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jmylchreest/swatch/internal/colour"
	httputil "github.com/jmylchreest/swatch/internal/util/http"
)

// DefaultServiceURL is the palette service queried when no override is
// configured.
const DefaultServiceURL = "http://www.colourlovers.com"

// hexLinePattern matches one palette colour per line of the service's
// line-oriented response body.
var hexLinePattern = regexp.MustCompile(`<hex>([0-9A-Fa-f]{6})</hex>`)

// RemoteStrategy resolves a numeric identifier by fetching
// <base-url>/api/palette/<id> and scanning the body for hex colour tags.
// Network errors, non-2xx responses and bodies without at least two colours
// are all resolution failures.
type RemoteStrategy struct {
	// BaseURL is the palette service root. Empty means DefaultServiceURL.
	BaseURL string

	// Timeout bounds the fetch. Zero means the fetch helper's default.
	Timeout time.Duration
}

// Name returns the strategy name.
func (RemoteStrategy) Name() string { return "remote" }

// Resolve fetches the remote palette and builds a gradient over its colours
// in body order.
func (s RemoteStrategy) Resolve(ctx context.Context, d Descriptor) (colour.Func, error) {
	base := s.BaseURL
	if base == "" {
		base = DefaultServiceURL
	}
	url := fmt.Sprintf("%s/api/palette/%d", strings.TrimRight(base, "/"), d.ID)

	body, err := httputil.Fetch(ctx, url, httputil.FetchOptions{Timeout: s.Timeout})
	if err != nil {
		return nil, fmt.Errorf("palette service: %w", err)
	}

	anchors, err := scanHexLines(body)
	if err != nil {
		return nil, err
	}
	return colour.Gradient(anchors)
}

// scanHexLines collects the colours tagged in a line-oriented body, in line
// order.
func scanHexLines(body []byte) ([]colour.RGB, error) {
	var anchors []colour.RGB
	scanner := bufio.NewScanner(bytes.NewReader(body))
	for scanner.Scan() {
		for _, m := range hexLinePattern.FindAllStringSubmatch(scanner.Text(), -1) {
			c, err := colour.ParseHex("#" + m[1])
			if err != nil {
				return nil, fmt.Errorf("malformed palette body: %w", err)
			}
			anchors = append(anchors, c)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("malformed palette body: %w", err)
	}
	if len(anchors) == 0 {
		return nil, ErrNoColours
	}
	return anchors, nil
}
