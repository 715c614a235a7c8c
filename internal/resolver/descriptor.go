// Package resolver classifies colour descriptors and resolves them into
// continuous colour functions through a fixed-priority strategy chain.
package resolver

import (
	"strconv"
	"strings"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Kind identifies the structural classification of a descriptor.
type Kind int

const (
	// KindAbsent means no descriptor was supplied.
	KindAbsent Kind = iota
	// KindList is an explicit list of two or more colours.
	KindList
	// KindRamp is the name of a built-in scientific ramp.
	KindRamp
	// KindBrewer is the name of a bundled Brewer palette.
	KindBrewer
	// KindRemote is a numeric identifier for the remote palette service.
	KindRemote
	// KindImage is a file path or URL pointing at an image.
	KindImage
)

// String returns the classification name.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindList:
		return "list"
	case KindRamp:
		return "ramp"
	case KindBrewer:
		return "brewer"
	case KindRemote:
		return "remote"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// Descriptor is the classified form of a caller-supplied colour source.
// Exactly one variant applies; which payload field is meaningful depends on
// Kind.
type Descriptor struct {
	Kind   Kind
	List   []string // KindList: hex colour strings, in order
	Name   string   // KindRamp, KindBrewer
	ID     int      // KindRemote
	Source string   // KindImage: file path or URL
}

// Classify maps raw string arguments onto exactly one descriptor variant.
// Classification is structural and follows a strict priority:
//
//  1. two or more values form a colour list;
//  2. a single value matching a built-in ramp name (case-sensitive);
//  3. a single value matching a Brewer key (case-insensitive);
//  4. a single non-negative integer is a remote palette identifier;
//  5. any other single value is treated as an image source;
//  6. no values means no descriptor.
//
// There is no backtracking: once classified, a descriptor is handled by that
// variant's strategy alone.
func Classify(args []string) Descriptor {
	values := make([]string, 0, len(args))
	for _, a := range args {
		if v := strings.TrimSpace(a); v != "" {
			values = append(values, v)
		}
	}

	switch {
	case len(values) == 0:
		return Descriptor{Kind: KindAbsent}
	case len(values) >= 2:
		return Descriptor{Kind: KindList, List: values}
	}

	v := values[0]
	if _, ok := colour.Ramp(v); ok {
		return Descriptor{Kind: KindRamp, Name: v}
	}
	if _, ok := colour.BrewerLookup(v); ok {
		return Descriptor{Kind: KindBrewer, Name: v}
	}
	if id, err := strconv.Atoi(v); err == nil && id >= 0 {
		return Descriptor{Kind: KindRemote, ID: id}
	}
	return Descriptor{Kind: KindImage, Source: v}
}
