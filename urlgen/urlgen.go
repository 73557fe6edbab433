// Package urlgen produces short codes for the URL shortener service.
package urlgen

import (
	"math/rand/v2"

	"github.com/ryan-syed/URLShortener/base62"
)

// MaxCodeLength is the upper bound on generated short codes. Encodings longer
// than this keep only their leading (most significant) characters; shorter
// ones pass through without padding.
const MaxCodeLength = 8

// RandomSource yields uniformly distributed draws in [0, 1). Implementations
// must be safe for concurrent use: the generator is shared across requests.
type RandomSource interface {
	Float64() float64
}

// systemSource delegates to the math/rand/v2 global generator, which is
// seeded by the runtime and safe for concurrent callers.
type systemSource struct{}

func (systemSource) Float64() float64 { return rand.Float64() }

// DefaultSource returns the process-wide random source.
func DefaultSource() RandomSource {
	return systemSource{}
}

// Generator turns random draws into short codes.
type Generator struct {
	src RandomSource
}

// New creates a Generator backed by the given source. A nil source falls
// back to DefaultSource.
func New(src RandomSource) *Generator {
	if src == nil {
		src = DefaultSource()
	}
	return &Generator{src: src}
}

// Code draws once from the source, encodes the draw as Base62, and truncates
// the result to MaxCodeLength characters. Each call consumes exactly one draw
// and touches no other shared state.
func (g *Generator) Code() string {
	code := base62.Encode(g.src.Float64())
	if len(code) > MaxCodeLength {
		code = code[:MaxCodeLength]
	}
	return code
}
