// Package interval produces the randomized delays that pace polling and
// delivery so the traffic pattern resembles human cadence rather than a
// fixed timer.
package interval

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

// Generator draws jittered intervals from an injectable random source.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded from the shared global source.
func New() *Generator {
	return NewWithSource(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewWithSource returns a Generator over the given source. Tests pass a
// fixed-seed PCG to make draws reproducible.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// Interval draws a delay in seconds from [low, high].
//
// The draw is two-stage: a normal sample centered at (low+high)/2 with
// standard deviation (high-low)/4 is clamped into range, then its
// integer part is recombined with a fresh uniform fractional component
// and clamped again. The resampling biases toward round-ish waits while
// keeping sub-second jitter.
func (g *Generator) Interval(low, high float64) (float64, error) {
	if low >= high {
		return 0, fmt.Errorf("interval: low bound %v must be less than high bound %v", low, high)
	}

	mean := (low + high) / 2
	scale := (high - low) / 4

	draw := clamp(g.rnd.NormFloat64()*scale+mean, low, high)

	final := float64(int(draw)) + g.rnd.Float64()

	return clamp(final, low, high), nil
}

// Straw reports true with the given probability.
func (g *Generator) Straw(probability float64) (bool, error) {
	if probability < 0 || probability > 1 {
		return false, fmt.Errorf("interval: probability %v must be within [0, 1]", probability)
	}
	return g.rnd.Float64() < probability, nil
}

// Sleep blocks for a fresh Interval(low, high) seconds or until the
// context is cancelled.
func (g *Generator) Sleep(ctx context.Context, low, high float64) error {
	seconds, err := g.Interval(low, high)
	if err != nil {
		return err
	}

	timer := time.NewTimer(time.Duration(seconds * float64(time.Second)))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
