// Package tom provides temporal occurrence models: probability
// distributions over how many times a seismic event occurs within a
// time span.
package tom

import (
	"fmt"
	"math"
	"math/rand"
)

// PoissonTOM models event occurrence as a time independent Poisson
// process: events happen one at a time, at a constant rate, independent
// of what happened before.
type PoissonTOM struct {
	timeSpan float64
}

// NewPoissonTOM builds a Poisson model over a time span in years.
func NewPoissonTOM(timeSpan float64) (*PoissonTOM, error) {
	if timeSpan <= 0 {
		return nil, fmt.Errorf("tom: time span must be positive, got %v", timeSpan)
	}
	return &PoissonTOM{timeSpan: timeSpan}, nil
}

// MustPoissonTOM is NewPoissonTOM panicking on an invalid span.
func MustPoissonTOM(timeSpan float64) *PoissonTOM {
	t, err := NewPoissonTOM(timeSpan)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeSpan returns the model's time span in years.
func (t *PoissonTOM) TimeSpan() float64 { return t.timeSpan }

// ProbOneOrMore returns the probability of at least one occurrence for
// an event with the given annual rate: 1 - exp(-rate * span).
func (t *PoissonTOM) ProbOneOrMore(rate float64) float64 {
	return 1 - math.Exp(-rate*t.timeSpan)
}

// ProbOne returns the probability of exactly one occurrence:
// rate * span * exp(-rate * span).
func (t *PoissonTOM) ProbOne(rate float64) float64 {
	rt := rate * t.timeSpan
	return rt * math.Exp(-rt)
}

// SampleNumberOfOccurrences draws an occurrence count from the Poisson
// distribution with mean rate * span.
func (t *PoissonTOM) SampleNumberOfOccurrences(rate float64, rng *rand.Rand) int {
	return poisson(rate*t.timeSpan, rng)
}

// poisson samples Poisson(lambda) by multiplying uniforms until the
// product drops below exp(-lambda) (Knuth). For large means the
// exponential is split to keep the threshold away from underflow.
func poisson(lambda float64, rng *rand.Rand) int {
	n := 0
	for lambda > 500 {
		// Expected counts this large do not occur with realistic rates
		// and spans, but stay correct anyway.
		n += poisson(500, rng)
		lambda -= 500
	}
	threshold := math.Exp(-lambda)
	p := rng.Float64()
	for p > threshold {
		n++
		p *= rng.Float64()
	}
	return n
}
