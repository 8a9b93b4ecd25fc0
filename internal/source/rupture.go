package source

import (
	"errors"
	"math/rand"

	"enceladus/internal/gsim"
	"enceladus/internal/tom"
)

// BaseRupture carries the physical description of a rupture, shared by
// probabilistic and scenario ruptures.
type BaseRupture struct {
	Mag            float64
	Rake           float64
	TectonicRegion gsim.TectonicRegion
	HypoDepth      float64
}

func (r *BaseRupture) validate() error {
	if r.Mag <= 0 {
		return errors.New("magnitude must be positive")
	}
	if r.HypoDepth <= 0 {
		return errors.New("rupture hypocenter must have positive depth")
	}
	return nil
}

// ProbabilisticRupture is a rupture with an annual occurrence rate
// under a Poisson temporal occurrence model.
type ProbabilisticRupture struct {
	BaseRupture
	OccurrenceRate float64

	tom *tom.PoissonTOM
	rng *rand.Rand
}

// NewProbabilisticRupture validates and builds a probabilistic rupture.
// rng drives occurrence sampling and is shared across the ruptures of a
// calculation.
func NewProbabilisticRupture(base BaseRupture, occurrenceRate float64,
	t *tom.PoissonTOM, rng *rand.Rand) (*ProbabilisticRupture, error) {

	if err := base.validate(); err != nil {
		return nil, err
	}
	if occurrenceRate <= 0 {
		return nil, errors.New("occurrence rate must be positive")
	}
	return &ProbabilisticRupture{
		BaseRupture:    base,
		OccurrenceRate: occurrenceRate,
		tom:            t,
		rng:            rng,
	}, nil
}

// ProbOneOrMore is the probability the rupture occurs at least once
// within the model time span.
func (r *ProbabilisticRupture) ProbOneOrMore() float64 {
	return r.tom.ProbOneOrMore(r.OccurrenceRate)
}

// ProbOne is the probability the rupture occurs exactly once within the
// model time span.
func (r *ProbabilisticRupture) ProbOne() float64 {
	return r.tom.ProbOne(r.OccurrenceRate)
}

// SampleNumberOfOccurrences draws how many times the rupture occurs
// within the model time span.
func (r *ProbabilisticRupture) SampleNumberOfOccurrences() (int, error) {
	return r.tom.SampleNumberOfOccurrences(r.OccurrenceRate, r.rng), nil
}
