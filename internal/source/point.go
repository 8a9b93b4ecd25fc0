package source

import (
	"errors"
	"math/rand"

	"enceladus/internal/gsim"
	"enceladus/internal/mfd"
	"enceladus/internal/tom"
)

// PointSource generates one probabilistic rupture per magnitude bin of
// its magnitude frequency distribution, all at the source's hypocentral
// depth and rake.
type PointSource struct {
	ID             string
	TectonicRegion gsim.TectonicRegion
	MFD            *mfd.ModifiedGR
	Rake           float64
	HypoDepth      float64

	rng *rand.Rand
}

// NewPointSource validates and builds a point source. rng drives the
// occurrence sampling of the ruptures it generates.
func NewPointSource(id string, region gsim.TectonicRegion, dist *mfd.ModifiedGR,
	rake, hypoDepth float64, rng *rand.Rand) (*PointSource, error) {

	if id == "" {
		return nil, errors.New("source id is required")
	}
	if dist == nil {
		return nil, errors.New("magnitude frequency distribution is required")
	}
	if hypoDepth <= 0 {
		return nil, errors.New("rupture hypocenter must have positive depth")
	}
	return &PointSource{
		ID:             id,
		TectonicRegion: region,
		MFD:            dist,
		Rake:           rake,
		HypoDepth:      hypoDepth,
		rng:            rng,
	}, nil
}

func (s *PointSource) SourceID() string { return s.ID }

// IterRuptures yields one rupture per occurrence rate bin. Bins with a
// zero rate are skipped: they cannot form a valid probabilistic rupture
// and contribute nothing.
func (s *PointSource) IterRuptures(t *tom.PoissonTOM) (RuptureIterator, error) {
	return &pointRuptureIterator{source: s, tom: t, rates: s.MFD.AnnualOccurrenceRates()}, nil
}

type pointRuptureIterator struct {
	source *PointSource
	tom    *tom.PoissonTOM
	rates  []mfd.Rate
	next   int
}

func (it *pointRuptureIterator) Next() (Rupture, bool, error) {
	for it.next < len(it.rates) {
		bin := it.rates[it.next]
		it.next++
		if bin.Rate <= 0 {
			continue
		}
		rup, err := NewProbabilisticRupture(BaseRupture{
			Mag:            bin.Mag,
			Rake:           it.source.Rake,
			TectonicRegion: it.source.TectonicRegion,
			HypoDepth:      it.source.HypoDepth,
		}, bin.Rate, it.tom, it.source.rng)
		if err != nil {
			return nil, false, err
		}
		return rup, true, nil
	}
	return nil, false, nil
}
