// Package eventset samples stochastic event sets: realizations of the
// seismicity of a source model over a time span, built by sampling each
// rupture's occurrence count under a Poisson temporal occurrence model.
package eventset

import (
	"fmt"

	"enceladus/internal/gsim"
	"enceladus/internal/source"
	"enceladus/internal/tom"
)

// SourceSites pairs a source with the sites it may affect. Filters
// prune these pairs before ruptures are generated.
type SourceSites struct {
	Source source.Source
	Sites  *gsim.SitesContext
}

// RuptureSites pairs a rupture with the sites it may affect.
type RuptureSites struct {
	Rupture source.Rupture
	Sites   *gsim.SitesContext
}

// SourceFilter prunes source-sites pairs, typically by distance. The
// returned slice must preserve the input order of the pairs it keeps.
type SourceFilter func([]SourceSites) []SourceSites

// RuptureFilter prunes rupture-sites pairs the same way.
type RuptureFilter func([]RuptureSites) []RuptureSites

// Occurrence is one event of the set: a sampled rupture occurrence
// together with the source it came from.
type Occurrence struct {
	Source  source.Source
	Rupture source.Rupture
}

// Sampler draws one stochastic event set: each rupture of each source
// appears as many times as its sampled occurrence count, sources in
// input order, each rupture's occurrences contiguous.
//
// A failure while processing a source aborts the sampling with an error
// naming that source.
type Sampler struct {
	pairs         []SourceSites
	tom           *tom.PoissonTOM
	ruptureFilter RuptureFilter

	next  int
	queue []Occurrence
	err   error
}

// Options configures the optional site-based pruning of a Sampler.
type Options struct {
	// Sites the event set is computed for. Filters receive it alongside
	// each source and rupture.
	Sites *gsim.SitesContext
	// SourceFilter, when set, prunes sources before their ruptures are
	// generated.
	SourceFilter SourceFilter
	// RuptureFilter, when set, prunes each source's ruptures before
	// occurrence sampling.
	RuptureFilter RuptureFilter
}

// NewSampler builds a sampler over the sources for the given time span
// in years.
func NewSampler(sources []source.Source, timeSpan float64, opts Options) (*Sampler, error) {
	t, err := tom.NewPoissonTOM(timeSpan)
	if err != nil {
		return nil, err
	}

	pairs := make([]SourceSites, 0, len(sources))
	for _, src := range sources {
		pairs = append(pairs, SourceSites{Source: src, Sites: opts.Sites})
	}
	if opts.SourceFilter != nil {
		pairs = opts.SourceFilter(pairs)
	}
	return &Sampler{
		pairs:         pairs,
		tom:           t,
		ruptureFilter: opts.RuptureFilter,
	}, nil
}

// Next returns the next rupture occurrence of the event set. It returns
// false when the set is exhausted. After an error or exhaustion every
// further call returns the same result.
func (s *Sampler) Next() (source.Rupture, bool, error) {
	occ, ok, err := s.NextOccurrence()
	return occ.Rupture, ok, err
}

// NextOccurrence is Next plus the source the occurrence came from.
func (s *Sampler) NextOccurrence() (Occurrence, bool, error) {
	if s.err != nil {
		return Occurrence{}, false, s.err
	}
	for len(s.queue) == 0 {
		if s.next >= len(s.pairs) {
			return Occurrence{}, false, nil
		}
		pair := s.pairs[s.next]
		s.next++
		if err := s.load(pair); err != nil {
			s.err = fmt.Errorf("An error occurred with source id=%s. Error: %s",
				pair.Source.SourceID(), err)
			return Occurrence{}, false, s.err
		}
	}
	occ := s.queue[0]
	s.queue = s.queue[1:]
	return occ, true, nil
}

// load materializes one source's ruptures, applies the rupture filter
// and queues the sampled occurrences.
func (s *Sampler) load(pair SourceSites) error {
	it, err := pair.Source.IterRuptures(s.tom)
	if err != nil {
		return err
	}
	var rups []RuptureSites
	for {
		rup, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		rups = append(rups, RuptureSites{Rupture: rup, Sites: pair.Sites})
	}
	if s.ruptureFilter != nil {
		rups = s.ruptureFilter(rups)
	}
	for _, rs := range rups {
		n, err := rs.Rupture.SampleNumberOfOccurrences()
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			s.queue = append(s.queue, Occurrence{Source: pair.Source, Rupture: rs.Rupture})
		}
	}
	return nil
}

// Collect drains the sampler into a slice.
func (s *Sampler) Collect() ([]source.Rupture, error) {
	var out []source.Rupture
	for {
		rup, ok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, rup)
	}
}
