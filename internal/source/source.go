// Package source models seismic sources: generators of earthquake
// ruptures with associated occurrence probabilities.
package source

import (
	"enceladus/internal/tom"
)

// Rupture is a single earthquake rupture whose occurrence count over
// the model time span can be sampled.
type Rupture interface {
	SampleNumberOfOccurrences() (int, error)
}

// RuptureIterator walks the ruptures of a source one at a time. Next
// returns false when the iteration is exhausted.
type RuptureIterator interface {
	Next() (Rupture, bool, error)
}

// Source is a seismic source: an identified generator of ruptures under
// a temporal occurrence model.
type Source interface {
	SourceID() string
	IterRuptures(t *tom.PoissonTOM) (RuptureIterator, error)
}
