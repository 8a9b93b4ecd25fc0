package eventset

import (
	"errors"
	"testing"

	"enceladus/internal/gsim"
	"enceladus/internal/source"
	"enceladus/internal/tom"
)

type fakeRupture struct {
	occurrences int
}

func (r *fakeRupture) SampleNumberOfOccurrences() (int, error) {
	return r.occurrences, nil
}

type fakeSource struct {
	id       string
	ruptures []source.Rupture
}

func (s *fakeSource) SourceID() string { return s.id }

func (s *fakeSource) IterRuptures(t *tom.PoissonTOM) (source.RuptureIterator, error) {
	return &sliceIterator{ruptures: s.ruptures}, nil
}

type sliceIterator struct {
	ruptures []source.Rupture
	next     int
}

func (it *sliceIterator) Next() (source.Rupture, bool, error) {
	if it.next >= len(it.ruptures) {
		return nil, false, nil
	}
	rup := it.ruptures[it.next]
	it.next++
	return rup, true, nil
}

type failSource struct {
	fakeSource
}

func (s *failSource) IterRuptures(t *tom.PoissonTOM) (source.RuptureIterator, error) {
	return nil, errors.New("Something bad happened")
}

func fixture() (r11, r10, r12, r21 *fakeRupture, s1, s2 *fakeSource) {
	r11 = &fakeRupture{occurrences: 1}
	r10 = &fakeRupture{occurrences: 0}
	r12 = &fakeRupture{occurrences: 2}
	r21 = &fakeRupture{occurrences: 1}
	s1 = &fakeSource{id: "1", ruptures: []source.Rupture{r11, r10, r12}}
	s2 = &fakeSource{id: "2", ruptures: []source.Rupture{r21}}
	return
}

func collect(t *testing.T, sources []source.Source, opts Options) []source.Rupture {
	t.Helper()
	s, err := NewSampler(sources, 15, opts)
	if err != nil {
		t.Fatalf("new sampler: %v", err)
	}
	out, err := s.Collect()
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	return out
}

func assertSequence(t *testing.T, got, want []source.Rupture) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d occurrences, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("occurrence %d is not the expected rupture", i)
		}
	}
}

func TestSamplerNoFilter(t *testing.T) {
	r11, _, r12, r21, s1, s2 := fixture()

	got := collect(t, []source.Source{s1, s2}, Options{})
	assertSequence(t, got, []source.Rupture{r11, r12, r12, r21})
}

func TestSamplerSourceFilter(t *testing.T) {
	r11, _, r12, _, s1, s2 := fixture()
	sites := &gsim.SitesContext{Vs30: []float64{600, 800, 400}}

	keepFirst := func(pairs []SourceSites) []SourceSites {
		return pairs[:1]
	}
	got := collect(t, []source.Source{s1, s2}, Options{
		Sites:        sites,
		SourceFilter: keepFirst,
	})
	assertSequence(t, got, []source.Rupture{r11, r12, r12})
}

func TestSamplerRuptureFilter(t *testing.T) {
	r11, _, _, _, s1, s2 := fixture()
	sites := &gsim.SitesContext{Vs30: []float64{600, 800, 400}}

	keepFirstSource := func(pairs []SourceSites) []SourceSites {
		return pairs[:1]
	}
	keepFirstRupture := func(pairs []RuptureSites) []RuptureSites {
		return pairs[:1]
	}
	got := collect(t, []source.Source{s1, s2}, Options{
		Sites:         sites,
		SourceFilter:  keepFirstSource,
		RuptureFilter: keepFirstRupture,
	})
	assertSequence(t, got, []source.Rupture{r11})
}

func TestSamplerSourceError(t *testing.T) {
	_, _, _, _, s1, s2 := fixture()
	fail := &failSource{fakeSource: *s2}

	s, err := NewSampler([]source.Source{s1, fail}, 15, Options{})
	if err != nil {
		t.Fatalf("new sampler: %v", err)
	}
	_, err = s.Collect()
	if err == nil {
		t.Fatal("collect succeeded, want source error")
	}
	want := "An error occurred with source id=2. Error: Something bad happened"
	if err.Error() != want {
		t.Fatalf("error = %q, want %q", err, want)
	}

	// The error sticks.
	if _, _, err2 := s.Next(); err2 == nil || err2.Error() != want {
		t.Fatalf("second call error = %v", err2)
	}
}

func TestSamplerRejectsBadTimeSpan(t *testing.T) {
	if _, err := NewSampler(nil, 0, Options{}); err == nil {
		t.Fatal("zero time span accepted")
	}
}

func TestSamplerNextOccurrenceReportsSource(t *testing.T) {
	r11, _, r12, r21, s1, s2 := fixture()

	s, err := NewSampler([]source.Source{s1, s2}, 15, Options{})
	if err != nil {
		t.Fatalf("new sampler: %v", err)
	}
	want := []Occurrence{
		{Source: s1, Rupture: r11},
		{Source: s1, Rupture: r12},
		{Source: s1, Rupture: r12},
		{Source: s2, Rupture: r21},
	}
	for i, w := range want {
		occ, ok, err := s.NextOccurrence()
		if err != nil || !ok {
			t.Fatalf("next %d: ok=%v err=%v", i, ok, err)
		}
		if occ != w {
			t.Fatalf("occurrence %d came from source %q, want %q",
				i, occ.Source.SourceID(), w.Source.SourceID())
		}
	}
	if _, ok, _ := s.NextOccurrence(); ok {
		t.Fatal("sampler yielded past exhaustion")
	}
}

func TestSamplerNextStreamsInOrder(t *testing.T) {
	r11, _, r12, r21, s1, s2 := fixture()

	s, err := NewSampler([]source.Source{s1, s2}, 15, Options{})
	if err != nil {
		t.Fatalf("new sampler: %v", err)
	}
	want := []source.Rupture{r11, r12, r12, r21}
	for i, w := range want {
		rup, ok, err := s.Next()
		if err != nil || !ok {
			t.Fatalf("next %d: ok=%v err=%v", i, ok, err)
		}
		if rup != w {
			t.Fatalf("occurrence %d is not the expected rupture", i)
		}
	}
	if _, ok, _ := s.Next(); ok {
		t.Fatal("sampler yielded past exhaustion")
	}
}
