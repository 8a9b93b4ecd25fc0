package gsim

import (
	"errors"
	"testing"

	"enceladus/internal/imt"
)

type fakeModel struct {
	caps Capabilities
}

func (f *fakeModel) Name() string               { return "Fake" }
func (f *fakeModel) Capabilities() Capabilities { return f.caps }

func (f *fakeModel) MeanAndStdDevs(sites *SitesContext, rup *RuptureContext,
	dists *DistancesContext, m imt.IMT, stddevTypes []StdDevType) ([]float64, [][]float64, error) {

	n := len(dists.Rrup)
	mean := make([]float64, n)
	stddevs := make([][]float64, len(stddevTypes))
	for i := range stddevs {
		stddevs[i] = make([]float64, n)
	}
	return mean, stddevs, nil
}

func newFakeModel() *fakeModel {
	return &fakeModel{caps: Capabilities{
		TectonicRegion: ActiveShallowCrust,
		IMTKinds:       []imt.Kind{imt.KindPGA},
		Component:      AverageHorizontal,
		StdDevs:        []StdDevType{StdDevTotal},
		SiteParams:     []string{SiteVs30},
		RuptureParams:  []string{RupMag},
		Distances:      []string{DistRrup},
	}}
}

func TestMeanAndStdDevsDispatch(t *testing.T) {
	model := newFakeModel()
	sites := &SitesContext{Vs30: []float64{600, 800}}
	rup := &RuptureContext{Mag: 6}
	dists := &DistancesContext{Rrup: []float64{10, 20}}

	mean, stddevs, err := MeanAndStdDevs(model, sites, rup, dists, imt.PGA(), []StdDevType{StdDevTotal})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mean) != 2 {
		t.Fatalf("mean has %d entries, want 2", len(mean))
	}
	if len(stddevs) != 1 || len(stddevs[0]) != 2 {
		t.Fatalf("stddevs shape %dx%d, want 1x2", len(stddevs), len(stddevs[0]))
	}
}

func TestMeanAndStdDevsRejectsUnsupportedIMT(t *testing.T) {
	model := newFakeModel()
	sites := &SitesContext{Vs30: []float64{600}}
	dists := &DistancesContext{Rrup: []float64{10}}

	_, _, err := MeanAndStdDevs(model, sites, &RuptureContext{Mag: 6}, dists, imt.PGV(), nil)
	if !errors.Is(err, ErrUnsupportedIMT) {
		t.Fatalf("got %v, want ErrUnsupportedIMT", err)
	}
}

func TestMeanAndStdDevsRejectsUnsupportedStdDev(t *testing.T) {
	model := newFakeModel()
	sites := &SitesContext{Vs30: []float64{600}}
	dists := &DistancesContext{Rrup: []float64{10}}

	_, _, err := MeanAndStdDevs(model, sites, &RuptureContext{Mag: 6}, dists,
		imt.PGA(), []StdDevType{StdDevInterEvent})
	if !errors.Is(err, ErrUnsupportedStdDev) {
		t.Fatalf("got %v, want ErrUnsupportedStdDev", err)
	}
}

func TestMeanAndStdDevsRejectsMissingField(t *testing.T) {
	model := newFakeModel()

	// Declared vs30 is absent.
	_, _, err := MeanAndStdDevs(model, &SitesContext{}, &RuptureContext{Mag: 6},
		&DistancesContext{Rrup: []float64{10}}, imt.PGA(), nil)
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("got %v, want ErrMissingField", err)
	}

	// Declared rrup is absent.
	_, _, err = MeanAndStdDevs(model, &SitesContext{Vs30: []float64{600}},
		&RuptureContext{Mag: 6}, &DistancesContext{Rjb: []float64{10}}, imt.PGA(), nil)
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("got %v, want ErrMissingField", err)
	}
}

func TestMeanAndStdDevsRejectsLengthMismatch(t *testing.T) {
	model := newFakeModel()
	sites := &SitesContext{Vs30: []float64{600, 800}}
	dists := &DistancesContext{Rrup: []float64{10}}

	_, _, err := MeanAndStdDevs(model, sites, &RuptureContext{Mag: 6}, dists, imt.PGA(), nil)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("got %v, want ErrLengthMismatch", err)
	}
}
