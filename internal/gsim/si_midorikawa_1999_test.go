package gsim

import (
	"math"
	"testing"

	"enceladus/internal/imt"
)

func checkVector(t *testing.T, label string, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d values, want %d", label, len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > tol {
			t.Fatalf("%s[%d] = %.12f, want %.12f", label, i, got[i], want[i])
		}
	}
}

func evalModel(t *testing.T, name string, sites *SitesContext, rup *RuptureContext,
	dists *DistancesContext, m imt.IMT, stddevTypes []StdDevType) ([]float64, [][]float64) {
	t.Helper()
	model, err := GetModel(name)
	if err != nil {
		t.Fatalf("get %s: %v", name, err)
	}
	mean, stddevs, err := MeanAndStdDevs(model, sites, rup, dists, m, stddevTypes)
	if err != nil {
		t.Fatalf("evaluate %s: %v", name, err)
	}
	return mean, stddevs
}

func TestSiMidorikawa1999Asc(t *testing.T) {
	rup := &RuptureContext{Mag: 6.5, HypoDepth: 10}
	dists := &DistancesContext{Rrup: []float64{10, 25, 50}}

	mean, stddevs := evalModel(t, "SiMidorikawa1999Asc", nil, rup, dists,
		imt.PGV(), []StdDevType{StdDevTotal})

	checkVector(t, "mean", mean, []float64{
		3.38878587299, 2.62586649484, 1.90428584843,
	}, 1e-10)
	checkVector(t, "sigma", stddevs[0], []float64{
		0.529594571389, 0.491578450797, 0.460517018599,
	}, 1e-10)
}

func TestSiMidorikawa1999SInter(t *testing.T) {
	rup := &RuptureContext{Mag: 6.5, HypoDepth: 10}
	dists := &DistancesContext{Rrup: []float64{10, 25, 50}}

	mean, stddevs := evalModel(t, "SiMidorikawa1999SInter", nil, rup, dists,
		imt.PGV(), []StdDevType{StdDevTotal})

	checkVector(t, "mean", mean, []float64{
		3.34273417113, 2.57981479298, 1.85823414657,
	}, 1e-10)
	checkVector(t, "sigma", stddevs[0], []float64{
		0.44533658993, 0.460517018599, 0.460517018599,
	}, 1e-10)
}

func TestSiMidorikawa1999SSlab(t *testing.T) {
	rup := &RuptureContext{Mag: 6.5, HypoDepth: 10}
	dists := &DistancesContext{Rrup: []float64{10, 25, 50}}

	mean, stddevs := evalModel(t, "SiMidorikawa1999SSlab", nil, rup, dists,
		imt.PGV(), []StdDevType{StdDevTotal})

	checkVector(t, "mean", mean, []float64{
		3.66509608415, 2.902176706, 2.18059605959,
	}, 1e-10)
	checkVector(t, "sigma", stddevs[0], []float64{
		0.39576883687, 0.460517018599, 0.460517018599,
	}, 1e-10)
}

func TestSiMidorikawa1999RejectsPGA(t *testing.T) {
	model, err := GetModel("SiMidorikawa1999Asc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	rup := &RuptureContext{Mag: 6.5, HypoDepth: 10}
	dists := &DistancesContext{Rrup: []float64{10}}
	if _, _, err := MeanAndStdDevs(model, nil, rup, dists, imt.PGA(), nil); err == nil {
		t.Fatal("PGA accepted by a PGV-only model")
	}
}
