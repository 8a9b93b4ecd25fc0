package gsim

import (
	"testing"

	"enceladus/internal/imt"
)

func TestBergeThierryEtAl2003PGA(t *testing.T) {
	sites := &SitesContext{Vs30: []float64{800, 300}}
	rup := &RuptureContext{Mag: 5.5}
	dists := &DistancesContext{Rhypo: []float64{10, 50}}

	mean, stddevs := evalModel(t, "BergeThierryEtAl2003", sites, rup, dists,
		imt.PGA(), []StdDevType{StdDevTotal})

	checkVector(t, "mean", mean, []float64{
		-1.72480203777, -3.33703068334,
	}, 1e-10)
	checkVector(t, "sigma", stddevs[0], []float64{
		0.673045622682, 0.673045622682,
	}, 1e-10)
}

func TestBergeThierryEtAl2003SA(t *testing.T) {
	sites := &SitesContext{Vs30: []float64{800, 300}}
	rup := &RuptureContext{Mag: 5.5}
	dists := &DistancesContext{Rhypo: []float64{10, 50}}

	mean, stddevs := evalModel(t, "BergeThierryEtAl2003", sites, rup, dists,
		imt.SA(1.0), []StdDevType{StdDevTotal})

	checkVector(t, "mean", mean, []float64{
		-2.86879769211, -3.99661769615,
	}, 1e-10)
	checkVector(t, "sigma", stddevs[0], []float64{
		0.860476049252, 0.860476049252,
	}, 1e-10)
}
