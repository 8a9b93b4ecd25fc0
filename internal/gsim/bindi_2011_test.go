package gsim

import (
	"testing"

	"enceladus/internal/imt"
)

func TestBindiEtAl2011PGA(t *testing.T) {
	sites := &SitesContext{Vs30: []float64{400, 800, 200, 100}}
	rup := &RuptureContext{Mag: 5.5, Rake: 90}
	dists := &DistancesContext{Rjb: []float64{10, 10, 40, 80}}

	mean, _ := evalModel(t, "BindiEtAl2011", sites, rup, dists,
		imt.PGA(), []StdDevType{StdDevTotal})

	checkVector(t, "mean", mean, []float64{
		-1.94330384444, -2.31632262951, -3.60234166505, -5.08533754683,
	}, 1e-10)
}

func TestBindiEtAl2011PGV(t *testing.T) {
	sites := &SitesContext{Vs30: []float64{400, 800, 200, 100}}
	rup := &RuptureContext{Mag: 5.5, Rake: 90}
	dists := &DistancesContext{Rjb: []float64{10, 10, 40, 80}}

	mean, stddevs := evalModel(t, "BindiEtAl2011", sites, rup, dists,
		imt.PGV(), []StdDevType{StdDevTotal})

	checkVector(t, "mean", mean, []float64{
		-2.79809736305, -3.27012730712, -4.17939810827, -5.024322575,
	}, 1e-10)
	checkVector(t, "sigma", stddevs[0], []float64{0.332, 0.332, 0.332, 0.332}, 1e-12)
}

func TestBindiEtAl2011FaultStyles(t *testing.T) {
	sites := &SitesContext{Vs30: []float64{400}}
	dists := &DistancesContext{Rjb: []float64{10}}

	cases := []struct {
		rake float64
		want float64
	}{
		{-70, -2.30089530938}, // normal
		{0, -2.31033590826},   // strike slip
	}
	for _, c := range cases {
		rup := &RuptureContext{Mag: 5.5, Rake: c.rake}
		mean, _ := evalModel(t, "BindiEtAl2011", sites, rup, dists,
			imt.PGA(), []StdDevType{StdDevTotal})
		checkVector(t, "mean", mean[:1], []float64{c.want}, 1e-10)
	}
}

func TestBindiEtAl2011AboveHingeMagnitude(t *testing.T) {
	sites := &SitesContext{Vs30: []float64{400, 800}}
	rup := &RuptureContext{Mag: 7, Rake: 90}
	dists := &DistancesContext{Rjb: []float64{10, 10}}

	mean, _ := evalModel(t, "BindiEtAl2011", sites, rup, dists,
		imt.PGA(), []StdDevType{StdDevTotal})

	checkVector(t, "mean", mean, []float64{
		-0.791910693593, -1.16492947866,
	}, 1e-10)
}
