package gsim

import (
	"testing"

	"enceladus/internal/imt"
)

func TestRietbrockEtAl2013PGA(t *testing.T) {
	rup := &RuptureContext{Mag: 4}
	dists := &DistancesContext{Rjb: []float64{5, 20, 80, 150}}

	mean, stddevs := evalModel(t, "RietbrockEtAl2013", nil, rup, dists,
		imt.PGA(), []StdDevType{StdDevTotal, StdDevInterEvent, StdDevIntraEvent})

	checkVector(t, "mean", mean, []float64{
		-5.0807388976, -6.12839881994, -7.61300295099, -8.72819388848,
	}, 1e-10)
	checkVector(t, "total", stddevs[0], []float64{
		1.00392710055, 1.00392710055, 1.00392710055, 1.00392710055,
	}, 1e-10)
	checkVector(t, "inter", stddevs[1], []float64{
		0.941757303035, 0.941757303035, 0.941757303035, 0.941757303035,
	}, 1e-10)
	checkVector(t, "intra", stddevs[2], []float64{
		0.352295519228, 0.352295519228, 0.352295519228, 0.352295519228,
	}, 1e-10)
}

func TestRietbrockEtAl2013PGV(t *testing.T) {
	rup := &RuptureContext{Mag: 4}
	dists := &DistancesContext{Rjb: []float64{5, 20, 80, 150}}

	mean, stddevs := evalModel(t, "RietbrockEtAl2013", nil, rup, dists,
		imt.PGV(), []StdDevType{StdDevTotal, StdDevInterEvent})

	checkVector(t, "mean", mean, []float64{
		-2.28384719974, -3.12508656542, -4.23104559774, -5.31600325347,
	}, 1e-10)
	checkVector(t, "total", stddevs[0], []float64{
		0.798997027269, 0.798997027269, 0.798997027269, 0.798997027269,
	}, 1e-10)
	checkVector(t, "inter", stddevs[1], []float64{
		0.716103963921, 0.716103963921, 0.716103963921, 0.716103963921,
	}, 1e-10)
}

func TestRietbrockEtAl2013SA(t *testing.T) {
	rup := &RuptureContext{Mag: 4}
	dists := &DistancesContext{Rjb: []float64{5, 20, 80, 150}}

	mean, _ := evalModel(t, "RietbrockEtAl2013", nil, rup, dists,
		imt.SA(0.2), []StdDevType{StdDevTotal})

	checkVector(t, "mean", mean, []float64{
		-5.14032471366, -5.89531499657, -6.9331344863, -8.00370769547,
	}, 1e-10)
}
