// Package gmf computes ground motion fields: sampled realizations of
// the shaking an earthquake rupture produces over a set of sites.
package gmf

import (
	"math"
	"math/rand"

	"enceladus/internal/gsim"
	"enceladus/internal/imt"
	"enceladus/internal/stats"
)

// NoTruncation requests sampling from the full normal distribution of
// the intensity residuals.
var NoTruncation = math.Inf(1)

// Fields holds one ground motion field per intensity measure: values in
// the measure's physical units, indexed by site then realization.
type Fields map[imt.IMT][][]float64

// GroundMotionFields samples realizations of the shaking a rupture
// produces at the given sites.
//
// truncationLevel bounds the residual distribution at that many
// standard deviations; zero disables sampling entirely and returns the
// predicted means, NoTruncation samples the unbounded distribution.
//
// Models reporting only a total standard deviation get one residual per
// site and realization. Models separating inter and intra event parts
// get an intra residual per site plus one inter residual shared by all
// sites of a realization.
func GroundMotionFields(model gsim.Model, sites *gsim.SitesContext,
	rup *gsim.RuptureContext, dists *gsim.DistancesContext, imts []imt.IMT,
	truncationLevel float64, realizations int, rng *rand.Rand) (Fields, error) {

	result := make(Fields, len(imts))
	for _, m := range imts {
		field, err := groundMotionField(model, sites, rup, dists, m,
			truncationLevel, realizations, rng)
		if err != nil {
			return nil, err
		}
		result[m] = field
	}
	return result, nil
}

func groundMotionField(model gsim.Model, sites *gsim.SitesContext,
	rup *gsim.RuptureContext, dists *gsim.DistancesContext, m imt.IMT,
	truncationLevel float64, realizations int, rng *rand.Rand) ([][]float64, error) {

	if truncationLevel == 0 {
		mean, _, err := gsim.MeanAndStdDevs(model, sites, rup, dists, m, nil)
		if err != nil {
			return nil, err
		}
		field := make([][]float64, len(mean))
		for i, v := range mean {
			row := make([]float64, realizations)
			for j := range row {
				row[j] = toUnitValue(m, v)
			}
			field[i] = row
		}
		return field, nil
	}

	if totalOnly(model) {
		mean, stddevs, err := gsim.MeanAndStdDevs(model, sites, rup, dists, m,
			[]gsim.StdDevType{gsim.StdDevTotal})
		if err != nil {
			return nil, err
		}
		total := stddevs[0]
		field := make([][]float64, len(mean))
		for i := range mean {
			row := make([]float64, realizations)
			for j := range row {
				row[j] = toUnitValue(m, mean[i]+total[i]*drawEpsilon(truncationLevel, rng))
			}
			field[i] = row
		}
		return field, nil
	}

	mean, stddevs, err := gsim.MeanAndStdDevs(model, sites, rup, dists, m,
		[]gsim.StdDevType{gsim.StdDevInterEvent, gsim.StdDevIntraEvent})
	if err != nil {
		return nil, err
	}
	inter, intra := stddevs[0], stddevs[1]

	field := make([][]float64, len(mean))
	for i := range mean {
		field[i] = make([]float64, realizations)
	}
	for j := 0; j < realizations; j++ {
		// One inter event residual is shared by every site of a
		// realization.
		interEps := drawEpsilon(truncationLevel, rng)
		for i := range mean {
			intraRes := intra[i] * drawEpsilon(truncationLevel, rng)
			field[i][j] = toUnitValue(m, mean[i]+intraRes+inter[i]*interEps)
		}
	}
	return field, nil
}

// totalOnly reports whether the model declares the total standard
// deviation and nothing else.
func totalOnly(model gsim.Model) bool {
	devs := model.Capabilities().StdDevs
	return len(devs) == 1 && devs[0] == gsim.StdDevTotal
}

func drawEpsilon(truncationLevel float64, rng *rand.Rand) float64 {
	if math.IsInf(truncationLevel, 1) {
		return rng.NormFloat64()
	}
	return stats.TruncNormCDFInv(rng.Float64(), -truncationLevel, truncationLevel)
}

// toUnitValue converts a model prediction to the measure's physical
// units: means are in natural log space except for macroseismic
// intensity, which is predicted directly.
func toUnitValue(m imt.IMT, v float64) float64 {
	if m.Kind() == imt.KindMMI {
		return v
	}
	return math.Exp(v)
}
