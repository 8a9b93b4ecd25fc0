package gsim

import (
	"fmt"
	"math"

	"enceladus/internal/stats"
)

// Cumulative absolute velocity (CAV) filtering, as outlined in
// Abrahamson et al. (2006), EPRI technical paper 1014099. Low amplitude
// ground motions that cannot accumulate a damaging CAV are screened out
// of hazard integrals by weighting exceedance probabilities with the
// probability that CAV passes a minimum threshold.

// LnUniformDuration predicts the natural log of the uniform duration in
// seconds above 0.025 g from ln PGA (g), moment magnitude and ln vs30
// (m/s), per the EPRI empirical model for the U.S. The model sigma is
// returned alongside.
func LnUniformDuration(lnPGA, mag, lnVs30 float64) (lnDur, sigma float64) {
	const (
		a1 = 3.50
		a2 = 0.0714
		a3 = -4.19
		a4 = 4.28
		a5 = 0.733
		a6 = -0.0871
		a7 = -0.355
	)
	lnDur = a1 + a2*lnPGA + a3/(lnPGA+a4) +
		a5*(mag-6.5) + a6*(mag-6.5)*(mag-6.5) + a7*(lnVs30-6)
	return lnDur, 0.509
}

// LnCAV predicts the natural log of CAV (g.s) and its standard
// deviation via the two step duration dependent EPRI model.
func LnCAV(lnPGA, mag, lnVs30 float64) (lnCAV, sigma float64) {
	const (
		c0 = -1.75
		c1 = 0.0567
		c2 = -0.0417
		c3 = 0.0737
		c4 = -0.481
		c5 = -0.242
		c6 = -0.0316
		c7 = -0.00936
		c8 = 0.782
		c9 = 0.0343
	)

	lnDur, sigmaDur := LnUniformDuration(lnPGA, mag, lnVs30)

	lnCAV = c0 + c1*(mag-6.5) + c2*(mag-6.5)*(mag-6.5) + c3*lnPGA +
		c7*(lnVs30-6) + c8*lnDur + c9*lnDur*lnDur
	// The polynomial PGA terms only apply below 1 g.
	if lnPGA <= 0 {
		lnCAV += c4*lnPGA*lnPGA + c5*lnPGA*lnPGA*lnPGA + c6*lnPGA*lnPGA*lnPGA*lnPGA
	}

	ln4, ln02 := math.Log(4), math.Log(0.2)
	sigma1 := 0.1
	if lnDur <= ln4 {
		sigma1 = 0.37 - 0.09*(lnDur-ln02)
	}
	if lnDur < ln02 {
		sigma1 = 0.37
	}
	d := c8 + 2*c9*lnDur
	sigma = math.Sqrt(d*d*sigmaDur*sigmaDur + sigma1*sigma1)
	return lnCAV, sigma
}

// CAVExceedanceProb returns, per site, the probability that CAV exceeds
// cavMin (g.s) given ln PGA values (g), moment magnitude and vs30 (m/s).
// PGA below the 0.025 g accumulation threshold contributes zero
// probability; a non-positive cavMin disables the filter and yields one
// everywhere.
func CAVExceedanceProb(lnPGA []float64, mag float64, vs30 []float64, cavMin float64) ([]float64, error) {
	// A disabled filter passes everything through; the other inputs are
	// never read.
	if cavMin <= 0 {
		prob := make([]float64, len(lnPGA))
		for i := range prob {
			prob[i] = 1
		}
		return prob, nil
	}

	if len(lnPGA) != len(vs30) {
		return nil, fmt.Errorf("%w: ln PGA has %d entries, vs30 has %d",
			ErrLengthMismatch, len(lnPGA), len(vs30))
	}

	prob := make([]float64, len(lnPGA))
	ln0025 := math.Log(0.025)
	for i, lp := range lnPGA {
		if lp < ln0025 {
			continue
		}
		lnCAV, sigma := LnCAV(lp, mag, math.Log(vs30[i]))
		eps := (math.Log(cavMin) - lnCAV) / sigma
		prob[i] = stats.NormSurvival(eps)
	}
	return prob, nil
}
