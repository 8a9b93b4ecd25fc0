package gsim

import (
	"fmt"
	"math"

	"enceladus/internal/imt"
)

func init() {
	mustRegisterModel("ToroEtAl2002Adjusted", func() Model {
		return &ToroEtAl2002Adjusted{HostVs30: 800, HostKappa: 0.03}
	})
}

// ToroEtAl2002Adjusted implements the GMPE developed by G. R. Toro,
// N. A. Abrahamson and J. F. Schneider, published in "Model of Strong
// Ground Motions from Earthquakes in Central and Eastern North America:
// Best Estimates and Uncertainties" (Seismological Research Letters,
// Volume 68, Number 1, 1997) and modified per "Modification of the Toro
// et al. 1997 Attenuation Equations for Large Magnitudes and Short
// Distances" (2002). Midcontinent equations, moment magnitude. SA at 3
// and 4 s, not supported by the original equations, is obtained from SA
// at 2 s scaled by fixed factors.
//
// Coefficients c1 to c7 are replaced with the adjusted values of Table
// 20 in Drouet et al. (2010), tabulated per host rock profile. HostVs30
// and HostKappa select the profile.
type ToroEtAl2002Adjusted struct {
	HostVs30  float64
	HostKappa float64
}

func (g *ToroEtAl2002Adjusted) Name() string { return "ToroEtAl2002Adjusted" }

func (g *ToroEtAl2002Adjusted) Capabilities() Capabilities {
	return Capabilities{
		TectonicRegion: StableContinental,
		IMTKinds:       []imt.Kind{imt.KindPGA, imt.KindSA},
		Component:      AverageHorizontal,
		StdDevs:        []StdDevType{StdDevTotal},
		RuptureParams:  []string{RupMag},
		Distances:      []string{DistRjb},
	}
}

func (g *ToroEtAl2002Adjusted) MeanAndStdDevs(sites *SitesContext, rup *RuptureContext,
	dists *DistancesContext, m imt.IMT, stddevTypes []StdDevType) ([]float64, [][]float64, error) {

	table, ok := toroCoeffs[toroHost{g.HostVs30, g.HostKappa}]
	if !ok {
		return nil, nil, fmt.Errorf("gsim: no Toro et al. (2002) coefficients for host vs30 %v, kappa %v",
			g.HostVs30, g.HostKappa)
	}
	c, err := table.LookupInterpolated(m)
	if err != nil {
		return nil, nil, err
	}

	rjb := dists.Rjb
	mean := make([]float64, len(rjb))
	for i, r := range rjb {
		v := c["c1"] + toroTerm1(c, rup.Mag) + toroTerm2(c, rup.Mag, r)
		// Decay factors for the periods the original equations do not
		// support, applied in the native log units.
		if m.Kind() == imt.KindSA {
			switch m.Period() {
			case 3.0:
				v /= 0.612
			case 4.0:
				v /= 0.559
			}
		}
		mean[i] = v - lnG
	}

	sigma := make([]float64, len(rjb))
	for i, r := range rjb {
		sigma[i] = toroTotalSigma(c, rup.Mag, r, m)
	}
	stddevs := make([][]float64, len(stddevTypes))
	for i := range stddevTypes {
		stddevs[i] = append([]float64(nil), sigma...)
	}
	return mean, stddevs, nil
}

// toroTerm1 holds the magnitude dependent terms of equation 3, page 46.
func toroTerm1(c Coeffs, mag float64) float64 {
	d := mag - 6
	return c["c2"]*d + c["c3"]*d*d
}

// toroTerm2 holds the distance dependent terms of equation 3, page 46,
// with the RM factor of the 2002 model (equation 4-3).
func toroTerm2(c Coeffs, mag, rjb float64) float64 {
	x := math.Exp(-1.25 + 0.227*mag)
	rm := math.Sqrt(rjb*rjb + c["c7"]*c["c7"]*x*x)
	return -c["c4"]*math.Log(rm) -
		(c["c5"]-c["c4"])*math.Max(math.Log(rm/100), 0) -
		c["c6"]*rm
}

// toroTotalSigma combines the aleatory terms of equations 5 and 6, page
// 48, with the epistemic term.
func toroTotalSigma(c Coeffs, mag, rjb float64, m imt.IMT) float64 {
	aleM := interpClamped(mag,
		[]float64{5.0, 5.5, 8.0},
		[]float64{c["m50"], c["m55"], c["m80"]})
	aleR := interpClamped(rjb,
		[]float64{5.0, 20.0},
		[]float64{c["r5"], c["r20"]})
	ale2 := aleM*aleM + aleR*aleR

	var epi float64
	if m.Kind() == imt.KindPGA || (m.Kind() == imt.KindSA && m.Period() < 1) {
		epi = 0.36 + 0.07*(mag-6)
	} else {
		epi = 0.34 + 0.06*(mag-6)
	}
	return math.Sqrt(ale2 + epi*epi)
}

// interpClamped linearly interpolates y at x over the knots xs, holding
// the end values outside the range. xs must be increasing.
func interpClamped(x float64, xs, ys []float64) float64 {
	if x <= xs[0] {
		return ys[0]
	}
	for i := 1; i < len(xs); i++ {
		if x <= xs[i] {
			frac := (x - xs[i-1]) / (xs[i] - xs[i-1])
			return ys[i-1] + frac*(ys[i]-ys[i-1])
		}
	}
	return ys[len(ys)-1]
}

type toroHost struct {
	vs30  float64
	kappa float64
}

var toroCoeffs = map[toroHost]*CoeffsTable{
	{800, 0.03}: MustCoeffsTable(5, `
	IMT    c1    c2    c3    c4    c5    c6       c7   m50   m55   m80   r5    r20
	pga    3.56  0.83  0.00  1.02  0.58  0.0029   6.4  0.55  0.59  0.50  0.54  0.20
	0.03   4.02  0.85  0.00  1.06  0.84  0.0026   6.7  0.62  0.63  0.50  0.62  0.35
	0.04   4.39  0.83  0.00  1.13  0.87  0.0026   7.1  0.62  0.63  0.50  0.57  0.29
	0.10   4.20  0.81  0.01  0.95  0.47  0.0047   6.1  0.59  0.61  0.50  0.50  0.17
	0.20   3.89  0.83  0.01  0.87  0.19  0.0048   5.7  0.60  0.64  0.56  0.45  0.12
	0.40   3.36  1.05 -0.10  0.85  0.21  0.0035   5.7  0.63  0.68  0.64  0.45  0.12
	1.00   2.40  1.42 -0.20  0.84  0.24  0.0024   5.8  0.63  0.64  0.67  0.45  0.12
	2.00   1.56  1.84 -0.30  0.87  0.27  0.0017   6.1  0.61  0.62  0.66  0.45  0.12
	`),
	{2000, 0.005}: MustCoeffsTable(5, `
	IMT    c1    c2    c3    c4    c5    c6       c7   m50   m55   m80   r5    r20
	pga    5.22  0.75  0.02  1.34  0.89  0.0026   8.6  0.55  0.59  0.50  0.54  0.20
	0.03   6.49  0.76  0.02  1.43  1.69  0.0015   9.3  0.62  0.63  0.50  0.62  0.35
	0.04   6.11  0.76  0.01  1.35  1.46  0.0021   8.9  0.62  0.63  0.50  0.57  0.29
	0.10   4.69  0.78  0.01  1.02  0.41  0.0052   7.1  0.59  0.61  0.50  0.50  0.17
	0.20   4.04  0.82  0.00  0.93  0.12  0.0050   6.6  0.60  0.64  0.56  0.45  0.12
	0.40   3.35  1.05 -0.10  0.89  0.16  0.0036   6.4  0.63  0.68  0.64  0.45  0.12
	1.00   2.35  1.41 -0.19  0.87  0.20  0.0025   6.3  0.63  0.64  0.67  0.45  0.12
	2.00   1.58  1.83 -0.29  0.91  0.22  0.0018   6.7  0.61  0.62  0.66  0.45  0.12
	`),
}
