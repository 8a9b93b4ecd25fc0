package gsim

import (
	"math"

	"enceladus/internal/imt"
)

// lnG converts accelerations from m/s2 to g after summation of the
// log-space terms. Standard gravity, 9.80665 m/s2.
var lnG = math.Log(9.80665)

func init() {
	mustRegisterModel("Campbell2003Adjusted", func() Model { return &Campbell2003Adjusted{} })
}

// Campbell2003Adjusted implements the GMPE published by K.W. Campbell as
// "Prediction of Strong Ground Motion Using the Hybrid Empirical Method
// and Its Use in the Development of Ground Motion (Attenuation) Relations
// in Eastern North America" (BSSA, Volume 93, Number 3, pages 1012-1033,
// 2003), with the corrections from the 2004 erratum. The coefficients
// are the adjustment for a host of vs30 800 m/s and kappa 0.03 s.
type Campbell2003Adjusted struct{}

func (g *Campbell2003Adjusted) Name() string { return "Campbell2003Adjusted" }

func (g *Campbell2003Adjusted) Capabilities() Capabilities {
	return Capabilities{
		TectonicRegion: StableContinental,
		IMTKinds:       []imt.Kind{imt.KindPGA, imt.KindSA},
		Component:      AverageHorizontal,
		StdDevs:        []StdDevType{StdDevTotal},
		RuptureParams:  []string{RupMag},
		Distances:      []string{DistRrup},
	}
}

func (g *Campbell2003Adjusted) MeanAndStdDevs(sites *SitesContext, rup *RuptureContext,
	dists *DistancesContext, m imt.IMT, stddevTypes []StdDevType) ([]float64, [][]float64, error) {

	c, err := campbell2003Coeffs.LookupInterpolated(m)
	if err != nil {
		return nil, nil, err
	}

	rrup := dists.Rrup
	mean := make([]float64, len(rrup))
	for i, r := range rrup {
		mean[i] = c["c1"] +
			campbell2003Term1(c, rup.Mag) +
			campbell2003Term2(c, rup.Mag, r) +
			campbell2003Term3(c, r) -
			lnG
	}

	// Total sigma, equation 35 page 1021.
	var sigma float64
	if rup.Mag < 7.16 {
		sigma = c["c11"] + c["c12"]*rup.Mag
	} else {
		sigma = c["c13"]
	}
	stddevs := make([][]float64, len(stddevTypes))
	for i := range stddevTypes {
		s := make([]float64, len(rrup))
		for j := range s {
			s[j] = sigma
		}
		stddevs[i] = s
	}
	return mean, stddevs, nil
}

// campbell2003Term1 is f1 in equation 31, page 1021.
func campbell2003Term1(c Coeffs, mag float64) float64 {
	x := 8.5 - mag
	return c["c2"]*mag + c["c3"]*x*x
}

// campbell2003Term2 is f2 in equation 32, page 1021.
func campbell2003Term2(c Coeffs, mag, rrup float64) float64 {
	x := c["c7"] * math.Exp(c["c8"]*mag)
	r := math.Sqrt(rrup*rrup + x*x)
	return c["c4"]*math.Log(r) + (c["c5"]+c["c6"]*mag)*rrup
}

// campbell2003Term3 is f3 in equation 34, page 1021, corrected per the
// erratum.
func campbell2003Term3(c Coeffs, rrup float64) float64 {
	ln70, ln130 := math.Log(70), math.Log(130)
	switch {
	case rrup <= 70:
		return 0
	case rrup <= 130:
		return c["c9"] * (math.Log(rrup) - ln70)
	default:
		return c["c9"]*(math.Log(rrup)-ln70) + c["c10"]*(math.Log(rrup)-ln130)
	}
}

// Coefficients from the electronic supplements of the original paper,
// adjusted to host vs30 800 m/s and kappa 0.03 s.
var campbell2003Coeffs = MustCoeffsTable(5, `
	IMT       c1        c2        c3        c4        c5          c6          c7       c8       c9       c10       c11       c12       c13
	pga       1.8740    0.746     -0.0485   -1.760    -0.00225    0.000204    0.710    0.430    2.048    -1.614    1.030    -0.0860    0.414
	0.028     2.0672    0.752     -0.0427   -1.793    -0.00236    0.000206    0.715    0.433    2.036    -1.565    1.030    -0.0860    0.414
	0.040     2.0876    0.758     -0.0357   -1.769    -0.00237    0.000237    0.703    0.435    1.846    -1.536    1.036    -0.0849    0.429
	0.100     2.2006    0.737     -0.0302   -1.655    -0.00263    0.000255    0.636    0.446    1.812    -1.832    1.059    -0.0838    0.460
	0.200     2.2518    0.712     -0.0554   -1.580    -0.00282    0.000173    0.569    0.457    1.836    -1.485    1.077    -0.0838    0.478
	0.400     2.0873    0.638     -0.1081   -1.456    -0.00232    0.000130    0.495    0.458    1.630    -1.175    1.089    -0.0831    0.495
	1.000     1.9377    0.515     -0.1975   -1.323    -0.00166    0.000126    0.475    0.450    1.310    -0.879    1.110    -0.0793    0.543
	2.000     1.4741    0.450     -0.2545   -1.242    -0.00114    0.000113    0.463    0.453    1.108    -0.743    1.093    -0.0758    0.551
`)
