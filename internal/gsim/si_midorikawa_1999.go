package gsim

import (
	"math"

	"enceladus/internal/imt"
)

// Si & Midorikawa (1999) PGV model as documented in the Technical Reports
// on National Seismic Hazard Maps for Japan (2009, NIED, pages 148-151).
// Three variants share the mean equation (3.5.1-1) and differ in a
// tectonic offset term and the sigma rule: the active shallow crust
// variant uses the distance-dependent sigma of eq. 3.5.5-2, the
// subduction variants the amplitude-dependent sigma of eq. 3.5.5-1.

// siMidorikawaAmpF scales PGV at vs30 400 m/s, eq. 3.5.1-1 page 148.
const siMidorikawaAmpF = 1.41

func init() {
	mustRegisterModel("SiMidorikawa1999Asc", func() Model {
		return &SiMidorikawa1999{
			name:   "SiMidorikawa1999Asc",
			region: ActiveShallowCrust,
			d:      0,
		}
	})
	mustRegisterModel("SiMidorikawa1999SInter", func() Model {
		return &SiMidorikawa1999{
			name:       "SiMidorikawa1999SInter",
			region:     SubductionInterface,
			d:          -0.02,
			sigmaByPGV: true,
		}
	})
	mustRegisterModel("SiMidorikawa1999SSlab", func() Model {
		return &SiMidorikawa1999{
			name:       "SiMidorikawa1999SSlab",
			region:     SubductionIntraSlab,
			d:          0.12,
			sigmaByPGV: true,
		}
	})
}

// SiMidorikawa1999 predicts PGV (greater of two horizontal components)
// from magnitude, hypocentral depth and rupture distance.
type SiMidorikawa1999 struct {
	name   string
	region TectonicRegion

	// d is the tectonic offset added inside the log10 mean equation.
	d float64
	// sigmaByPGV selects the amplitude-dependent sigma of eq. 3.5.5-1
	// over the distance-dependent sigma of eq. 3.5.5-2.
	sigmaByPGV bool
}

func (g *SiMidorikawa1999) Name() string { return g.name }

func (g *SiMidorikawa1999) Capabilities() Capabilities {
	return Capabilities{
		TectonicRegion: g.region,
		IMTKinds:       []imt.Kind{imt.KindPGV},
		Component:      GreaterOfTwoHorizontal,
		StdDevs:        []StdDevType{StdDevTotal},
		RuptureParams:  []string{RupMag, RupHypoDepth},
		Distances:      []string{DistRrup},
	}
}

func (g *SiMidorikawa1999) MeanAndStdDevs(sites *SitesContext, rup *RuptureContext,
	dists *DistancesContext, m imt.IMT, stddevTypes []StdDevType) ([]float64, [][]float64, error) {

	rrup := dists.Rrup
	mean := make([]float64, len(rrup))
	for i, r := range rrup {
		log10Mean := 0.58*rup.Mag +
			0.0038*rup.HypoDepth +
			g.d -
			1.29 -
			math.Log10(r+0.0028*math.Pow(10, 0.5*rup.Mag)) -
			0.002*r
		mean[i] = math.Log(math.Pow(10, log10Mean) * siMidorikawaAmpF)
	}

	var sigma []float64
	if g.sigmaByPGV {
		sigma = make([]float64, len(mean))
		for i, lnPGV := range mean {
			sigma[i] = siMidorikawaSigmaByPGV(math.Exp(lnPGV))
		}
	} else {
		sigma = make([]float64, len(rrup))
		for i, r := range rrup {
			sigma[i] = siMidorikawaSigmaByDistance(r)
		}
	}

	stddevs := make([][]float64, len(stddevTypes))
	for i := range stddevTypes {
		stddevs[i] = append([]float64(nil), sigma...)
	}
	return mean, stddevs, nil
}

// siMidorikawaSigmaByDistance is eq. 3.5.5-2 page 151, converted from
// log10 to natural log.
func siMidorikawaSigmaByDistance(rrup float64) float64 {
	var std float64
	switch {
	case rrup <= 20:
		std = 0.23
	case rrup <= 30:
		std = 0.23 - 0.03*math.Log10(rrup/20)/math.Log10(30.0/20.0)
	default:
		std = 0.20
	}
	return math.Log(math.Pow(10, std))
}

// siMidorikawaSigmaByPGV is eq. 3.5.5-1 page 151, converted from log10
// to natural log.
func siMidorikawaSigmaByPGV(pgv float64) float64 {
	var std float64
	switch {
	case pgv <= 25:
		std = 0.20
	case pgv <= 50:
		std = 0.20 - 0.05*(pgv-25)/25
	default:
		std = 0.15
	}
	return math.Log(math.Pow(10, std))
}
