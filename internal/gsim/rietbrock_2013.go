package gsim

import (
	"math"

	"enceladus/internal/imt"
)

func init() {
	mustRegisterModel("RietbrockEtAl2013", func() Model { return &RietbrockEtAl2013{} })
}

// RietbrockEtAl2013 implements the GMPE developed by Rietbrock et al.
// (2013) for the United Kingdom, derived from weak motion events
// (2 < Ml < 4.7). The self similar stress parameter model (model 1) is
// used.
type RietbrockEtAl2013 struct{}

func (g *RietbrockEtAl2013) Name() string { return "RietbrockEtAl2013" }

func (g *RietbrockEtAl2013) Capabilities() Capabilities {
	return Capabilities{
		TectonicRegion: StableContinental,
		IMTKinds:       []imt.Kind{imt.KindPGA, imt.KindPGV, imt.KindSA},
		Component:      AverageHorizontal,
		StdDevs:        []StdDevType{StdDevTotal, StdDevInterEvent, StdDevIntraEvent},
		RuptureParams:  []string{RupMag},
		Distances:      []string{DistRjb},
	}
}

func (g *RietbrockEtAl2013) MeanAndStdDevs(sites *SitesContext, rup *RuptureContext,
	dists *DistancesContext, m imt.IMT, stddevTypes []StdDevType) ([]float64, [][]float64, error) {

	c, err := rietbrockCoeffs.LookupInterpolated(m)
	if err != nil {
		return nil, nil, err
	}

	rjb := dists.Rjb
	mean := make([]float64, len(rjb))
	for i, d := range rjb {
		// Equation 11, page 63.
		r := math.Sqrt(d*d + c["c11"]*c["c11"])

		// Equation 10, page 63.
		log10Mean := c["c1"] + c["c2"]*rup.Mag + c["c3"]*rup.Mag*rup.Mag +
			(c["c4"]+c["c5"]*rup.Mag)*rietbrockF0(r) +
			(c["c6"]+c["c7"]*rup.Mag)*rietbrockF1(r) +
			(c["c8"]+c["c9"]*rup.Mag)*rietbrockF2(r) +
			c["c10"]*r

		// The table predicts cm/s2 for accelerations, cm/s for PGV.
		if m.Kind() == imt.KindPGV {
			mean[i] = math.Log(math.Pow(10, log10Mean))
		} else {
			mean[i] = math.Log(math.Pow(10, log10Mean-2.0) / 9.80665)
		}
	}

	stddevs := make([][]float64, len(stddevTypes))
	for i, st := range stddevTypes {
		var v float64
		switch st {
		case StdDevTotal:
			v = c["st"]
		case StdDevInterEvent:
			v = c["sb"]
		case StdDevIntraEvent:
			v = c["sw"]
		}
		v = math.Log(math.Pow(10, v))
		s := make([]float64, len(rjb))
		for j := range s {
			s[j] = v
		}
		stddevs[i] = s
	}
	return mean, stddevs, nil
}

// rietbrockF0 is equation 12a, page 63.
func rietbrockF0(r float64) float64 {
	if r <= 10 {
		return math.Log10(10 / r)
	}
	return 0
}

// rietbrockF1 is equation 12b, page 63.
func rietbrockF1(r float64) float64 {
	if r <= 50 {
		return math.Log10(r)
	}
	return math.Log10(50)
}

// rietbrockF2 is equation 12c, page 63.
func rietbrockF2(r float64) float64 {
	if r <= 100 {
		return 0
	}
	return math.Log10(r / 100)
}

// Model 1 (self similar stress parameter) coefficients, page 64.
var rietbrockCoeffs = MustCoeffsTable(5, `
	IMT	 c1     c2     c3      c4      c5     c6      c7     c8      c9     c10       c11    st    sb    sw
	PGV -2.9598 0.9039 -0.0434 -1.6243 0.1987 -1.6511 0.1654 -2.4308 0.0851 -0.001472 1.7736 0.347 0.311 0.153
	PGA -0.0135 0.6889 -0.0488 -1.8987 0.2151 -1.9063 0.1740 -2.0131 0.0887 -0.002747 1.5473 0.436 0.409 0.153
	0.03 0.8282 0.5976 -0.0418 -2.1321 0.2159 -2.0530 0.1676 -1.5148 0.1163 -0.004463 1.1096 0.449 0.417 0.167
	0.04 0.4622 0.6273 -0.0391 -1.7242 0.1644 -1.6849 0.1270 -1.4513 0.0910 -0.004355 1.1344 0.445 0.417 0.155
	0.05 0.2734 0.6531 -0.0397 -1.5932 0.1501 -1.5698 0.1161 -1.5350 0.0766 -0.003939 1.1493 0.442 0.416 0.149
	0.06 0.0488 0.6945 -0.0420 -1.4913 0.1405 -1.4807 0.1084 -1.6563 0.0657 -0.003449 1.2154 0.438 0.414 0.143
	0.08 -0.2112 0.7517 -0.0460 -1.4151 0.1340 -1.4130 0.1027 -1.7821 0.0582 -0.002987 1.2858 0.433 0.410 0.140
	0.10 -0.5363 0.8319 -0.0521 -1.3558 0.1296 -1.3579 0.0985 -1.8953 0.0520 -0.002569 1.3574 0.428 0.405 0.138
	0.12 -0.9086 0.9300 -0.0597 -1.3090 0.1264 -1.3120 0.0948 -1.9863 0.0475 -0.002234 1.4260 0.422 0.399 0.138
	0.16 -1.3733 1.0572 -0.0698 -1.2677 0.1237 -1.2684 0.0910 -2.0621 0.0434 -0.001944 1.4925 0.416 0.392 0.139
	0.20 -1.9180 1.2094 -0.0819 -1.2315 0.1213 -1.2270 0.0872 -2.1196 0.0396 -0.001708 1.5582 0.409 0.384 0.141
	0.25 -2.5107 1.3755 -0.0949 -1.1992 0.1189 -1.1881 0.0833 -2.1598 0.0361 -0.001522 1.6049 0.402 0.376 0.144
	0.31 -3.1571 1.5549 -0.1087 -1.1677 0.1160 -1.1494 0.0791 -2.1879 0.0328 -0.001369 1.6232 0.395 0.366 0.148
	0.40 -3.8516 1.7429 -0.1228 -1.1354 0.1126 -1.1099 0.0746 -2.2064 0.0294 -0.001240 1.6320 0.387 0.356 0.152
	0.50 -4.5556 1.9258 -0.1360 -1.1015 0.1084 -1.0708 0.0700 -2.2171 0.0261 -0.001129 1.6109 0.378 0.345 0.156
	0.63 -5.2405 2.0926 -0.1471 -1.0659 0.1035 -1.0328 0.0655 -2.2220 0.0229 -0.001033 1.5735 0.369 0.333 0.160
	0.79 -5.8909 2.2357 -0.1557 -1.0279 0.0981 -0.9969 0.0612 -2.2229 0.0197 -0.000945 1.5262 0.360 0.320 0.164
	1.00 -6.4633 2.3419 -0.1605 -0.9895 0.0925 -0.9665 0.0577 -2.2211 0.0167 -0.000863 1.4809 0.350 0.307 0.168
	1.25 -6.9250 2.4037 -0.1612 -0.9545 0.0879 -0.9462 0.0558 -2.2178 0.0139 -0.000785 1.4710 0.341 0.294 0.172
	1.59 -7.2960 2.4189 -0.1573 -0.9247 0.0848 -0.9421 0.0567 -2.2137 0.0111 -0.000701 1.5183 0.331 0.280 0.177
	2.00 -7.5053 2.3805 -0.1492 -0.9128 0.0855 -0.9658 0.0619 -2.2110 0.0086 -0.000618 1.6365 0.323 0.267 0.181
	2.50 -7.5569 2.2933 -0.1376 -0.9285 0.0915 -1.0264 0.0729 -2.2108 0.0067 -0.000535 1.8421 0.315 0.254 0.186
	3.13 -7.4510 2.1598 -0.1228 -0.9872 0.1050 -1.1349 0.0914 -2.2141 0.0060 -0.000458 2.1028 0.308 0.242 0.190
	4.00 -7.1688 1.9738 -0.1048 -1.1274 0.1325 -1.3132 0.1207 -2.2224 0.0079 -0.000397 2.4336 0.299 0.227 0.195
	5.00 -6.8063 1.7848 -0.0879 -1.3324 0.1691 -1.5158 0.1533 -2.2374 0.0142 -0.000387 2.6686 0.291 0.214 0.198
`)
