package gsim

import (
	"math"

	"enceladus/internal/imt"
)

func init() {
	mustRegisterModel("BindiEtAl2011", func() Model { return &BindiEtAl2011{} })
}

// BindiEtAl2011 implements the GMPE developed by Bindi, D., Pacor, F.,
// Luzi, L., Puglia, R., Massa, M., Ameri, G. and Paolucci, R., published
// as "Ground motion prediction equations derived from the Italian strong
// motion database" (2011, Bulletin of Earthquake Engineering, Volume 9,
// No. 6, pages 1899-1920). Class E soils and unknown fault types are not
// implemented.
type BindiEtAl2011 struct{}

func (g *BindiEtAl2011) Name() string { return "BindiEtAl2011" }

func (g *BindiEtAl2011) Capabilities() Capabilities {
	return Capabilities{
		TectonicRegion: ActiveShallowCrust,
		IMTKinds:       []imt.Kind{imt.KindPGA, imt.KindPGV, imt.KindSA},
		Component:      AverageHorizontal,
		StdDevs:        []StdDevType{StdDevTotal, StdDevInterEvent, StdDevIntraEvent},
		SiteParams:     []string{SiteVs30},
		RuptureParams:  []string{RupMag, RupRake},
		Distances:      []string{DistRjb},
	}
}

func (g *BindiEtAl2011) MeanAndStdDevs(sites *SitesContext, rup *RuptureContext,
	dists *DistancesContext, m imt.IMT, stddevTypes []StdDevType) ([]float64, [][]float64, error) {

	c, err := bindiCoeffs.LookupInterpolated(m)
	if err != nil {
		return nil, nil, err
	}

	mean := make([]float64, len(sites.Vs30))
	for i := range mean {
		// Equation (1), p. 5, in log10 of the paper's native units.
		v := c["e1"] +
			bindiDistanceTerm(c, rup.Mag, dists.Rjb[i]) +
			bindiMagnitudeTerm(c, rup.Mag) +
			bindiSiteTerm(c, sites.Vs30[i]) +
			bindiFaultTerm(c, rup.Rake)

		if m.Kind() == imt.KindPGV {
			// log10(cm/s) to m/s
			mean[i] = math.Log(math.Pow(10, v) / 100)
		} else {
			// log10(cm/s2) to g
			mean[i] = math.Log(math.Pow(10, v) / 981)
		}
	}

	stddevs := make([][]float64, len(stddevTypes))
	for i, st := range stddevTypes {
		var v float64
		switch st {
		case StdDevTotal:
			v = c["s_total"]
		case StdDevInterEvent:
			v = c["s_inter"]
		case StdDevIntraEvent:
			v = c["s_intra"]
		}
		s := make([]float64, len(mean))
		for j := range s {
			s[j] = v
		}
		stddevs[i] = s
	}
	return mean, stddevs, nil
}

// bindiDistanceTerm is equation (2), p. 5, with Mref 5 and Rref 1 km.
func bindiDistanceTerm(c Coeffs, mag, rjb float64) float64 {
	r := math.Sqrt(rjb*rjb + c["h"]*c["h"])
	return (c["c1"]+c["c2"]*(mag-5))*math.Log10(r) - c["c3"]*(r-1)
}

// bindiMagnitudeTerm is equation (3), p. 5, with hinge magnitude 6.75.
// Above the hinge the term would be b3*(mag-Mh), but b3 is zero, p. 6.
func bindiMagnitudeTerm(c Coeffs, mag float64) float64 {
	const mh = 6.75
	if mag <= mh {
		return c["b1"]*(mag-mh) + c["b2"]*(mag-mh)*(mag-mh)
	}
	return 0
}

// bindiSiteTerm maps vs30 to the EC8 class coefficients, p. 4 and 6.
func bindiSiteTerm(c Coeffs, vs30 float64) float64 {
	switch {
	case vs30 >= 800:
		return c["sA"]
	case vs30 >= 360:
		return c["sB"]
	case vs30 >= 180:
		return c["sC"]
	default:
		return c["sD"]
	}
}

// bindiFaultTerm maps rake to the style of faulting coefficients, p. 6.
func bindiFaultTerm(c Coeffs, rake float64) float64 {
	switch {
	case rake > -135 && rake <= -45:
		return c["f1"]
	case rake > 45 && rake <= 135:
		return c["f2"]
	default:
		return c["f3"]
	}
}

// Coefficients obtained by joining tables 1, p. 19 and 5, p. 22.
var bindiCoeffs = MustCoeffsTable(5, `
	IMT		e1		c1		c2		h		c3			b1		b2			sA	sB		sC		sD		sE		f1		f2		f3		f4	s_inter	s_intra	s_total
	pgv		2.305	-1.517	0.328	7.879	0.			0.236	-0.00686	0	0.205	0.289	0.321	0.428	-0.0308	0.0754	-0.0446	0	0.194	0.270	0.332
	pga		3.672	-1.940	0.413	10.322	0.000134	-0.262	-0.07070	0	0.162	0.240	0.105	0.570	-0.0503	0.105	-0.0544	0	0.172	0.290	0.337
	0.04	3.725	-1.976	0.422	9.445	0.000270	-0.315	-0.07870	0	0.161	0.240	0.060	0.614	-0.0442	0.106	-0.0615	0	0.154	0.307	0.343
	0.07	3.906	-2.050	0.446	9.810	0.000758	-0.375	-0.07730	0	0.154	0.235	0.057	0.536	-0.0454	0.103	-0.0576	0	0.152	0.324	0.358
	0.10	3.796	-1.794	0.415	9.500	0.002550	-0.290	-0.06510	0	0.178	0.247	0.037	0.599	-0.0656	0.111	-0.0451	0	0.154	0.328	0.363
	0.15	3.799	-1.521	0.320	9.163	0.003720	-0.0987	-0.05740	0	0.174	0.240	0.148	0.740	-0.0755	0.123	-0.0477	0	0.179	0.318	0.365
	0.20	3.750	-1.379	0.280	8.502	0.003840	0.00940	-0.05170	0	0.156	0.234	0.115	0.556	-0.0733	0.106	-0.0328	0	0.209	0.320	0.382
	0.25	3.699	-1.340	0.254	7.912	0.003260	0.0860	-0.04570	0	0.182	0.245	0.154	0.414	-0.0568	0.110	-0.0534	0	0.212	0.308	0.374
	0.30	3.753	-1.414	0.255	8.215	0.002190	0.124	-0.04350	0	0.201	0.244	0.213	0.301	-0.0564	0.0877	-0.0313	0	0.218	0.290	0.363
	0.35	3.600	-1.320	0.253	7.507	0.002320	0.154	-0.04370	0	0.220	0.257	0.243	0.235	-0.0523	0.0905	-0.0382	0	0.221	0.283	0.359
	0.40	3.549	-1.262	0.233	6.760	0.002190	0.225	-0.04060	0	0.229	0.255	0.226	0.202	-0.0565	0.0927	-0.0363	0	0.210	0.279	0.349
	0.45	3.550	-1.261	0.223	6.775	0.001760	0.292	-0.03060	0	0.226	0.271	0.237	0.181	-0.0597	0.0886	-0.0289	0	0.204	0.284	0.350
	0.50	3.526	-1.181	0.184	5.992	0.001860	0.384	-0.02500	0	0.218	0.280	0.263	0.168	-0.0599	0.0850	-0.0252	0	0.203	0.283	0.349
	0.60	3.561	-1.230	0.178	6.382	0.001140	0.436	-0.02270	0	0.219	0.296	0.355	0.142	-0.0559	0.0790	-0.0231	0	0.203	0.283	0.348
	0.70	3.485	-1.172	0.154	5.574	0.000942	0.529	-0.01850	0	0.210	0.303	0.496	0.134	-0.0461	0.0896	-0.0435	0	0.212	0.283	0.354
	0.80	3.325	-1.115	0.163	4.998	0.000909	0.545	-0.02150	0	0.210	0.304	0.621	0.150	-0.0457	0.0795	-0.0338	0	0.213	0.284	0.355
	0.90	3.318	-1.137	0.154	5.231	0.000483	0.563	-0.02630	0	0.212	0.315	0.680	0.154	-0.0351	0.0715	-0.0364	0	0.214	0.286	0.357
	1.00	3.264	-1.114	0.140	5.002	0.000254	0.599	-0.02700	0	0.221	0.332	0.707	0.152	-0.0298	0.0660	-0.0362	0	0.222	0.283	0.360
	1.25	2.895	-0.986	0.173	4.340	0.000783	0.579	-0.03360	0	0.244	0.365	0.717	0.183	-0.0207	0.0614	-0.0407	0	0.227	0.290	0.368
	1.50	2.675	-0.960	0.192	4.117	0.000802	0.575	-0.03530	0	0.251	0.375	0.667	0.203	-0.0140	0.0505	-0.0365	0	0.218	0.303	0.373
	1.75	2.584	-1.006	0.205	4.505	0.000427	0.574	-0.03710	0	0.252	0.357	0.593	0.220	0.00154	0.0370	-0.0385	0	0.219	0.305	0.376
	2.00	2.537	-1.009	0.193	4.373	0.000164	0.597	-0.03670	0	0.245	0.352	0.540	0.226	0.00512	0.0350	-0.0401	0	0.211	0.308	0.373
`)
