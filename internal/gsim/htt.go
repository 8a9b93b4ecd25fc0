package gsim

import (
	"fmt"
	"math"
	"strconv"

	"enceladus/internal/imt"
)

// Host-to-target adjustment. A rock GMPE derived for a host region
// (fixed vs30 and kappa) is mapped to target site conditions by two
// multiplicative spectral corrections: a kappa correction from the
// host/target difference in high-frequency attenuation, and a tabulated
// vs30 correction factor per target velocity. Both apply to the mean
// only; the standard deviations of the host model are kept.
type httAdjusted struct {
	name      string
	base      Model
	hostKappa float64
	vs30CF    *CoeffsTable // correction factors, one column per target vs30
}

func (g *httAdjusted) Name() string { return g.name }

func (g *httAdjusted) Capabilities() Capabilities {
	caps := g.base.Capabilities()
	caps.SiteParams = append(append([]string(nil), caps.SiteParams...), SiteVs30, SiteKappa)
	return caps
}

func (g *httAdjusted) MeanAndStdDevs(sites *SitesContext, rup *RuptureContext,
	dists *DistancesContext, m imt.IMT, stddevTypes []StdDevType) ([]float64, [][]float64, error) {

	mean, stddevs, err := g.base.MeanAndStdDevs(sites, rup, dists, m, stddevTypes)
	if err != nil {
		return nil, nil, err
	}

	cf, err := g.vs30CF.LookupInterpolated(m)
	if err != nil {
		return nil, nil, err
	}

	// PGA is treated as a 100 Hz ordinate.
	freq := 100.0
	if m.Kind() == imt.KindSA {
		freq = 1 / m.Period()
	}

	for i := range mean {
		mean[i] += math.Log(kappaCF(g.hostKappa, sites.Kappa[i], freq))
		v, err := vs30CF(cf, sites.Vs30[i])
		if err != nil {
			return nil, nil, err
		}
		mean[i] += math.Log(v)
	}
	return mean, stddevs, nil
}

// kappaCF is the ratio of the target and host kappa attenuation operators
// exp(-pi*kappa*f) at the measure's frequency.
func kappaCF(hostKappa, targetKappa, freq float64) float64 {
	return math.Exp(-math.Pi*targetKappa*freq) / math.Exp(-math.Pi*hostKappa*freq)
}

// vs30CF picks the correction factor column matching the target vs30.
// Columns are named by whole velocities; targets between columns are not
// interpolated.
func vs30CF(cf Coeffs, targetVs30 float64) (float64, error) {
	key := strconv.FormatFloat(targetVs30, 'f', 0, 64)
	v, ok := cf[key]
	if !ok {
		return 0, fmt.Errorf("gsim: no vs30 correction factor for %s m/s", key)
	}
	return v, nil
}
