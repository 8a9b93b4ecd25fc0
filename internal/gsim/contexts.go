package gsim

// SitesContext carries per-site parameters. Every populated slice has
// one entry per site; models only read the fields they declare in
// Capabilities.SiteParams.
type SitesContext struct {
	Vs30  []float64
	Kappa []float64
}

// NumSites returns the length of the first populated site array, or zero
// when none is set.
func (s *SitesContext) NumSites() int {
	switch {
	case s == nil:
		return 0
	case s.Vs30 != nil:
		return len(s.Vs30)
	case s.Kappa != nil:
		return len(s.Kappa)
	default:
		return 0
	}
}

func (s *SitesContext) field(name string) []float64 {
	if s == nil {
		return nil
	}
	switch name {
	case SiteVs30:
		return s.Vs30
	case SiteKappa:
		return s.Kappa
	default:
		return nil
	}
}

// RuptureContext carries scalar rupture parameters that apply to every
// site of one evaluation.
type RuptureContext struct {
	Mag       float64
	Rake      float64
	HypoDepth float64
}

// DistancesContext carries per-site source-to-site distance metrics in
// kilometres.
type DistancesContext struct {
	Rjb   []float64
	Rrup  []float64
	Rhypo []float64
}

func (d *DistancesContext) field(name string) []float64 {
	if d == nil {
		return nil
	}
	switch name {
	case DistRjb:
		return d.Rjb
	case DistRrup:
		return d.Rrup
	case DistRhypo:
		return d.Rhypo
	default:
		return nil
	}
}
