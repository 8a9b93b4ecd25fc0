package gsim

import (
	"math"

	"enceladus/internal/imt"
)

func init() {
	mustRegisterModel("Barrientos2007", func() Model { return &Barrientos2007{} })
}

// Barrientos2007 implements the intensity prediction equation developed
// by Barrientos (2007) for Chilean subduction interface events, surface
// wave magnitude. The predicted MMI is clipped to the valid scale range
// [1, 12]. The site term of the publication is not modelled; the total
// standard deviation is reported as zero.
type Barrientos2007 struct{}

func (g *Barrientos2007) Name() string { return "Barrientos2007" }

func (g *Barrientos2007) Capabilities() Capabilities {
	return Capabilities{
		TectonicRegion: SubductionInterface,
		IMTKinds:       []imt.Kind{imt.KindMMI},
		Component:      AverageHorizontal,
		StdDevs:        []StdDevType{StdDevTotal},
		RuptureParams:  []string{RupMag},
		Distances:      []string{DistRrup},
	}
}

func (g *Barrientos2007) MeanAndStdDevs(sites *SitesContext, rup *RuptureContext,
	dists *DistancesContext, m imt.IMT, stddevTypes []StdDevType) ([]float64, [][]float64, error) {

	rrup := dists.Rrup
	mean := make([]float64, len(rrup))
	for i, r := range rrup {
		mmi := 1.3844*rup.Mag - 3.755*math.Log10(r) - 0.0006*r + 3.91
		mean[i] = math.Min(math.Max(mmi, 1), 12)
	}

	stddevs := make([][]float64, len(stddevTypes))
	for i := range stddevTypes {
		stddevs[i] = make([]float64, len(rrup))
	}
	return mean, stddevs, nil
}
