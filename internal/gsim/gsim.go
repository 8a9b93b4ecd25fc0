// Package gsim defines the ground-shaking intensity model contract and
// the empirical models implementing it. A model predicts the natural
// logarithm of a ground-motion measure (in g for accelerations, m/s for
// velocities, a unitless index for macroseismic intensity) together with
// its standard deviations, given rupture, site and distance inputs.
package gsim

import (
	"errors"
	"fmt"

	"enceladus/internal/imt"
)

// TectonicRegion is the tectonic regime a model was derived for.
type TectonicRegion string

const (
	ActiveShallowCrust  TectonicRegion = "Active Shallow Crust"
	StableContinental   TectonicRegion = "Stable Shallow Crust"
	SubductionInterface TectonicRegion = "Subduction Interface"
	SubductionIntraSlab TectonicRegion = "Subduction IntraSlab"
)

// Component is the horizontal-component convention of the predicted
// measure.
type Component string

const (
	AverageHorizontal      Component = "Average horizontal"
	GreaterOfTwoHorizontal Component = "Greater of two horizontal"
	RandomHorizontal       Component = "Random horizontal"
)

// StdDevType distinguishes the standard deviations a model can report.
type StdDevType string

const (
	StdDevTotal      StdDevType = "Total"
	StdDevInterEvent StdDevType = "Inter event"
	StdDevIntraEvent StdDevType = "Intra event"
)

// Context field names used in capability declarations.
const (
	SiteVs30  = "vs30"
	SiteKappa = "kappa"

	RupMag       = "mag"
	RupRake      = "rake"
	RupHypoDepth = "hypo_depth"

	DistRjb   = "rjb"
	DistRrup  = "rrup"
	DistRhypo = "rhypo"
)

var (
	ErrUnsupportedIMT    = errors.New("intensity measure type not supported by model")
	ErrUnsupportedStdDev = errors.New("standard deviation type not supported by model")
	ErrMissingField      = errors.New("required context field missing")
	ErrLengthMismatch    = errors.New("context arrays disagree on the number of sites")
)

// Capabilities is the static declaration every model publishes: what it
// was derived for and which context fields its equations read. Requests
// are checked against this declaration before evaluation.
type Capabilities struct {
	TectonicRegion TectonicRegion
	IMTKinds       []imt.Kind
	Component      Component
	StdDevs        []StdDevType
	SiteParams     []string
	RuptureParams  []string
	Distances      []string
}

// SupportsIMT reports whether the measure kind is declared.
func (c Capabilities) SupportsIMT(m imt.IMT) bool {
	for _, k := range c.IMTKinds {
		if k == m.Kind() {
			return true
		}
	}
	return false
}

// SupportsStdDev reports whether the standard deviation type is declared.
func (c Capabilities) SupportsStdDev(s StdDevType) bool {
	for _, d := range c.StdDevs {
		if d == s {
			return true
		}
	}
	return false
}

// Model is the contract every empirical ground-shaking model satisfies.
//
// MeanAndStdDevs returns the natural log of the predicted measure per
// site, plus one standard deviation slice per requested type, in request
// order. Implementations may assume the request has already been checked
// against Capabilities; the exported entry point below performs that
// check.
type Model interface {
	Name() string
	Capabilities() Capabilities
	MeanAndStdDevs(sites *SitesContext, rup *RuptureContext, dists *DistancesContext,
		m imt.IMT, stddevTypes []StdDevType) (mean []float64, stddevs [][]float64, err error)
}

// MeanAndStdDevs validates a request against the model's declared
// capabilities and dispatches to the model. Capability violations are
// programming errors in the calling calculation, reported immediately
// and never silently substituted.
func MeanAndStdDevs(model Model, sites *SitesContext, rup *RuptureContext,
	dists *DistancesContext, m imt.IMT, stddevTypes []StdDevType) ([]float64, [][]float64, error) {

	caps := model.Capabilities()
	if !caps.SupportsIMT(m) {
		return nil, nil, fmt.Errorf("%w: model %s, measure %s", ErrUnsupportedIMT, model.Name(), m)
	}
	for _, s := range stddevTypes {
		if !caps.SupportsStdDev(s) {
			return nil, nil, fmt.Errorf("%w: model %s, type %q", ErrUnsupportedStdDev, model.Name(), s)
		}
	}
	if err := checkContexts(model.Name(), caps, sites, dists); err != nil {
		return nil, nil, err
	}

	mean, stddevs, err := model.MeanAndStdDevs(sites, rup, dists, m, stddevTypes)
	if err != nil {
		return nil, nil, err
	}
	return mean, stddevs, nil
}

// checkContexts verifies that every declared site and distance field is
// populated and that all populated required arrays share one length.
func checkContexts(name string, caps Capabilities, sites *SitesContext, dists *DistancesContext) error {
	n := -1
	note := func(field string, values []float64) error {
		if values == nil {
			return fmt.Errorf("%w: model %s reads %q", ErrMissingField, name, field)
		}
		if n == -1 {
			n = len(values)
		} else if len(values) != n {
			return fmt.Errorf("%w: field %q has %d entries, expected %d",
				ErrLengthMismatch, field, len(values), n)
		}
		return nil
	}
	for _, field := range caps.SiteParams {
		if err := note(field, sites.field(field)); err != nil {
			return err
		}
	}
	for _, field := range caps.Distances {
		if err := note(field, dists.field(field)); err != nil {
			return err
		}
	}
	return nil
}
