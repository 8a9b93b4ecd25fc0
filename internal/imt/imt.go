// Package imt defines intensity measure types: the quantities a ground
// shaking model predicts (peak ground acceleration or velocity, spectral
// acceleration at a period, macroseismic intensity).
package imt

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the predicted quantity.
type Kind uint8

const (
	KindPGA Kind = iota
	KindPGV
	KindSA
	KindMMI
)

func (k Kind) String() string {
	switch k {
	case KindPGA:
		return "PGA"
	case KindPGV:
		return "PGV"
	case KindSA:
		return "SA"
	case KindMMI:
		return "MMI"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// DefaultSADamping is the damping ratio, in percent of critical, assumed
// for spectral acceleration when none is given.
const DefaultSADamping = 5.0

// IMT is an immutable intensity measure type. The zero value is PGA.
// IMT values are comparable and usable as map keys: two values are equal
// when kind, period and damping all match.
type IMT struct {
	kind    Kind
	period  float64
	damping float64
}

// PGA is peak ground acceleration, expressed in g.
func PGA() IMT { return IMT{kind: KindPGA} }

// PGV is peak ground velocity, expressed in m/s.
func PGV() IMT { return IMT{kind: KindPGV} }

// MMI is the modified Mercalli intensity index, unitless.
func MMI() IMT { return IMT{kind: KindMMI} }

// SA is spectral acceleration in g at the given period in seconds, at the
// default 5% damping.
func SA(period float64) IMT {
	return SAWithDamping(period, DefaultSADamping)
}

// SAWithDamping is spectral acceleration at an explicit damping ratio.
// Period and damping must be positive.
func SAWithDamping(period, damping float64) IMT {
	if period <= 0 {
		panic(fmt.Sprintf("imt: spectral period must be positive, got %v", period))
	}
	if damping <= 0 {
		panic(fmt.Sprintf("imt: damping must be positive, got %v", damping))
	}
	return IMT{kind: KindSA, period: period, damping: damping}
}

func (m IMT) Kind() Kind { return m.kind }

// Period returns the spectral period in seconds. It is zero for every
// kind except SA.
func (m IMT) Period() float64 { return m.period }

// Damping returns the damping ratio for SA and zero otherwise.
func (m IMT) Damping() float64 { return m.damping }

func (m IMT) String() string {
	if m.kind != KindSA {
		return m.kind.String()
	}
	if m.damping != DefaultSADamping {
		return fmt.Sprintf("SA(%s, %s%%)", trimFloat(m.period), trimFloat(m.damping))
	}
	return fmt.Sprintf("SA(%s)", trimFloat(m.period))
}

// Parse maps a coefficient table row key to an IMT: "pga", "pgv" and
// "mmi" (case-insensitive) map to the corresponding measure, any other
// token must parse as a positive spectral period and maps to SA at 5%
// damping.
func Parse(key string) (IMT, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "pga":
		return PGA(), nil
	case "pgv":
		return PGV(), nil
	case "mmi":
		return MMI(), nil
	}
	period, err := strconv.ParseFloat(strings.TrimSpace(key), 64)
	if err != nil {
		return IMT{}, fmt.Errorf("imt: cannot parse %q as a measure name or spectral period", key)
	}
	if period <= 0 {
		return IMT{}, fmt.Errorf("imt: spectral period must be positive, got %q", key)
	}
	return SA(period), nil
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
