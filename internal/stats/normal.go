// Package stats provides the standard-normal and truncated-normal
// kernels the hazard calculators sample from.
package stats

import (
	"fmt"
	"math"
)

const invSqrt2 = 0.7071067811865476
const invSqrt2Pi = 0.3989422804014327

// NormCDF is the standard normal cumulative distribution function.
func NormCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x*invSqrt2)
}

// NormSurvival is 1 - NormCDF(x), computed without cancellation for
// large x.
func NormSurvival(x float64) float64 {
	return 0.5 * math.Erfc(x*invSqrt2)
}

// NormPDF is the standard normal density.
func NormPDF(x float64) float64 {
	return invSqrt2Pi * math.Exp(-0.5*x*x)
}

// NormCDFInv is the standard normal quantile function (inverse CDF),
// using the Acklam rational approximation refined with one Halley step.
// It panics for p outside (0, 1).
func NormCDFInv(p float64) float64 {
	if p <= 0 || p >= 1 {
		panic(fmt.Sprintf("stats: quantile argument must be in (0, 1), got %v", p))
	}

	var x float64
	switch {
	case p < 0.02425:
		q := math.Sqrt(-2 * math.Log(p))
		x = (((((-7.784894002430293e-03*q-3.223964580411365e-01)*q-
			2.400758277161838e+00)*q-2.549732539343734e+00)*q+
			4.374664141464968e+00)*q + 2.938163982698783e+00) /
			((((7.784695709041462e-03*q+3.224671290700398e-01)*q+
				2.445134137142996e+00)*q+3.754408661907416e+00)*q + 1)
	case p > 1-0.02425:
		q := math.Sqrt(-2 * math.Log(1-p))
		x = -(((((-7.784894002430293e-03*q-3.223964580411365e-01)*q-
			2.400758277161838e+00)*q-2.549732539343734e+00)*q+
			4.374664141464968e+00)*q + 2.938163982698783e+00) /
			((((7.784695709041462e-03*q+3.224671290700398e-01)*q+
				2.445134137142996e+00)*q+3.754408661907416e+00)*q + 1)
	default:
		q := p - 0.5
		r := q * q
		x = (((((-3.969683028665376e+01*r+2.209460984245205e+02)*r-
			2.759285104469687e+02)*r+1.383577518672690e+02)*r-
			3.066479806614716e+01)*r + 2.506628277459239e+00) * q /
			(((((-5.447609879822406e+01*r+1.615858368580409e+02)*r-
				1.556989798598866e+02)*r+6.680131188771972e+01)*r-
				1.328068155288572e+01)*r + 1)
	}

	// One Halley refinement step brings the approximation to full
	// double precision.
	e := NormCDF(x) - p
	u := e * math.Sqrt(2*math.Pi) * math.Exp(0.5*x*x)
	return x - u/(1+0.5*x*u)
}

// TruncNormCDF is the CDF of a standard normal truncated to [a, b],
// evaluated at x.
func TruncNormCDF(x, a, b float64) float64 {
	if a >= b {
		panic(fmt.Sprintf("stats: truncation bounds must satisfy a < b, got [%v, %v]", a, b))
	}
	switch {
	case x <= a:
		return 0
	case x >= b:
		return 1
	}
	ca, cb := NormCDF(a), NormCDF(b)
	return (NormCDF(x) - ca) / (cb - ca)
}

// TruncNormCDFInv is the quantile function of a standard normal
// truncated to [a, b].
func TruncNormCDFInv(p, a, b float64) float64 {
	if a >= b {
		panic(fmt.Sprintf("stats: truncation bounds must satisfy a < b, got [%v, %v]", a, b))
	}
	switch {
	case p <= 0:
		return a
	case p >= 1:
		return b
	}
	ca, cb := NormCDF(a), NormCDF(b)
	return NormCDFInv(ca + p*(cb-ca))
}
