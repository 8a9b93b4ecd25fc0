// Package mfd defines magnitude frequency distributions: histograms of
// annual earthquake occurrence rates per magnitude bin.
package mfd

import (
	"errors"
	"math"
)

// Rate is one histogram bin: the annual occurrence rate of events in
// the magnitude band centred on Mag.
type Rate struct {
	Mag  float64
	Rate float64
}

// ModifiedGR is a modified Gutenberg-Richter distribution in functional
// form, truncated to [MinMag, MaxMag] and renormalized so the total rate
// above MinMag matches the cumulative a value.
//
// MinMag and MaxMag need not be aligned to BinWidth; they are rounded to
// the nearest bin edge when the histogram is built.
type ModifiedGR struct {
	MinMag   float64
	MaxMag   float64
	BinWidth float64
	AVal     float64
	BVal     float64
}

// NewModifiedGR validates the distribution parameters.
func NewModifiedGR(minMag, maxMag, binWidth, aVal, bVal float64) (*ModifiedGR, error) {
	m := &ModifiedGR{
		MinMag:   minMag,
		MaxMag:   maxMag,
		BinWidth: binWidth,
		AVal:     aVal,
		BVal:     bVal,
	}
	if err := m.check(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ModifiedGR) check() error {
	switch {
	case m.BinWidth <= 0:
		return errors.New("mfd: bin width must be positive")
	case m.MinMag < 0:
		return errors.New("mfd: minimum magnitude must be non-negative")
	case m.MaxMag < m.MinMag+m.BinWidth:
		return errors.New("mfd: maximum magnitude must be higher than minimum magnitude by bin width at least")
	case m.BVal <= 0:
		return errors.New("mfd: b value must be positive")
	}
	return nil
}

// cumulativeRate is the annual rate of events with magnitude >= mag
// under the truncated, renormalized distribution.
func (m *ModifiedGR) cumulativeRate(mag float64) float64 {
	b := m.BVal
	top := math.Pow(10, -b*mag) - math.Pow(10, -b*m.MaxMag)
	bottom := math.Pow(10, -b*m.MinMag) - math.Pow(10, -b*m.MaxMag)
	return math.Pow(10, m.AVal-b*m.MinMag) * top / bottom
}

// binLayout rounds the magnitude bounds to the bin grid and returns the
// first bin centre and the bin count. Rounding the division result,
// rather than truncating, keeps the last bin when the quotient lands
// just under an integer.
func (m *ModifiedGR) binLayout() (firstCenter float64, numBins int) {
	minMag := math.Round(m.MinMag/m.BinWidth) * m.BinWidth
	maxMag := math.Round(m.MaxMag/m.BinWidth) * m.BinWidth
	if minMag != maxMag {
		minMag += m.BinWidth / 2
		maxMag -= m.BinWidth / 2
	}
	return minMag, int(math.Round((maxMag-minMag)/m.BinWidth)) + 1
}

// MinMagCenter returns the centre of the first histogram bin.
func (m *ModifiedGR) MinMagCenter() float64 {
	c, _ := m.binLayout()
	return c
}

// AnnualOccurrenceRates builds the rate histogram. The histogram has a
// single bin when the rounded magnitude bounds coincide.
func (m *ModifiedGR) AnnualOccurrenceRates() []Rate {
	mag, numBins := m.binLayout()
	rates := make([]Rate, 0, numBins)
	for i := 0; i < numBins; i++ {
		lo := mag - m.BinWidth/2
		hi := mag + m.BinWidth/2
		rates = append(rates, Rate{Mag: mag, Rate: m.cumulativeRate(lo) - m.cumulativeRate(hi)})
		mag += m.BinWidth
	}
	return rates
}
