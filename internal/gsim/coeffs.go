package gsim

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"enceladus/internal/imt"
)

// ErrCoeffsNotFound reports a lookup for a measure the table has no row
// for (and, for interpolated lookups, no bracketing rows either).
var ErrCoeffsNotFound = errors.New("no coefficients for intensity measure")

// Coeffs maps coefficient names to their published values for one
// intensity measure type.
type Coeffs map[string]float64

// CoeffsTable holds per-period model coefficients parsed from a literal
// text block. The first whitespace-delimited token of the header line is
// a label for the row-key column and is discarded; the remaining tokens
// are coefficient names. Each following row is an IMT key ("pga"/"pgv",
// case-insensitive, or a numeric spectral period) followed by exactly one
// float per coefficient name.
//
// Tables are built once and immutable afterwards. A malformed block fails
// at construction, never at lookup.
type CoeffsTable struct {
	damping float64
	names   []string
	rows    map[imt.IMT]Coeffs
	periods []float64 // sorted SA periods, for interpolation
}

// ParseCoeffsTable parses a coefficient block. damping is stored as table
// metadata for the SA rows; it is not a coefficient.
func ParseCoeffsTable(damping float64, text string) (*CoeffsTable, error) {
	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return nil, errors.New("gsim: empty coefficient table")
	}
	header := strings.Fields(lines[0])
	if len(header) < 2 {
		return nil, fmt.Errorf("gsim: coefficient table header needs a row-key label and at least one coefficient name, got %q", lines[0])
	}
	names := header[1:]

	t := &CoeffsTable{
		damping: damping,
		names:   names,
		rows:    make(map[imt.IMT]Coeffs, len(lines)-1),
	}
	for i, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) != len(names)+1 {
			return nil, fmt.Errorf("gsim: coefficient table row %d has %d columns, header has %d",
				i+1, len(fields), len(names)+1)
		}
		key, err := imt.Parse(fields[0])
		if err != nil {
			return nil, fmt.Errorf("gsim: coefficient table row %d: %w", i+1, err)
		}
		if key.Kind() == imt.KindSA {
			key = imt.SAWithDamping(key.Period(), damping)
		}
		if _, dup := t.rows[key]; dup {
			return nil, fmt.Errorf("gsim: coefficient table row %d duplicates %s", i+1, key)
		}
		c := make(Coeffs, len(names))
		for j, name := range names {
			v, err := strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("gsim: coefficient table row %d, column %q: %w", i+1, name, err)
			}
			c[name] = v
		}
		t.rows[key] = c
		if key.Kind() == imt.KindSA {
			t.periods = append(t.periods, key.Period())
		}
	}
	sort.Float64s(t.periods)
	return t, nil
}

// MustCoeffsTable parses a table literal and panics on failure. Shipped
// tables are code, so a malformed one is a defect, not a runtime error.
func MustCoeffsTable(damping float64, text string) *CoeffsTable {
	t, err := ParseCoeffsTable(damping, text)
	if err != nil {
		panic(err)
	}
	return t
}

// SADamping returns the damping ratio the SA rows were published for.
func (t *CoeffsTable) SADamping() float64 { return t.damping }

// Names returns the coefficient names in header order.
func (t *CoeffsTable) Names() []string {
	return append([]string(nil), t.names...)
}

// Lookup returns the coefficients for an exact row match. An SA request
// at a damping other than the table's fails, as does any measure without
// a row.
func (t *CoeffsTable) Lookup(m imt.IMT) (Coeffs, error) {
	if m.Kind() == imt.KindSA && m.Damping() != t.damping {
		return nil, fmt.Errorf("%w: %s (table holds %v%% damping)", ErrCoeffsNotFound, m, t.damping)
	}
	c, ok := t.rows[m]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCoeffsNotFound, m)
	}
	return c, nil
}

// LookupInterpolated behaves like Lookup, but when an SA period falls
// strictly between two tabulated periods every coefficient is
// interpolated log-linearly in period between the bracketing rows.
// Periods outside the tabulated range are not extrapolated, and an SA
// request at a damping other than the table's fails without bracketing.
func (t *CoeffsTable) LookupInterpolated(m imt.IMT) (Coeffs, error) {
	if m.Kind() == imt.KindSA && m.Damping() != t.damping {
		return nil, fmt.Errorf("%w: %s (table holds %v%% damping)", ErrCoeffsNotFound, m, t.damping)
	}
	c, err := t.Lookup(m)
	if err == nil {
		return c, nil
	}
	if m.Kind() != imt.KindSA {
		return nil, err
	}
	lo, hi, ok := t.bracket(m.Period())
	if !ok {
		return nil, fmt.Errorf("%w: %s (outside tabulated period range)", ErrCoeffsNotFound, m)
	}
	loC := t.rows[imt.SAWithDamping(lo, t.damping)]
	hiC := t.rows[imt.SAWithDamping(hi, t.damping)]
	frac := (math.Log(m.Period()) - math.Log(lo)) / (math.Log(hi) - math.Log(lo))
	out := make(Coeffs, len(t.names))
	for _, name := range t.names {
		out[name] = loC[name] + frac*(hiC[name]-loC[name])
	}
	return out, nil
}

// bracket finds the tabulated periods immediately below and above the
// requested one.
func (t *CoeffsTable) bracket(period float64) (lo, hi float64, ok bool) {
	i := sort.SearchFloat64s(t.periods, period)
	if i == 0 || i >= len(t.periods) {
		return 0, 0, false
	}
	return t.periods[i-1], t.periods[i], true
}

func nonBlankLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
